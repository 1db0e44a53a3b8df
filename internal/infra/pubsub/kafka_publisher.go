package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pizzeria/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaPublisher implements EventPublisher on a Kafka topic. Records are keyed by
// order ID so every event of one order lands on the same partition.
type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a franz-go producer for topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	return &kafkaPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishOrderEvent produces the event and waits for the broker acknowledgement.
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	record, err := newOrderEventRecord(p.topic, event)
	if err != nil {
		return err
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrapf(err, "failed to produce order event %s", event.OrderID)
	}

	p.logger.InfoContext(ctx, "[Kafka] Event published successfully",
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
		slog.Int("partition", int(record.Partition)),
		slog.Int64("offset", record.Offset),
	)

	return nil
}

// Close flushes buffered records and closes the client.
func (p *kafkaPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := p.client.Flush(ctx)
	p.client.Close()

	return errors.WithStack(err)
}

func newOrderEventRecord(topic string, event *service.OrderEvent) (*kgo.Record, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := orderEventAttributes(event)
	headers := make([]kgo.RecordHeader, 0, len(attributes)+1)
	headers = append(headers, kgo.RecordHeader{Key: "event_type", Value: []byte("order_status_changed")})
	for key, value := range attributes {
		headers = append(headers, kgo.RecordHeader{Key: key, Value: []byte(value)})
	}

	return &kgo.Record{
		Topic:     topic,
		Key:       []byte(event.OrderID),
		Value:     data,
		Headers:   headers,
		Timestamp: time.Now(),
	}, nil
}
