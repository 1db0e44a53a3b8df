package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pizzeria/config"
	"pizzeria/internal/delivery"
	"pizzeria/internal/delivery/worker/handler"
	"pizzeria/internal/domain/constants"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

const (
	maxRecordAttempts = 3
	retryBackoff      = time.Second
)

// kafkaConsumer reads order events from the kafka provider's topic and
// commits each record once it is handled.
type kafkaConsumer struct {
	client   *kgo.Client
	notifier usecase.OrderNotificationUsecase
	logger   *slog.Logger
	backoff  time.Duration
}

// ConsumerParams holds dependencies for the kafka consumer, injected by Fx.
type ConsumerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Notifier usecase.OrderNotificationUsecase
}

// NewConsumers returns the broker consumers the configured provider needs.
// Only the kafka provider pulls; the others push to the HTTP endpoint.
func NewConsumers(params ConsumerParams) ([]delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return nil, nil
	}

	var brokers []string
	for broker := range strings.SplitSeq(cfg.KafkaBrokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	if len(brokers) == 0 {
		return nil, errors.New("kafka provider requires kafkaBrokers")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(cfg.KafkaGroup),
		kgo.ConsumeTopics(cfg.KafkaTopic),
		kgo.DisableAutoCommit(),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer")
	}

	consumer := &kafkaConsumer{
		client:   client,
		notifier: params.Notifier,
		logger:   params.Logger,
		backoff:  retryBackoff,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing kafka consumer")
			client.Close()

			return nil
		},
	})

	return []delivery.Delivery{consumer}, nil
}

// Serve polls until the client is closed.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting kafka order event consumer")

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("[Kafka] Fetch failed",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.Any("error", err),
			)
		})

		var handled []*kgo.Record
		fetches.EachRecord(func(record *kgo.Record) {
			c.handleRecord(ctx, record)
			handled = append(handled, record)
		})

		if len(handled) == 0 {
			continue
		}
		if err := c.client.CommitRecords(ctx, handled...); err != nil {
			c.logger.Error("[Kafka] Commit failed", slog.Int("records", len(handled)), slog.Any("error", err))
		}
	}
}

// handleRecord retries retryable failures in place a bounded number of times.
// Whatever the outcome, the record is committed afterwards.
func (c *kafkaConsumer) handleRecord(ctx context.Context, record *kgo.Record) {
	var event service.OrderEvent
	if err := json.Unmarshal(record.Value, &event); err != nil {
		c.logger.Error("[Kafka] Discarding malformed order event",
			slog.Int64("offset", record.Offset),
			slog.Any("error", err),
		)

		return
	}

	attributes := make(map[string]string, len(record.Headers))
	for _, header := range record.Headers {
		attributes[header.Key] = string(header.Value)
	}

	for attempt := 1; attempt <= maxRecordAttempts; attempt++ {
		err := handler.ProcessOrderEvent(ctx, c.notifier, c.logger, &event, attributes)
		if !usecase.IsRetryableError(err) {
			return
		}
		if attempt == maxRecordAttempts {
			c.logger.Error("[Kafka] Giving up on order event",
				slog.String("order_id", event.OrderID),
				slog.Int("attempts", attempt),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
}
