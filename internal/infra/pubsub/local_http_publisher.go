package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pizzeria/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/order-events-push"
	localPushAttempts   = 3
	localPushRetryDelay = 200 * time.Millisecond
)

// PubSubPushMessage is the envelope Pub/Sub POSTs to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher emulates a push subscription against the notifier for
// development. Like Pub/Sub, it redelivers when the endpoint answers 503.
type localHTTPPublisher struct {
	endpoint   string
	client     *http.Client
	retryDelay time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
		retryDelay: localPushRetryDelay,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := pushEnvelope(event, time.Now())
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			p.logger.DebugContext(ctx, "[LocalPubSub] Event delivered",
				slog.String("order_id", event.OrderID),
				slog.String("status", event.Status),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if !retry || attempt == localPushAttempts {
			return errors.Wrapf(err, "push of order %s failed after %d attempts", event.OrderID, attempt)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryDelay * time.Duration(attempt)):
		}
	}
}

// push performs one delivery and reports whether a failure is worth redelivering.
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode == http.StatusServiceUnavailable, resp.StatusCode == http.StatusTooManyRequests:
		return true, errors.Errorf("notifier asked for redelivery: %d", resp.StatusCode)
	default:
		return false, errors.Errorf("notifier rejected event: %d", resp.StatusCode)
	}
}

func pushEnvelope(event *service.OrderEvent, now time.Time) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = orderEventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
