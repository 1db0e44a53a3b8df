package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pizzeria/config"
	"pizzeria/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:      "req-1",
		OrderID:        "0b9e3f4c-8c55-4c4b-9a53-3f2b6f1d2a10",
		CustomerID:     "5d0f6f3e-0d0c-4e53-8a43-5b7b0b0e9c11",
		PreviousStatus: "pending",
		Status:         "confirmed",
		OccurredAt:     "2024-05-01T19:00:00Z",
	}
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "confirmed", received.Message.Attributes["status"])
	assert.Equal(t, sampleEvent().OrderID, received.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *sampleEvent(), decoded)
}

func TestLocalHTTPPublisher_RedeliversOnUnavailable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.retryDelay = 0

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "rejected is not retried", status: http.StatusBadRequest, wantCalls: 1},
		{name: "unavailable exhausts attempts", status: http.StatusServiceUnavailable, wantCalls: localPushAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
			publisher.retryDelay = 0

			assert.Error(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka", KafkaTopic: "t"}, wantErr: true},
		{name: "kafka without topic", pubsub: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: "localhost:9092"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092, ,b:9092 "))
	assert.Nil(t, splitBrokers(""))
}

func TestNewOrderEventRecord(t *testing.T) {
	event := sampleEvent()

	record, err := newOrderEventRecord("order-events", event)
	require.NoError(t, err)

	assert.Equal(t, "order-events", record.Topic)
	assert.Equal(t, []byte(event.OrderID), record.Key)

	headers := make(map[string]string, len(record.Headers))
	for _, header := range record.Headers {
		headers[header.Key] = string(header.Value)
	}
	assert.Equal(t, "order_status_changed", headers["event_type"])
	assert.Equal(t, "confirmed", headers["status"])
	assert.Equal(t, "req-1", headers["request_id"])

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
}
