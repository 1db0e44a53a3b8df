package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzeria/config"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/infra/metrics"
	"pizzeria/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRecorder() *metrics.Recorder {
	return metrics.NewRecorder(prometheus.NewRegistry())
}

func newTestHub(t *testing.T) *realtime.Hub {
	t.Helper()

	hub := realtime.NewHub(16, newTestRecorder(), newDiscardLogger())
	t.Cleanup(func() { _ = hub.Close() })

	return hub
}

func newTestConfig() *config.Config {
	return &config.Config{
		Store: &config.StoreConfig{
			SupportPhone:       "(11) 5555-0100",
			DefaultOpeningTime: "18:00",
			DefaultClosingTime: "23:30",
		},
		Orders: &config.OrdersConfig{
			PreparationWindow: 40 * time.Minute,
			ListLimit:         50,
		},
		Realtime: &config.RealtimeConfig{
			Provider: "memory",
		},
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func newTestOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:                uuid.New(),
		Status:            status,
		PaymentMethod:     entity.PaymentMethodCash,
		PaymentStatus:     entity.PaymentStatusPending,
		Total:             5990,
		CustomerID:        uuid.New(),
		DeliveryAddressID: uuid.New(),
		CreatedAt:         testNow.Add(-time.Hour),
		UpdatedAt:         testNow.Add(-time.Hour),
	}
}

// receiveWithin reads one value or fails the test.
func receiveWithin[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")

		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")

		var zero T

		return zero
	}
}

func assertNothingWithin[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected value %+v", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}
