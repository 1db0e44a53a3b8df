package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Next(t *testing.T) {
	tests := []struct {
		from   OrderStatus
		want   OrderStatus
		wantOK bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivering, true},
		{OrderStatusDelivering, OrderStatusCompleted, true},
		{OrderStatusCompleted, "", false},
		{OrderStatusCancelled, "", false},
		{OrderStatus("baking"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			got, ok := tt.from.Next()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivering, OrderStatusCompleted, OrderStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			next, hasNext := from.Next()
			want := !from.IsTerminal() && (to == OrderStatusCancelled || (hasNext && next == to))

			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatus("baking")))
}

func TestOrderStatus_TerminalStatesAreAbsorbing(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		assert.False(t, terminal.CanTransitionTo(OrderStatusCancelled))
		assert.False(t, terminal.CanTransitionTo(OrderStatusPending))
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("delivering")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusDelivering, status)

	_, ok = ParseOrderStatus("DELIVERING")
	assert.False(t, ok)
}

func TestOrder_ApplyTransition(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	order := NewPendingOrder(uuid.New(), uuid.New(), PaymentMethodPix, 8990, "", now.Add(-time.Minute))

	order.ApplyTransition(OrderStatusConfirmed, "Staff", now, 45*time.Minute)
	require.NotNil(t, order.ConfirmedAt)
	require.NotNil(t, order.EstimatedDeliveryTime)
	assert.Equal(t, now, *order.ConfirmedAt)
	assert.Equal(t, now.Add(45*time.Minute), *order.EstimatedDeliveryTime)
	assert.Nil(t, order.DeliveredAt)
	assert.Equal(t, "Staff", order.StatusUpdatedBy)

	later := now.Add(40 * time.Minute)
	order.ApplyTransition(OrderStatusCompleted, "Customer", later, 45*time.Minute)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, later, *order.DeliveredAt)
	assert.Equal(t, later, order.UpdatedAt)

	cancelled := NewPendingOrder(uuid.New(), uuid.New(), PaymentMethodCash, 100, "", now)
	cancelled.ApplyTransition(OrderStatusCancelled, "Staff", later, 45*time.Minute)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Nil(t, cancelled.DeliveredAt)
}

func TestNewPendingOrder(t *testing.T) {
	now := time.Now()
	order := NewPendingOrder(uuid.New(), uuid.New(), PaymentMethodCardOnDelivery, 4500, "ring twice", now)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Nil(t, order.DeliveredAt)
	assert.True(t, PaymentMethodPix.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}
