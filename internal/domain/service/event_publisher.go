package service

import (
	"context"
)

// OrderEvent is published after an order status change so the notifier
// worker can push it to the customer's devices.
type OrderEvent struct {
	RequestID             string `json:"request_id,omitempty"` // For distributed tracing
	OrderID               string `json:"order_id"`
	CustomerID            string `json:"customer_id"`
	PreviousStatus        string `json:"previous_status,omitempty"`
	Status                string `json:"status"`
	EstimatedDeliveryTime string `json:"estimated_delivery_time,omitempty"`
	OccurredAt            string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
