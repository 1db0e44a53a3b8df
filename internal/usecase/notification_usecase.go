package usecase

import (
	"context"

	"pizzeria/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationResult summarises one order event fan-out.
type NotificationResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// OrderNotificationUsecase turns order events into device pushes.
type OrderNotificationUsecase interface {
	// NotifyOrderEvent pushes the event to the customer's active devices.
	// Errors wrapped with NewRetryableError should be redelivered.
	NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}

// retryableError marks an error that should make the broker redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
