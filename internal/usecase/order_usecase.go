package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// ListOrdersInput filters the staff order listing.
type ListOrdersInput struct {
	Statuses []entity.OrderStatus
	Limit    int
}

// OrderUsecase covers order reads and every status mutation.
type OrderUsecase interface {
	// GetOrder retrieves a single order.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GetOrderItems retrieves the lines of an order.
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// ListOrders returns orders for the staff dashboard, newest first.
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// AdvanceStatus moves the order to its single forward successor.
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error)

	// UpdateStatus moves the order to target if target is adjacent.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus, actor string) (*entity.Order, error)

	// CancelOrder moves a non-terminal order to cancelled.
	CancelOrder(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error)

	// ConfirmDelivery is the customer's delivering -> completed action. It is a
	// no-op on an already completed order.
	ConfirmDelivery(ctx context.Context, orderID, customerID uuid.UUID) (*entity.Order, error)

	// ConfirmPayment marks the payment as received. Idempotent.
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error)

	// GenerateTrackingQR renders the tracking link of an order as a PNG.
	GenerateTrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)

	// WatchOrders streams every committed order row until ctx ends.
	WatchOrders(ctx context.Context) (<-chan *entity.Order, error)
}

// OrderTrackerUsecase is the customer-facing live view of one order.
type OrderTrackerUsecase interface {
	// Track emits the current order, then one frame per pushed change. The
	// stream closes when ctx ends.
	Track(ctx context.Context, orderID uuid.UUID) (<-chan *entity.TrackingUpdate, error)
}
