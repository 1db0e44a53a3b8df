package repository

import (
	"context"
	"time"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusChanged is returned when a status write finds the order
	// no longer in the status the transition was validated against.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
)

// OrderFilter narrows order listings for the staff dashboard.
type OrderFilter struct {
	Statuses []entity.OrderStatus
	Limit    int
}

// OrderRepository defines order persistence. Orders are never deleted.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus writes status, its timestamps and status_updated_by,
	// provided the stored status is still from.
	UpdateOrderStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error

	// UpdatePaymentStatus writes payment_status and updated_at.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, updatedAt time.Time) error
}

// OrderItemRepository persists order lines.
type OrderItemRepository interface {
	// CreateOrderItems inserts all lines of an order.
	CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error

	// FindItemsByOrderID returns the lines of an order.
	FindItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}
