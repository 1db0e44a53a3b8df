package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how the customer intends to pay on delivery.
type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodCardOnDelivery PaymentMethod = "card_on_delivery"
	PaymentMethodPix            PaymentMethod = "pix"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCardOnDelivery, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// PaymentStatus is confirmed manually by staff and is independent of OrderStatus.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order is one checkout.
type Order struct {
	ID                    uuid.UUID     `json:"id"`
	Status                OrderStatus   `json:"status"`
	PaymentMethod         PaymentMethod `json:"payment_method"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	Total                 int64         `json:"total"` // Cents.
	CustomerID            uuid.UUID     `json:"customer_id"`
	DeliveryAddressID     uuid.UUID     `json:"delivery_address_id"`
	Notes                 string        `json:"notes,omitempty"`
	StatusUpdatedBy       string        `json:"status_updated_by,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	ConfirmedAt           *time.Time    `json:"confirmed_at,omitempty"`
	DeliveredAt           *time.Time    `json:"delivered_at,omitempty"`
	CancelledAt           *time.Time    `json:"cancelled_at,omitempty"`
	EstimatedDeliveryTime *time.Time    `json:"estimated_delivery_time,omitempty"`
}

// NewPendingOrder builds the row inserted at checkout.
func NewPendingOrder(customerID, addressID uuid.UUID, method PaymentMethod, total int64, notes string, now time.Time) *Order {
	return &Order{
		ID:                uuid.New(),
		Status:            OrderStatusPending,
		PaymentMethod:     method,
		PaymentStatus:     PaymentStatusPending,
		Total:             total,
		CustomerID:        customerID,
		DeliveryAddressID: addressID,
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ApplyTransition moves the order to target and stamps the timestamps the
// target state owns. The caller must have validated the transition.
func (o *Order) ApplyTransition(target OrderStatus, actor string, now time.Time, preparationWindow time.Duration) {
	o.Status = target
	o.StatusUpdatedBy = actor
	o.UpdatedAt = now

	switch target {
	case OrderStatusConfirmed:
		confirmedAt := now
		eta := now.Add(preparationWindow)
		o.ConfirmedAt = &confirmedAt
		o.EstimatedDeliveryTime = &eta
	case OrderStatusCompleted:
		deliveredAt := now
		o.DeliveredAt = &deliveredAt
	case OrderStatusCancelled:
		cancelledAt := now
		o.CancelledAt = &cancelledAt
	}
}

// Clone returns a detached copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cloned := *o

	return &cloned
}

// OrderItem is one priced line of an order, snapshotting the menu entry.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"unit_price"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes,omitempty"`
}

// Subtotal is UnitPrice times Quantity.
func (i *OrderItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
