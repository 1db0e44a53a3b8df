package entity

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderProgression is the linear forward sequence. Cancellation sits outside it.
var orderProgression = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivering,
	OrderStatusCompleted,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivering, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Next returns the single forward successor of s, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, status := range orderProgression {
		if status == s && i+1 < len(orderProgression) {
			return orderProgression[i+1], true
		}
	}

	return "", false
}

// CanTransitionTo reports whether target is adjacent to s: the next forward
// state, or cancelled from any non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() || !target.IsValid() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}
	next, ok := s.Next()

	return ok && next == target
}

// ParseOrderStatus converts a raw string to an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(raw)

	return status, status.IsValid()
}
