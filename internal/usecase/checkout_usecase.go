package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// AddressInput is the delivery address captured at checkout.
type AddressInput struct {
	Street       string `json:"street" validate:"required,max=200"`
	Number       string `json:"number" validate:"required,max=20"`
	Complement   string `json:"complement" validate:"max=100"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	Reference    string `json:"reference" validate:"max=200"`
}

// CheckoutInput is everything needed to turn a cart into an order.
type CheckoutInput struct {
	CartID        string               `json:"cart_id" validate:"required"`
	CustomerName  string               `json:"customer_name" validate:"required,max=120"`
	Phone         string               `json:"phone" validate:"required,max=30"`
	Email         string               `json:"email" validate:"omitempty,email"`
	Address       AddressInput         `json:"address" validate:"required"`
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required"`
	Notes         string               `json:"notes" validate:"max=500"`
}

// CheckoutResult is the placed order with its lines.
type CheckoutResult struct {
	Order       *entity.Order       `json:"order"`
	Items       []*entity.OrderItem `json:"items"`
	TrackingURL string              `json:"tracking_url"`
}

// CheckoutUsecase places orders.
type CheckoutUsecase interface {
	// CheckoutPreflight reports whether checkout may be entered.
	CheckoutPreflight(ctx context.Context) error

	// Checkout creates the customer, address, order and items in one
	// transaction and clears the cart.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)
}
