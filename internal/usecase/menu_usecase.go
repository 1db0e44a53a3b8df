package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuUsecase reads the catalogue.
type MenuUsecase interface {
	ListMenu(ctx context.Context, category string) ([]*entity.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
}

// CartUsecase edits carts. Every mutation is gated on the store being open.
type CartUsecase interface {
	// GetCart returns the cart priced at current menu prices.
	GetCart(ctx context.Context, cartID string) (*entity.PricedCart, error)

	// AddItem adds quantity to the line of menuItemID.
	AddItem(ctx context.Context, cartID string, menuItemID uuid.UUID, quantity int, notes string) (*entity.PricedCart, error)

	// UpdateItemQuantity sets the quantity; zero removes the line.
	UpdateItemQuantity(ctx context.Context, cartID string, menuItemID uuid.UUID, quantity int) (*entity.PricedCart, error)

	// RemoveItem drops the line of menuItemID.
	RemoveItem(ctx context.Context, cartID string, menuItemID uuid.UUID) (*entity.PricedCart, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, cartID string) error
}
