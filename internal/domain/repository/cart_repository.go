package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository stores carts outside the relational database.
type CartRepository interface {
	// GetCart returns the cart; an unknown ID yields an empty cart.
	GetCart(ctx context.Context, cartID string) (*entity.Cart, error)

	// SetLine writes a line, replacing any existing line for the same menu item.
	SetLine(ctx context.Context, cartID string, line entity.CartLine) error

	// RemoveLine deletes the line for menuItemID.
	RemoveLine(ctx context.Context, cartID string, menuItemID uuid.UUID) error

	// Clear deletes the whole cart.
	Clear(ctx context.Context, cartID string) error
}
