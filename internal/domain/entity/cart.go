package entity

import "github.com/google/uuid"

// CartLine is one menu item in a cart before pricing.
type CartLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes,omitempty"`
}

// Cart is a customer's pending selection, keyed by a client-generated ID.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// PricedCartLine is a cart line joined with the current menu price.
type PricedCartLine struct {
	CartLine
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// PricedCart is a cart with computed totals.
type PricedCart struct {
	ID    string           `json:"id"`
	Lines []PricedCartLine `json:"lines"`
	Total int64            `json:"total"`
}
