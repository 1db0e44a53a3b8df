package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// MenuRepository reads the catalogue. Editing is done out of band.
type MenuRepository interface {
	// ListMenuItems returns items, optionally filtered by category.
	ListMenuItems(ctx context.Context, category string) ([]*entity.MenuItem, error)

	// FindMenuItemByID retrieves a single item.
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindMenuItemsByIDs retrieves several items at once, keyed by ID.
	FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.MenuItem, error)

	// UpsertMenuItems inserts or replaces catalogue entries (seeding).
	UpsertMenuItems(ctx context.Context, items []*entity.MenuItem) error
}
