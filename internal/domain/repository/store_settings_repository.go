// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrStoreStatusNotFound is returned when the singleton row has not been created yet.
	ErrStoreStatusNotFound = errors.New("store status not found")
	// ErrStoreStatusConflict is returned when another session inserted the singleton first.
	ErrStoreStatusConflict = errors.New("store status already exists")
)

// StoreSettingsRepository persists the singleton store_settings row.
type StoreSettingsRepository interface {
	// Find returns the singleton row or ErrStoreStatusNotFound.
	Find(ctx context.Context) (*entity.StoreStatus, error)

	// Create inserts the singleton row; ErrStoreStatusConflict if one already exists.
	Create(ctx context.Context, status *entity.StoreStatus) error

	// Update writes is_open, last_updated and updated_by for the row with status.ID.
	Update(ctx context.Context, status *entity.StoreStatus) error
}
