package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// InteractionGate is the single purchase-path check. Cart mutations,
// checkout preflight and checkout submission all go through it.
type InteractionGate interface {
	// CheckInteraction returns nil when the store is open and ErrStoreClosed otherwise.
	CheckInteraction(ctx context.Context) error
}

// StoreStatusUsecase owns the singleton store status and its cached copy.
type StoreStatusUsecase interface {
	InteractionGate

	// FetchStatus loads the persisted row, creating the closed default when it is missing.
	FetchStatus(ctx context.Context) (*entity.StoreStatus, error)

	// Toggle flips is_open and publishes the change. The cache is updated
	// only when the change comes back through the realtime feed.
	Toggle(ctx context.Context, actor string) (*entity.StoreStatus, error)

	// FormattedHours renders the opening window, or "Hours unavailable".
	FormattedHours() string

	// Current returns a copy of the cached status, nil before the first load.
	Current() *entity.StoreStatus

	// Watch streams canonical statuses until ctx ends.
	Watch(ctx context.Context) (<-chan *entity.StoreStatus, error)
}
