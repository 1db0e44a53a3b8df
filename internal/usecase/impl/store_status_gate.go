// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pizzeria/config"
	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/constants"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeStatusGate caches the singleton store status and answers the purchase
// gate from that cache. The cache only changes on rows that come back from
// storage: the initial fetch, feed echoes and reconciliation. Rows read from
// the database are canonical; pushed rows are dropped when older than the cache.
type storeStatusGate struct {
	repo    repository.StoreSettingsRepository
	feed    service.ChangeFeed
	metrics service.MetricsRecorder
	logger  *slog.Logger
	now     func() time.Time

	supportPhone      string
	openingTime       string
	closingTime       string
	reconcileInterval time.Duration

	mu      sync.RWMutex
	status  *entity.StoreStatus
	pushSeq uint64 // Bumped on every applied push.

	cancel context.CancelFunc
	sub    service.Subscription
	wg     sync.WaitGroup
}

// StoreStatusGateParams holds dependencies for the store status gate, injected by Fx.
type StoreStatusGateParams struct {
	fx.In

	Lc      fx.Lifecycle
	Repo    repository.StoreSettingsRepository
	Feed    service.ChangeFeed
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewStoreStatusGate creates the gate and ties its subscription to the app lifecycle.
func NewStoreStatusGate(params StoreStatusGateParams) usecase.StoreStatusUsecase {
	gate := newStoreStatusGate(params)

	params.Lc.Append(fx.Hook{
		OnStart: gate.Start,
		OnStop:  gate.Stop,
	})

	return gate
}

func newStoreStatusGate(params StoreStatusGateParams) *storeStatusGate {
	gate := &storeStatusGate{
		repo:    params.Repo,
		feed:    params.Feed,
		metrics: params.Metrics,
		logger:  params.Logger,
		now:     time.Now,
	}

	if store := params.Config.Store; store != nil {
		gate.supportPhone = store.SupportPhone
		gate.openingTime = store.DefaultOpeningTime
		gate.closingTime = store.DefaultClosingTime
	}
	if rt := params.Config.Realtime; rt != nil {
		gate.reconcileInterval = rt.ReconcileInterval
	}

	return gate
}

func (g *storeStatusGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Start subscribes before the first fetch so no change committed in between is missed.
func (g *storeStatusGate) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	sub, err := g.feed.Subscribe(runCtx, entity.ChangeFilter{Collection: entity.CollectionStoreSettings})
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to subscribe to store status changes")
	}
	g.sub = sub

	g.wg.Add(1)
	go g.consume(sub)

	if _, err := g.FetchStatus(ctx); err != nil {
		// Stay closed; the reconciliation loop keeps retrying.
		g.logger.Warn("Initial store status fetch failed", slog.Any("error", err))
	}

	if g.reconcileInterval > 0 {
		g.wg.Add(1)
		go g.reconcile(runCtx)
	}

	return nil
}

// Stop releases the subscription and waits for the background loops.
func (g *storeStatusGate) Stop(_ context.Context) error {
	if g.cancel != nil {
		g.cancel()
	}
	if g.sub != nil {
		_ = g.sub.Close()
	}
	g.wg.Wait()

	return nil
}

func (g *storeStatusGate) consume(sub service.Subscription) {
	defer g.wg.Done()

	for event := range sub.Events() {
		var status entity.StoreStatus
		if err := event.DecodePayload(&status); err != nil {
			g.logger.Warn("Discarding malformed store status event", slog.Any("error", err))

			continue
		}
		g.apply(&status)
	}
}

func (g *storeStatusGate) reconcile(ctx context.Context) {
	defer g.wg.Done()

	ticker := time.NewTicker(g.reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := g.FetchStatus(ctx); err != nil && ctx.Err() == nil {
				g.logger.Warn("Store status reconciliation failed", slog.Any("error", err))
			}
		}
	}
}

// apply replaces the cache with a pushed row unless it is older than what is cached.
func (g *storeStatusGate) apply(status *entity.StoreStatus) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if status.IsStaleComparedTo(g.status) {
		return false
	}
	g.status = status.Clone()
	g.pushSeq++

	return true
}

// applyStored replaces the cache with a row read from the database. The row
// wins even when its timestamp is older, since writers' clocks differ. Only a
// push that landed while the row was being read, and is newer, is kept.
func (g *storeStatusGate) applyStored(status *entity.StoreStatus, seqAtRead uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pushSeq != seqAtRead && status.IsStaleComparedTo(g.status) {
		return
	}
	g.status = status.Clone()
}

func (g *storeStatusGate) currentPushSeq() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pushSeq
}

// FetchStatus loads the singleton row, creating the default closed row on
// first access. A lost creation race re-reads the winner's row.
func (g *storeStatusGate) FetchStatus(ctx context.Context) (*entity.StoreStatus, error) {
	seq := g.currentPushSeq()

	status, err := g.loadOrCreate(ctx)
	if err != nil {
		g.log(ctx).Error("Failed to fetch store status", slog.Any("error", err))

		return nil, err
	}
	g.applyStored(status, seq)

	return status.Clone(), nil
}

func (g *storeStatusGate) loadOrCreate(ctx context.Context) (*entity.StoreStatus, error) {
	status, err := g.repo.Find(ctx)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, repository.ErrStoreStatusNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load store status")
	}

	status = entity.NewDefaultStoreStatus(g.openingTime, g.closingTime, constants.ActorSystem, entity.StorageTime(g.now()))
	err = g.repo.Create(ctx, status)
	switch {
	case err == nil:
		g.log(ctx).Info("Created default store status", slog.String("id", status.ID.String()))

		return status, nil
	case errors.Is(err, repository.ErrStoreStatusConflict):
		existing, findErr := g.repo.Find(ctx)
		if findErr != nil {
			return nil, domainerrors.NewDatabaseExecuteError(findErr, "failed to reload store status after creation race")
		}

		return existing, nil
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create default store status")
	}
}

// Toggle flips the persisted flag and publishes the new row. The cache waits for the echo.
func (g *storeStatusGate) Toggle(ctx context.Context, actor string) (*entity.StoreStatus, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = constants.ActorStaff
	}

	status, err := g.loadOrCreate(ctx)
	if err != nil {
		g.log(ctx).Error("Failed to load store status for toggle", slog.Any("error", err))

		return nil, err
	}

	status.IsOpen = !status.IsOpen
	status.LastUpdated = entity.StorageTime(g.now())
	status.UpdatedBy = actor

	if err := g.repo.Update(ctx, status); err != nil {
		g.log(ctx).Error("Failed to persist store status toggle", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update store status")
	}
	g.metrics.StoreToggled(status.IsOpen)

	g.log(ctx).Info("Store status toggled",
		slog.Bool("is_open", status.IsOpen),
		slog.String("updated_by", actor),
	)

	event, err := entity.NewChangeEvent(entity.CollectionStoreSettings, entity.ChangeTypeUpdate, status.ID.String(), status, status.LastUpdated)
	if err == nil {
		err = g.feed.Publish(ctx, event)
	}
	if err != nil {
		// The row is committed; reconciliation picks it up.
		g.log(ctx).Warn("Failed to publish store status change", slog.Any("error", err))
	}

	return status, nil
}

// CheckInteraction denies purchase-path actions while the cached status is not open.
func (g *storeStatusGate) CheckInteraction(ctx context.Context) error {
	g.mu.RLock()
	open := g.status != nil && g.status.IsOpen
	g.mu.RUnlock()

	if open {
		return nil
	}

	g.metrics.GateDenied()
	g.log(ctx).Info("Interaction denied, store closed")

	return domainerrors.ErrStoreClosed.WithDetails(g.closedMessage())
}

func (g *storeStatusGate) closedMessage() string {
	if g.supportPhone == "" {
		return "Store is closed."
	}

	return fmt.Sprintf("Store is closed. To order, contact us at %s", g.supportPhone)
}

func (g *storeStatusGate) FormattedHours() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.status.FormattedHours()
}

func (g *storeStatusGate) Current() *entity.StoreStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.status.Clone()
}

// Watch emits the cached status, then every status pushed on the feed.
func (g *storeStatusGate) Watch(ctx context.Context) (<-chan *entity.StoreStatus, error) {
	sub, err := g.feed.Subscribe(ctx, entity.ChangeFilter{Collection: entity.CollectionStoreSettings})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to store status changes")
	}

	out := make(chan *entity.StoreStatus, 1)
	go func() {
		defer close(out)
		defer sub.Close()

		if current := g.Current(); current != nil {
			if !sendOrDone(ctx, out, current) {
				return
			}
		}

		for event := range sub.Events() {
			var status entity.StoreStatus
			if err := event.DecodePayload(&status); err != nil {
				g.log(ctx).Warn("Discarding malformed store status event", slog.Any("error", err))

				continue
			}
			if !sendOrDone(ctx, out, &status) {
				return
			}
		}
	}()

	return out, nil
}

// sendOrDone delivers v unless ctx ends first.
func sendOrDone[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
