package impl

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/config"
	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderTracker struct {
	orderRepo         repository.OrderRepository
	reviewRepo        repository.ReviewRepository
	feed              service.ChangeFeed
	logger            *slog.Logger
	reconcileInterval time.Duration
}

// OrderTrackerParams holds dependencies for the order tracker, injected by Fx.
type OrderTrackerParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	ReviewRepo repository.ReviewRepository
	Feed       service.ChangeFeed
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderTracker creates the customer-facing order tracker.
func NewOrderTracker(params OrderTrackerParams) usecase.OrderTrackerUsecase {
	tracker := &orderTracker{
		orderRepo:  params.OrderRepo,
		reviewRepo: params.ReviewRepo,
		feed:       params.Feed,
		logger:     params.Logger,
	}
	if rt := params.Config.Realtime; rt != nil {
		tracker.reconcileInterval = rt.ReconcileInterval
	}

	return tracker
}

func (t *orderTracker) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, t.logger)
}

// Track subscribes first and then reads the snapshot, so a change committed
// in between still arrives as a frame.
func (t *orderTracker) Track(ctx context.Context, orderID uuid.UUID) (<-chan *entity.TrackingUpdate, error) {
	sub, err := t.feed.Subscribe(ctx, entity.ChangeFilter{
		Collection: entity.CollectionOrders,
		RecordID:   orderID.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to order changes")
	}

	order, err := t.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		_ = sub.Close()
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	out := make(chan *entity.TrackingUpdate, 1)
	session := &trackingSession{tracker: t, orderID: orderID, out: out}

	go session.run(ctx, sub, order)

	return out, nil
}

// trackingSession is one customer stream. It stops delivering as soon as ctx ends.
type trackingSession struct {
	tracker  *orderTracker
	orderID  uuid.UUID
	out      chan *entity.TrackingUpdate
	current  *entity.Order
	prompted bool
}

func (s *trackingSession) run(ctx context.Context, sub service.Subscription, snapshot *entity.Order) {
	defer close(s.out)
	defer sub.Close()

	var tick <-chan time.Time
	if s.tracker.reconcileInterval > 0 {
		ticker := time.NewTicker(s.tracker.reconcileInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	if !s.emit(ctx, snapshot) {
		return
	}

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			var order entity.Order
			if err := event.DecodePayload(&order); err != nil {
				s.tracker.log(ctx).Warn("Discarding malformed order event", slog.Any("error", err))

				continue
			}
			// Whole-payload replace: the pushed row is the new state.
			if !s.emit(ctx, &order) {
				return
			}

		case <-tick:
			order, err := s.tracker.orderRepo.FindOrderByID(ctx, s.orderID)
			if err != nil {
				if ctx.Err() == nil {
					s.tracker.log(ctx).Warn("Order reconciliation failed",
						slog.String("order_id", s.orderID.String()),
						slog.Any("error", err),
					)
				}

				continue
			}
			if sameOrderRevision(s.current, order) {
				continue
			}
			if !s.emit(ctx, order) {
				return
			}
		}
	}
}

func (s *trackingSession) emit(ctx context.Context, order *entity.Order) bool {
	if ctx.Err() != nil {
		return false
	}

	s.current = order
	update := &entity.TrackingUpdate{Order: order.Clone()}

	if !s.prompted && order.Status == entity.OrderStatusCompleted {
		reviewed, err := s.tracker.reviewRepo.ExistsForOrder(ctx, s.orderID)
		switch {
		case err != nil:
			// Retried on the next frame.
			s.tracker.log(ctx).Warn("Failed to check review state", slog.Any("error", err))
		default:
			s.prompted = true
			update.ReviewPrompt = !reviewed
		}
	}

	return sendOrDone(ctx, s.out, update)
}

// sameOrderRevision reports whether b carries nothing a or the client has not seen.
func sameOrderRevision(a, b *entity.Order) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Status == b.Status &&
		a.PaymentStatus == b.PaymentStatus &&
		entity.StorageTime(a.UpdatedAt).Equal(entity.StorageTime(b.UpdatedAt))
}
