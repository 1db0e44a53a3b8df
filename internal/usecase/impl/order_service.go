package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pizzeria/config"
	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/constants"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPreparationWindow = 45 * time.Minute
	defaultOrderListLimit    = 100
)

// orderService validates every status change against the order state
// machine before writing it.
type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	qrcodeService service.QRCodeService
	feed          service.ChangeFeed
	effects       *orderSideEffects
	logger        *slog.Logger
	now           func() time.Time

	preparationWindow time.Duration
	listLimit         int
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	OrderItemRepo  repository.OrderItemRepository
	QRCodeService  service.QRCodeService
	Feed           service.ChangeFeed
	EventPublisher service.EventPublisher
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return newOrderService(params)
}

func newOrderService(params OrderServiceParams) *orderService {
	srv := &orderService{
		orderRepo:     params.OrderRepo,
		orderItemRepo: params.OrderItemRepo,
		qrcodeService: params.QRCodeService,
		feed:          params.Feed,
		effects: &orderSideEffects{
			feed:      params.Feed,
			publisher: params.EventPublisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		logger:            params.Logger,
		now:               time.Now,
		preparationWindow: defaultPreparationWindow,
		listLimit:         defaultOrderListLimit,
	}

	if orders := params.Config.Orders; orders != nil {
		if orders.PreparationWindow > 0 {
			srv.preparationWindow = orders.PreparationWindow
		}
		if orders.ListLimit > 0 {
			srv.listLimit = orders.ListLimit
		}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

// GetOrder retrieves a single order.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.findOrder(ctx, orderID)
}

// GetOrderItems retrieves the lines of an existing order.
func (srv *orderService) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	if _, err := srv.findOrder(ctx, orderID); err != nil {
		return nil, err
	}

	items, err := srv.orderItemRepo.FindItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order items")
	}

	return items, nil
}

// ListOrders returns the newest orders, capped at the configured limit.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderFilter{Limit: srv.listLimit}
	if input != nil {
		filter.Statuses = input.Statuses
		if input.Limit > 0 && input.Limit < srv.listLimit {
			filter.Limit = input.Limit
		}
	}

	orders, err := srv.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// AdvanceStatus moves the order one step forward.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error) {
	return srv.transition(ctx, orderID, staffActor(actor), func(order *entity.Order) (entity.OrderStatus, bool, error) {
		next, ok := order.Status.Next()
		if !ok {
			return "", false, invalidTransition(order.Status, "")
		}

		return next, false, nil
	})
}

// UpdateStatus moves the order to an explicit target.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus, actor string) (*entity.Order, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", target))
	}

	return srv.transition(ctx, orderID, staffActor(actor), func(*entity.Order) (entity.OrderStatus, bool, error) {
		return target, false, nil
	})
}

// CancelOrder cancels a non-terminal order.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error) {
	return srv.transition(ctx, orderID, staffActor(actor), func(*entity.Order) (entity.OrderStatus, bool, error) {
		return entity.OrderStatusCancelled, false, nil
	})
}

// ConfirmDelivery lets the customer close a delivering order.
func (srv *orderService) ConfirmDelivery(ctx context.Context, orderID, customerID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, orderID, constants.ActorCustomer, func(order *entity.Order) (entity.OrderStatus, bool, error) {
		if order.CustomerID != customerID {
			return "", false, domainerrors.ErrForbidden.WithDetails("order belongs to another customer")
		}

		switch order.Status {
		case entity.OrderStatusCompleted:
			return "", true, nil
		case entity.OrderStatusDelivering:
			return entity.OrderStatusCompleted, false, nil
		default:
			return "", false, invalidTransition(order.Status, entity.OrderStatusCompleted)
		}
	})
}

// transitionDecider picks the target state for an order, or reports a no-op.
type transitionDecider func(order *entity.Order) (target entity.OrderStatus, noop bool, err error)

// transition is the single write path for order status.
func (srv *orderService) transition(ctx context.Context, orderID uuid.UUID, actor string, decide transitionDecider) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	target, noop, err := decide(order)
	if err != nil {
		srv.log(ctx).Info("Order transition rejected",
			slog.String("order_id", orderID.String()),
			slog.String("status", order.Status.String()),
			slog.Any("error", err),
		)

		return nil, err
	}
	if noop {
		return order, nil
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, invalidTransition(order.Status, target)
	}

	previous := order.Status
	order.ApplyTransition(target, actor, entity.StorageTime(srv.now()), srv.preparationWindow)

	if err := srv.orderRepo.UpdateOrderStatus(ctx, order, previous); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			srv.log(ctx).Info("Order transition lost a concurrent update",
				slog.String("order_id", orderID.String()),
				slog.String("from", previous.String()),
				slog.String("to", target.String()),
			)

			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("order is no longer in status %q", previous))
		}
		srv.log(ctx).Error("Failed to update order status",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("from", previous.String()),
		slog.String("to", target.String()),
		slog.String("actor", actor),
	)
	srv.effects.afterWrite(ctx, order, entity.ChangeTypeUpdate, previous)

	return order, nil
}

// ConfirmPayment marks the payment received. Repeating it is a no-op.
func (srv *orderService) ConfirmPayment(ctx context.Context, orderID uuid.UUID, actor string) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return order, nil
	}

	updatedAt := entity.StorageTime(srv.now())
	if err := srv.orderRepo.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusPaid, updatedAt); err != nil {
		srv.log(ctx).Error("Failed to confirm payment", slog.String("order_id", orderID.String()), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update payment status")
	}
	order.PaymentStatus = entity.PaymentStatusPaid
	order.UpdatedAt = updatedAt

	srv.log(ctx).Info("Payment confirmed",
		slog.String("order_id", orderID.String()),
		slog.String("actor", staffActor(actor)),
	)
	srv.effects.afterWrite(ctx, order, entity.ChangeTypeUpdate, order.Status)

	return order, nil
}

// GenerateTrackingQR renders the tracking link of an existing order.
func (srv *orderService) GenerateTrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	if _, err := srv.findOrder(ctx, orderID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateTrackingQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// WatchOrders streams every pushed order row for the staff dashboard.
func (srv *orderService) WatchOrders(ctx context.Context) (<-chan *entity.Order, error) {
	sub, err := srv.feed.Subscribe(ctx, entity.ChangeFilter{Collection: entity.CollectionOrders})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to order changes")
	}

	out := make(chan *entity.Order, 1)
	go func() {
		defer close(out)
		defer sub.Close()

		for event := range sub.Events() {
			var order entity.Order
			if err := event.DecodePayload(&order); err != nil {
				srv.log(ctx).Warn("Discarding malformed order event", slog.Any("error", err))

				continue
			}
			if !sendOrDone(ctx, out, &order) {
				return
			}
		}
	}()

	return out, nil
}

func staffActor(actor string) string {
	if actor = strings.TrimSpace(actor); actor != "" {
		return actor
	}

	return constants.ActorStaff
}

func invalidTransition(from, to entity.OrderStatus) error {
	if to == "" {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("order in status %q has no next status", from))
	}

	return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("cannot move order from %q to %q", from, to))
}
