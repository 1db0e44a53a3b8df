package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/service"
)

// orderSideEffects runs the fan-out that follows a committed order write. Each
// step is best effort: the row is already stored and reconciliation covers a
// missed change event.
type orderSideEffects struct {
	feed      service.ChangeFeed
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func (e *orderSideEffects) afterWrite(ctx context.Context, order *entity.Order, changeType entity.ChangeType, previous entity.OrderStatus) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)

	event, err := entity.NewChangeEvent(entity.CollectionOrders, changeType, order.ID.String(), order, order.UpdatedAt)
	if err == nil {
		err = e.feed.Publish(ctx, event)
	}
	if err != nil {
		logger.Warn("Failed to publish order change",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	if previous == order.Status {
		return
	}

	if previous != "" {
		e.metrics.OrderTransitioned(previous.String(), order.Status.String())
	}

	if err := e.publisher.PublishOrderEvent(ctx, newOrderEvent(ctx, order, previous)); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

func newOrderEvent(ctx context.Context, order *entity.Order, previous entity.OrderStatus) *service.OrderEvent {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		CustomerID:     order.CustomerID.String(),
		PreviousStatus: previous.String(),
		Status:         order.Status.String(),
		OccurredAt:     order.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if order.EstimatedDeliveryTime != nil {
		event.EstimatedDeliveryTime = order.EstimatedDeliveryTime.UTC().Format(time.RFC3339)
	}

	return event
}
