package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderNotificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// OrderNotificationServiceParams holds dependencies for the order notifier, injected by Fx.
type OrderNotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewOrderNotificationService creates a new order notification service instance
func NewOrderNotificationService(params OrderNotificationServiceParams) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyOrderEvent pushes a status message to every active device of the
// order's customer. Storage failures are retryable, malformed events are not.
func (s *orderNotificationService) NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	result := &usecase.NotificationResult{}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid customer id in order event")
	}

	title, body, ok := orderEventMessage(entity.OrderStatus(event.Status), event.OrderID)
	if !ok {
		s.log(ctx).Debug("No notification for order status", slog.String("status", event.Status))

		return result, nil
	}

	if s.notificationSvc == nil {
		s.log(ctx).Warn("Push notifications disabled, dropping order event", slog.String("order_id", event.OrderID))

		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find devices"))
	}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"order_id": event.OrderID,
		"status":   event.Status,
	}
	if event.EstimatedDeliveryTime != "" {
		data["estimated_delivery_time"] = event.EstimatedDeliveryTime
	}

	report, err := s.notificationSvc.Multicast(ctx, tokens, &service.PushMessage{Title: title, Body: body, Data: data})
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to send notifications"))
	}
	result.Sent = report.Sent
	result.Failed = report.Failed
	result.InvalidTokens = len(report.InvalidTokens)

	if len(report.InvalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByTokens(ctx, report.InvalidTokens); err != nil {
			// Delivery already happened; a redelivery would push twice.
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Int("count", len(report.InvalidTokens)), slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Order notification sent",
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)

	return result, nil
}

func orderEventMessage(status entity.OrderStatus, orderID string) (title, body string, ok bool) {
	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}

	switch status {
	case entity.OrderStatusConfirmed:
		return "Order confirmed", fmt.Sprintf("Order #%s was accepted by the kitchen.", short), true
	case entity.OrderStatusPreparing:
		return "In the oven", fmt.Sprintf("Order #%s is being prepared.", short), true
	case entity.OrderStatusReady:
		return "Order ready", fmt.Sprintf("Order #%s is ready and waiting for the courier.", short), true
	case entity.OrderStatusDelivering:
		return "On the way", fmt.Sprintf("Order #%s is out for delivery.", short), true
	case entity.OrderStatusCompleted:
		return "Enjoy your meal", fmt.Sprintf("Order #%s was delivered. Tell us how it went!", short), true
	case entity.OrderStatusCancelled:
		return "Order cancelled", fmt.Sprintf("Order #%s was cancelled.", short), true
	default:
		return "", "", false
	}
}
