package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/service"
	mockRepo "pizzeria/internal/mocks/repository"
	mockSvc "pizzeria/internal/mocks/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderNotificationFixtures struct {
	service    usecase.OrderNotificationUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	notifier   *mockSvc.MockNotificationService
}

func createTestOrderNotificationService(t *testing.T) orderNotificationFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	return orderNotificationFixtures{
		service: NewOrderNotificationService(OrderNotificationServiceParams{
			DeviceRepo:      deviceRepo,
			NotificationSvc: notifier,
			Logger:          newDiscardLogger(),
		}),
		deviceRepo: deviceRepo,
		notifier:   notifier,
	}
}

func newOrderEventFor(status entity.OrderStatus) *service.OrderEvent {
	return &service.OrderEvent{
		OrderID:    uuid.NewString(),
		CustomerID: uuid.NewString(),
		Status:     status.String(),
	}
}

func TestOrderNotificationService_SendsToActiveDevices(t *testing.T) {
	fx := createTestOrderNotificationService(t)
	event := newOrderEventFor(entity.OrderStatusDelivering)
	event.EstimatedDeliveryTime = "2025-03-14T20:10:00Z"
	customerID := uuid.MustParse(event.CustomerID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(mock.Anything, customerID).Return([]*entity.CustomerDevice{
		{FCMToken: "token-a"},
		{FCMToken: "token-b"},
	}, nil)
	fx.notifier.EXPECT().
		Multicast(mock.Anything, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "On the way" && assert.ObjectsAreEqual(map[string]string{
				"order_id":                event.OrderID,
				"status":                  "delivering",
				"estimated_delivery_time": "2025-03-14T20:10:00Z",
			}, msg.Data)
		})).
		Return(&service.PushReport{Sent: 1, Failed: 1, InvalidTokens: []string{"token-b"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevicesByTokens(mock.Anything, []string{"token-b"}).Return(nil)

	result, err := fx.service.NotifyOrderEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestOrderNotificationService_SkipsPendingOrders(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	result, err := fx.service.NotifyOrderEvent(context.Background(), newOrderEventFor(entity.OrderStatusPending))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestOrderNotificationService_NoDevices(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := fx.service.NotifyOrderEvent(context.Background(), newOrderEventFor(entity.OrderStatusReady))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestOrderNotificationService_Errors(t *testing.T) {
	t.Run("malformed customer id is permanent", func(t *testing.T) {
		fx := createTestOrderNotificationService(t)
		event := newOrderEventFor(entity.OrderStatusReady)
		event.CustomerID = "not-a-uuid"

		_, err := fx.service.NotifyOrderEvent(context.Background(), event)
		require.Error(t, err)
		assert.False(t, usecase.IsRetryableError(err))
	})

	t.Run("device lookup is retryable", func(t *testing.T) {
		fx := createTestOrderNotificationService(t)
		fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := fx.service.NotifyOrderEvent(context.Background(), newOrderEventFor(entity.OrderStatusReady))
		assert.True(t, usecase.IsRetryableError(err))
	})

	t.Run("send failure is retryable", func(t *testing.T) {
		fx := createTestOrderNotificationService(t)
		fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(mock.Anything, mock.Anything).Return([]*entity.CustomerDevice{{FCMToken: "t"}}, nil)
		fx.notifier.EXPECT().Multicast(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("quota"))

		_, err := fx.service.NotifyOrderEvent(context.Background(), newOrderEventFor(entity.OrderStatusReady))
		assert.True(t, usecase.IsRetryableError(err))
	})
}

func TestOrderNotificationService_DisabledPushes(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewOrderNotificationService(OrderNotificationServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	result, err := svc.NotifyOrderEvent(context.Background(), newOrderEventFor(entity.OrderStatusCompleted))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestOrderEventMessage(t *testing.T) {
	_, body, ok := orderEventMessage(entity.OrderStatusCompleted, "0f8fad5b-d9cb-469f-a165-70867728950e")
	require.True(t, ok)
	assert.Contains(t, body, "#0f8fad5b")

	_, _, ok = orderEventMessage(entity.OrderStatusPending, "x")
	assert.False(t, ok)
}
