package impl

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/domain/constants"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	mockRepo "pizzeria/internal/mocks/repository"
	mockSvc "pizzeria/internal/mocks/service"
	"pizzeria/internal/infra/realtime"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       *orderService
	orderRepo     *mockRepo.MockOrderRepository
	orderItemRepo *mockRepo.MockOrderItemRepository
	qrcode        *mockSvc.MockQRCodeService
	publisher     *mockSvc.MockEventPublisher
	hub           *realtime.Hub
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	fx := orderServiceFixtures{
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		orderItemRepo: mockRepo.NewMockOrderItemRepository(t),
		qrcode:        mockSvc.NewMockQRCodeService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		hub:           newTestHub(t),
	}
	fx.service = newOrderService(OrderServiceParams{
		OrderRepo:      fx.orderRepo,
		OrderItemRepo:  fx.orderItemRepo,
		QRCodeService:  fx.qrcode,
		Feed:           fx.hub,
		EventPublisher: fx.publisher,
		Metrics:        newTestRecorder(),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	fx.service.now = fixedClock()

	return fx
}

func TestOrderService_AdvanceStatusConfirmsWithEstimate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newTestOrder(entity.OrderStatusPending)

	sub, err := fx.hub.Subscribe(ctx, entity.ChangeFilter{Collection: entity.CollectionOrders, RecordID: order.ID.String()})
	require.NoError(t, err)
	defer sub.Close()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusConfirmed
		}), entity.OrderStatusPending).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.OrderID == order.ID.String() &&
				e.PreviousStatus == "pending" &&
				e.Status == "confirmed" &&
				e.EstimatedDeliveryTime == testNow.Add(40*time.Minute).Format(time.RFC3339)
		})).
		Return(nil)

	updated, err := fx.service.AdvanceStatus(ctx, order.ID, "Marina")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, "Marina", updated.StatusUpdatedBy)
	require.NotNil(t, updated.ConfirmedAt)
	require.NotNil(t, updated.EstimatedDeliveryTime)
	assert.Equal(t, testNow.Add(40*time.Minute), *updated.EstimatedDeliveryTime)

	event := receiveWithin(t, sub.Events())
	var pushed entity.Order
	require.NoError(t, event.DecodePayload(&pushed))
	assert.Equal(t, entity.OrderStatusConfirmed, pushed.Status)
}

func TestOrderService_AdvanceStatusFromTerminal(t *testing.T) {
	for _, status := range []entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestOrderService(t)
			order := newTestOrder(status)

			fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

			_, err := fx.service.AdvanceStatus(context.Background(), order.ID, "")
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		target  entity.OrderStatus
		wantErr error
	}{
		{name: "next step", from: entity.OrderStatusPreparing, target: entity.OrderStatusReady},
		{name: "skip ahead", from: entity.OrderStatusPending, target: entity.OrderStatusDelivering, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "backwards", from: entity.OrderStatusReady, target: entity.OrderStatusConfirmed, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "unknown target", from: entity.OrderStatusPending, target: "lost", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			order := newTestOrder(tt.from)

			if tt.target.IsValid() {
				fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
			}
			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, order, tt.from).Return(nil)
				fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			}

			updated, err := fx.service.UpdateStatus(context.Background(), order.ID, tt.target, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
			assert.Equal(t, constants.ActorStaff, updated.StatusUpdatedBy)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	fx := createTestOrderService(t)
	order := newTestOrder(entity.OrderStatusPreparing)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, order, entity.OrderStatusPreparing).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	cancelled, err := fx.service.CancelOrder(context.Background(), order.ID, "Marina")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestOrderService_ConfirmDelivery(t *testing.T) {
	t.Run("completes a delivering order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newTestOrder(entity.OrderStatusDelivering)

		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, order, entity.OrderStatusDelivering).Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

		completed, err := fx.service.ConfirmDelivery(context.Background(), order.ID, order.CustomerID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
		assert.Equal(t, constants.ActorCustomer, completed.StatusUpdatedBy)
		assert.NotNil(t, completed.DeliveredAt)
	})

	t.Run("repeat confirmation is a no-op", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newTestOrder(entity.OrderStatusCompleted)

		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

		completed, err := fx.service.ConfirmDelivery(context.Background(), order.ID, order.CustomerID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	})

	t.Run("other customer", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newTestOrder(entity.OrderStatusDelivering)

		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.ConfirmDelivery(context.Background(), order.ID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("not yet out for delivery", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newTestOrder(entity.OrderStatusPreparing)

		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.ConfirmDelivery(context.Background(), order.ID, order.CustomerID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}

func TestOrderService_TransitionLosesToConcurrentWrite(t *testing.T) {
	// Staff cancel and customer confirmation both read "delivering"; the
	// confirmation commits first, so the cancel finds the row moved on.
	fx := createTestOrderService(t)
	order := newTestOrder(entity.OrderStatusDelivering)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(mock.Anything, mock.Anything, entity.OrderStatusDelivering).
		Return(repository.ErrOrderStatusChanged).Once()

	_, err := fx.service.CancelOrder(context.Background(), order.ID, "Marina")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_DefaultPreparationWindow(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Orders = nil

	srv := newOrderService(OrderServiceParams{
		OrderRepo:      orderRepo,
		OrderItemRepo:  mockRepo.NewMockOrderItemRepository(t),
		QRCodeService:  mockSvc.NewMockQRCodeService(t),
		Feed:           newTestHub(t),
		EventPublisher: publisher,
		Metrics:        newTestRecorder(),
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
	srv.now = fixedClock()
	order := newTestOrder(entity.OrderStatusPending)

	orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, order, entity.OrderStatusPending).Return(nil)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	confirmed, err := srv.AdvanceStatus(context.Background(), order.ID, "")
	require.NoError(t, err)
	require.NotNil(t, confirmed.EstimatedDeliveryTime)
	assert.Equal(t, testNow.Add(45*time.Minute), *confirmed.EstimatedDeliveryTime)
}

func TestOrderService_ConfirmPaymentIsIdempotent(t *testing.T) {
	fx := createTestOrderService(t)
	order := newTestOrder(entity.OrderStatusConfirmed)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdatePaymentStatus(mock.Anything, order.ID, entity.PaymentStatusPaid, testNow).Return(nil).Once()

	paid, err := fx.service.ConfirmPayment(context.Background(), order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, paid.Status)
	assert.Equal(t, testNow, paid.UpdatedAt)

	again, err := fx.service.ConfirmPayment(context.Background(), order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, again.PaymentStatus)
}

func TestOrderService_GetOrderMapsNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	id := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrdersCapsLimit(t *testing.T) {
	fx := createTestOrderService(t)
	active := []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusConfirmed}

	fx.orderRepo.EXPECT().
		ListOrders(mock.Anything, repository.OrderFilter{Statuses: active, Limit: 50}).
		Return([]*entity.Order{}, nil).Once()
	fx.orderRepo.EXPECT().
		ListOrders(mock.Anything, repository.OrderFilter{Limit: 10}).
		Return([]*entity.Order{}, nil).Once()

	_, err := fx.service.ListOrders(context.Background(), &usecase.ListOrdersInput{Statuses: active, Limit: 500})
	require.NoError(t, err)

	_, err = fx.service.ListOrders(context.Background(), &usecase.ListOrdersInput{Limit: 10})
	require.NoError(t, err)
}

func TestOrderService_GenerateTrackingQR(t *testing.T) {
	fx := createTestOrderService(t)
	order := newTestOrder(entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.qrcode.EXPECT().GenerateTrackingQR(order.ID).Return([]byte("png"), nil)

	png, err := fx.service.GenerateTrackingQR(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_WatchOrdersStreamsPushedRows(t *testing.T) {
	fx := createTestOrderService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orders, err := fx.service.WatchOrders(ctx)
	require.NoError(t, err)

	order := newTestOrder(entity.OrderStatusReady)
	event, err := entity.NewChangeEvent(entity.CollectionOrders, entity.ChangeTypeUpdate, order.ID.String(), order, testNow)
	require.NoError(t, err)
	require.NoError(t, fx.hub.Publish(ctx, event))

	got := receiveWithin(t, orders)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, entity.OrderStatusReady, got.Status)
}
