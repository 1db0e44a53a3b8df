package impl

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	mockRepo "pizzeria/internal/mocks/repository"
	"pizzeria/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackerFixtures struct {
	tracker    *orderTracker
	orderRepo  *mockRepo.MockOrderRepository
	reviewRepo *mockRepo.MockReviewRepository
	hub        *realtime.Hub
}

func createTestTracker(t *testing.T) trackerFixtures {
	t.Helper()

	fx := trackerFixtures{
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		hub:        newTestHub(t),
	}
	fx.tracker = NewOrderTracker(OrderTrackerParams{
		OrderRepo:  fx.orderRepo,
		ReviewRepo: fx.reviewRepo,
		Feed:       fx.hub,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}).(*orderTracker)

	return fx
}

func pushOrder(t *testing.T, hub *realtime.Hub, order *entity.Order) {
	t.Helper()

	event, err := entity.NewChangeEvent(entity.CollectionOrders, entity.ChangeTypeUpdate, order.ID.String(), order, order.UpdatedAt)
	require.NoError(t, err)
	require.NoError(t, hub.Publish(context.Background(), event))
}

func TestOrderTracker_EmitsSnapshotThenPushes(t *testing.T) {
	fx := createTestTracker(t)
	order := newTestOrder(entity.OrderStatusPending)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

	updates, err := fx.tracker.Track(ctx, order.ID)
	require.NoError(t, err)

	first := receiveWithin(t, updates)
	assert.Equal(t, entity.OrderStatusPending, first.Order.Status)
	assert.False(t, first.ReviewPrompt)

	other := newTestOrder(entity.OrderStatusReady)
	pushOrder(t, fx.hub, other)

	next := order.Clone()
	next.Status = entity.OrderStatusConfirmed
	next.UpdatedAt = testNow
	pushOrder(t, fx.hub, next)

	second := receiveWithin(t, updates)
	assert.Equal(t, order.ID, second.Order.ID)
	assert.Equal(t, entity.OrderStatusConfirmed, second.Order.Status)
}

func TestOrderTracker_PromptsReviewOnce(t *testing.T) {
	fx := createTestTracker(t)
	order := newTestOrder(entity.OrderStatusDelivering)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, order.ID).Return(false, nil).Once()

	updates, err := fx.tracker.Track(ctx, order.ID)
	require.NoError(t, err)
	receiveWithin(t, updates)

	completed := order.Clone()
	completed.Status = entity.OrderStatusCompleted
	completed.UpdatedAt = testNow
	pushOrder(t, fx.hub, completed)

	update := receiveWithin(t, updates)
	assert.Equal(t, entity.OrderStatusCompleted, update.Order.Status)
	assert.True(t, update.ReviewPrompt)

	completed.UpdatedAt = testNow.Add(time.Second)
	pushOrder(t, fx.hub, completed)

	update = receiveWithin(t, updates)
	assert.False(t, update.ReviewPrompt)
}

func TestOrderTracker_NoPromptWhenReviewed(t *testing.T) {
	fx := createTestTracker(t)
	order := newTestOrder(entity.OrderStatusCompleted)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, order.ID).Return(true, nil)

	updates, err := fx.tracker.Track(ctx, order.ID)
	require.NoError(t, err)

	update := receiveWithin(t, updates)
	assert.False(t, update.ReviewPrompt)
}

func TestOrderTracker_UnknownOrder(t *testing.T) {
	fx := createTestTracker(t)
	id := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.tracker.Track(context.Background(), id)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Equal(t, 0, fx.hub.SubscriberCount())
}

func TestOrderTracker_StopsAfterCancel(t *testing.T) {
	fx := createTestTracker(t)
	order := newTestOrder(entity.OrderStatusPending)
	ctx, cancel := context.WithCancel(context.Background())

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

	updates, err := fx.tracker.Track(ctx, order.ID)
	require.NoError(t, err)
	receiveWithin(t, updates)

	cancel()

	next := order.Clone()
	next.Status = entity.OrderStatusConfirmed
	pushOrder(t, fx.hub, next)

	assert.Eventually(t, func() bool {
		_, ok := <-updates

		return !ok
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return fx.hub.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestOrderTracker_ReconcileEmitsOnlyChanges(t *testing.T) {
	fx := createTestTracker(t)
	fx.tracker.reconcileInterval = 20 * time.Millisecond
	order := newTestOrder(entity.OrderStatusPreparing)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ready := order.Clone()
	ready.Status = entity.OrderStatusReady
	ready.UpdatedAt = testNow

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Times(3)
	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(ready, nil)

	updates, err := fx.tracker.Track(ctx, order.ID)
	require.NoError(t, err)

	first := receiveWithin(t, updates)
	assert.Equal(t, entity.OrderStatusPreparing, first.Order.Status)

	second := receiveWithin(t, updates)
	assert.Equal(t, entity.OrderStatusReady, second.Order.Status)
}

func TestSameOrderRevision(t *testing.T) {
	a := newTestOrder(entity.OrderStatusPending)
	b := a.Clone()

	assert.True(t, sameOrderRevision(a, b))
	assert.False(t, sameOrderRevision(nil, b))

	b.PaymentStatus = entity.PaymentStatusPaid
	assert.False(t, sameOrderRevision(a, b))

	b = a.Clone()
	b.UpdatedAt = b.UpdatedAt.Add(time.Millisecond)
	assert.False(t, sameOrderRevision(a, b))

	// A pushed row keeps nanoseconds; the stored row does not.
	pushed := a.Clone()
	pushed.UpdatedAt = a.UpdatedAt.Add(123 * time.Nanosecond)
	assert.True(t, sameOrderRevision(pushed, a))
}
