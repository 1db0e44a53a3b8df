package impl

import (
	"context"
	"strings"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	mockRepo "pizzeria/internal/mocks/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	orderRepo  *mockRepo.MockOrderRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	return reviewServiceFixtures{
		service: NewReviewService(ReviewServiceParams{
			OrderRepo:  orderRepo,
			ReviewRepo: reviewRepo,
			Logger:     newDiscardLogger(),
		}),
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
	}
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	order := newTestOrder(entity.OrderStatusCompleted)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
	fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, order.ID).Return(false, nil)
	fx.reviewRepo.EXPECT().
		CreateReview(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.OrderID == order.ID && r.Rating == 5 && r.Comment == "Crispy crust"
		})).
		Return(nil)

	review, err := fx.service.SubmitReview(context.Background(), order.ID, order.CustomerID, 5, "  Crispy crust ")
	require.NoError(t, err)
	assert.Equal(t, order.CustomerID, review.CustomerID)
}

func TestReviewService_SubmitReview_RejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		comment string
		wantErr error
	}{
		{name: "zero", rating: 0, wantErr: domainerrors.ErrInvalidRating},
		{name: "six", rating: 6, wantErr: domainerrors.ErrInvalidRating},
		{name: "negative", rating: -1, wantErr: domainerrors.ErrInvalidRating},
		{name: "long comment", rating: 4, comment: strings.Repeat("x", entity.MaxReviewCommentLength+1), wantErr: domainerrors.ErrReviewCommentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.SubmitReview(context.Background(), uuid.New(), uuid.New(), tt.rating, tt.comment)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_SubmitReview_OrderChecks(t *testing.T) {
	t.Run("not completed", func(t *testing.T) {
		fx := createTestReviewService(t)
		order := newTestOrder(entity.OrderStatusDelivering)
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.SubmitReview(context.Background(), order.ID, order.CustomerID, 4, "")
		assert.ErrorIs(t, err, domainerrors.ErrReviewNotAllowed)
	})

	t.Run("other customer", func(t *testing.T) {
		fx := createTestReviewService(t)
		order := newTestOrder(entity.OrderStatusCompleted)
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.SubmitReview(context.Background(), order.ID, uuid.New(), 4, "")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestReviewService(t)
		id := uuid.New()
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.SubmitReview(context.Background(), id, uuid.New(), 4, "")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestReviewService_SubmitReview_Duplicate(t *testing.T) {
	t.Run("pre-check", func(t *testing.T) {
		fx := createTestReviewService(t)
		order := newTestOrder(entity.OrderStatusCompleted)
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
		fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, order.ID).Return(true, nil)

		_, err := fx.service.SubmitReview(context.Background(), order.ID, order.CustomerID, 3, "")
		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})

	t.Run("unique index", func(t *testing.T) {
		fx := createTestReviewService(t)
		order := newTestOrder(entity.OrderStatusCompleted)
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
		fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, order.ID).Return(false, nil)
		fx.reviewRepo.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(repository.ErrDuplicateReview)

		_, err := fx.service.SubmitReview(context.Background(), order.ID, order.CustomerID, 3, "")
		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})
}

func TestReviewService_ShouldPromptReview(t *testing.T) {
	fx := createTestReviewService(t)
	completed := newTestOrder(entity.OrderStatusCompleted)
	preparing := newTestOrder(entity.OrderStatusPreparing)

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, completed.ID).Return(completed, nil)
	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, preparing.ID).Return(preparing, nil)
	fx.reviewRepo.EXPECT().ExistsForOrder(mock.Anything, completed.ID).Return(false, nil)

	prompt, err := fx.service.ShouldPromptReview(context.Background(), completed.ID)
	require.NoError(t, err)
	assert.True(t, prompt)

	prompt, err = fx.service.ShouldPromptReview(context.Background(), preparing.ID)
	require.NoError(t, err)
	assert.False(t, prompt)
}

func TestReviewService_GetReview(t *testing.T) {
	fx := createTestReviewService(t)
	id := uuid.New()

	fx.reviewRepo.EXPECT().FindReviewByOrderID(mock.Anything, id).Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.GetReview(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
