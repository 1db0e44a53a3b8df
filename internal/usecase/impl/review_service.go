package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
	now        func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		orderRepo:  params.OrderRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitReview rejects bad input before any storage call, then enforces
// ownership, completion and one review per order.
func (s *reviewService) SubmitReview(ctx context.Context, orderID, customerID uuid.UUID, rating int, comment string) (*entity.Review, error) {
	if !entity.IsValidRating(rating) {
		return nil, domainerrors.ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if !entity.IsValidReviewComment(comment) {
		return nil, domainerrors.ErrReviewCommentTooLong
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}
	if order.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden.WithDetails("order belongs to another customer")
	}
	if order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrReviewNotAllowed
	}

	exists, err := s.reviewRepo.ExistsForOrder(ctx, orderID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check existing review")
	}
	if exists {
		return nil, domainerrors.ErrReviewAlreadyExists
	}

	review := &entity.Review{
		ID:         uuid.New(),
		OrderID:    orderID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  s.now(),
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		// The unique index catches a concurrent submission the pre-check missed.
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists
		}
		s.log(ctx).Error("Failed to create review", slog.String("order_id", orderID.String()), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	s.log(ctx).Info("Review submitted", slog.String("order_id", orderID.String()), slog.Int("rating", rating))

	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, orderID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find review")
	}

	return review, nil
}

func (s *reviewService) ShouldPromptReview(ctx context.Context, orderID uuid.UUID) (bool, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return false, domainerrors.ErrOrderNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}
	if order.Status != entity.OrderStatusCompleted {
		return false, nil
	}

	exists, err := s.reviewRepo.ExistsForOrder(ctx, orderID)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check existing review")
	}

	return !exists, nil
}
