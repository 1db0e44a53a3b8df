package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase manages the one review an order may receive.
type ReviewUsecase interface {
	// SubmitReview validates the rating before touching storage.
	SubmitReview(ctx context.Context, orderID, customerID uuid.UUID, rating int, comment string) (*entity.Review, error)

	// GetReview returns the review of an order.
	GetReview(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ShouldPromptReview reports whether the order is completed and unreviewed.
	ShouldPromptReview(ctx context.Context, orderID uuid.UUID) (bool, error)
}
