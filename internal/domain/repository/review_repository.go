package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReviewNotFound is returned when an order has no review.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the order already has a review.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	// CreateReview persists a review; ErrDuplicateReview if the order already has one.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByOrderID returns the review of an order or ErrReviewNotFound.
	FindReviewByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ExistsForOrder reports whether the order has been reviewed.
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
}
