package postgres

import (
	"context"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	insertReviewSQL = `INSERT INTO order_reviews (id, order_id, customer_id, rating, comment, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	selectReviewByOrderSQL = `SELECT id, order_id, customer_id, rating, comment, created_at
FROM order_reviews WHERE order_id = ? LIMIT 1`
	reviewExistsSQL = `SELECT EXISTS (SELECT 1 FROM order_reviews WHERE order_id = ?)`
)

// reviewRepository goes through hand-written SQL rather than the model API.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview inserts a review. The unique order_id index rejects a second one.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).Exec(insertReviewSQL,
		review.ID, review.OrderID, review.CustomerID, review.Rating, review.Comment, review.CreatedAt,
	).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// FindReviewByOrderID returns the review of an order.
func (repo *reviewRepository) FindReviewByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	result := repo.db.WithContext(ctx).Raw(selectReviewByOrderSQL, orderID).Scan(&reviewM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find review")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsForOrder reports whether the order has been reviewed.
func (repo *reviewRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool

	if err := repo.db.WithContext(ctx).Raw(reviewExistsSQL, orderID).Scan(&exists).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review existence")
	}

	return exists, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		OrderID:    data.OrderID,
		CustomerID: data.CustomerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
