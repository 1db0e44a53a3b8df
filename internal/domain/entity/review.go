package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinReviewRating        = 1
	MaxReviewRating        = 5
	MaxReviewCommentLength = 500
)

// Review is the customer's rating of a completed order.
type Review struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsValidRating reports whether rating is an integer in [1,5].
func IsValidRating(rating int) bool {
	return rating >= MinReviewRating && rating <= MaxReviewRating
}

// IsValidReviewComment checks the comment length bound.
func IsValidReviewComment(comment string) bool {
	return utf8.RuneCountInString(comment) <= MaxReviewCommentLength
}
