package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'order_reviews' table. One review per order.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_reviews_order_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "order_reviews"
}
