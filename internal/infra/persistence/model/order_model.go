package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Rows are never deleted.
type OrderModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Status                string    `gorm:"type:varchar(20);not null;index"`
	PaymentMethod         string    `gorm:"type:varchar(30);not null"`
	PaymentStatus         string    `gorm:"type:varchar(20);not null;default:pending"`
	Total                 int64     `gorm:"not null"`
	CustomerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryAddressID     uuid.UUID `gorm:"type:uuid;not null"`
	Notes                 string    `gorm:"type:text"`
	StatusUpdatedBy       string    `gorm:"type:varchar(100)"`
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time
	ConfirmedAt           *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	EstimatedDeliveryTime *time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and UnitPrice snapshot the menu at checkout.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(150);not null"`
	UnitPrice  int64     `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
