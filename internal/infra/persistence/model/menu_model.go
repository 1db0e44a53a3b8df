package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel mirrors the read-only 'menu_items' catalogue.
type MenuItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Price       int64     `gorm:"not null"`
	Available   bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
