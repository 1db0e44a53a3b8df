package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. Phone is the natural key used at checkout.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(30);unique;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []*DeliveryAddressModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// DeliveryAddressModel mirrors the 'delivery_addresses' table.
type DeliveryAddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20);not null"`
	Complement   string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100);not null"`
	Reference    string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAddressModel) TableName() string {
	return "delivery_addresses"
}
