package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreSettingsModel mirrors the singleton 'store_settings' table.
// The unique Singleton column only ever holds true, which caps the table at one row.
type StoreSettingsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Singleton   bool      `gorm:"not null;default:true;uniqueIndex:idx_store_settings_singleton"`
	IsOpen      bool      `gorm:"not null;default:false"`
	OpeningTime string    `gorm:"type:varchar(5);not null"`
	ClosingTime string    `gorm:"type:varchar(5);not null"`
	LastUpdated time.Time `gorm:"not null"`
	UpdatedBy   string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StoreSettingsModel) TableName() string {
	return "store_settings"
}
