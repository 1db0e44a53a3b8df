package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccountModel mirrors the 'staff_accounts' table.
type StaffAccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sessions []StaffSessionModel `gorm:"foreignKey:StaffID"`
}

// TableName explicitly sets the table name for GORM.
func (StaffAccountModel) TableName() string {
	return "staff_accounts"
}

// StaffSessionModel mirrors the 'staff_sessions' table. Only the sha256 of the refresh token is stored.
type StaffSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffSessionModel) TableName() string {
	return "staff_sessions"
}
