package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccount is a credential for the staff dashboards.
type StaffAccount struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffSession is a revocable refresh-token session.
type StaffSession struct {
	ID        uuid.UUID // The unique ID of the session record.
	StaffID   uuid.UUID // The staff account the session belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (s *StaffSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// StaffTokens is the credential pair issued on login or refresh.
type StaffTokens struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Staff        *StaffAccount `json:"staff"`
}
