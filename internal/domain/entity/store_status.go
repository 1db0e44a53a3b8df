// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the process-wide singleton describing whether purchases are accepted.
type StoreStatus struct {
	ID          uuid.UUID `json:"id"`
	IsOpen      bool      `json:"is_open"`      // The sole gate for every purchase-path action.
	OpeningTime string    `json:"opening_time"` // "HH:MM", display only.
	ClosingTime string    `json:"closing_time"` // "HH:MM", display only.
	LastUpdated time.Time `json:"last_updated"` // Timestamp of the last mutation.
	UpdatedBy   string    `json:"updated_by"`   // Free-text actor label.
}

// NewDefaultStoreStatus builds the closed-by-default row created on first access.
func NewDefaultStoreStatus(openingTime, closingTime, actor string, now time.Time) *StoreStatus {
	return &StoreStatus{
		ID:          uuid.New(),
		IsOpen:      false,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
		LastUpdated: now,
		UpdatedBy:   actor,
	}
}

// FormattedHours renders the opening window for display.
func (s *StoreStatus) FormattedHours() string {
	if s == nil || s.OpeningTime == "" || s.ClosingTime == "" {
		return "Hours unavailable"
	}

	return fmt.Sprintf("%s - %s", s.OpeningTime, s.ClosingTime)
}

// Clone returns a detached copy safe to hand out to callers.
func (s *StoreStatus) Clone() *StoreStatus {
	if s == nil {
		return nil
	}
	cloned := *s

	return &cloned
}

// IsStaleComparedTo reports whether s was written before other, at storage precision.
func (s *StoreStatus) IsStaleComparedTo(other *StoreStatus) bool {
	if s == nil || other == nil {
		return false
	}

	return StorageTime(s.LastUpdated).Before(StorageTime(other.LastUpdated))
}
