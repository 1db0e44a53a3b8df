package entity

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Collections that emit change events.
const (
	CollectionStoreSettings = "store_settings"
	CollectionOrders        = "orders"
	CollectionOrderReviews  = "order_reviews"
)

// ChangeType is the kind of row mutation a ChangeEvent describes.
type ChangeType string

const (
	ChangeTypeInsert ChangeType = "INSERT"
	ChangeTypeUpdate ChangeType = "UPDATE"
)

// ChangeEvent is one push notification on the realtime feed. Payload carries
// the full row after the write.
type ChangeEvent struct {
	ID          uuid.UUID       `json:"id"`
	Collection  string          `json:"collection"`
	Type        ChangeType      `json:"type"`
	RecordID    string          `json:"record_id"`
	Payload     json.RawMessage `json:"payload"`
	CommittedAt time.Time       `json:"committed_at"`
}

// NewChangeEvent serialises row into a ChangeEvent.
func NewChangeEvent(collection string, changeType ChangeType, recordID string, row any, now time.Time) (*ChangeEvent, error) {
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	return &ChangeEvent{
		ID:          uuid.New(),
		Collection:  collection,
		Type:        changeType,
		RecordID:    recordID,
		Payload:     payload,
		CommittedAt: now,
	}, nil
}

// DecodePayload unmarshals the row carried by the event into dst.
func (e *ChangeEvent) DecodePayload(dst any) error {
	return json.Unmarshal(e.Payload, dst)
}

// ChangeFilter selects which events a subscriber receives. Zero fields match everything.
type ChangeFilter struct {
	Collection string
	RecordID   string
	Types      []ChangeType
}

// Matches reports whether the event passes the filter.
func (f ChangeFilter) Matches(event *ChangeEvent) bool {
	if event == nil {
		return false
	}
	if f.Collection != "" && f.Collection != event.Collection {
		return false
	}
	if f.RecordID != "" && f.RecordID != event.RecordID {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, event.Type) {
		return false
	}

	return true
}
