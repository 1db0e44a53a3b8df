package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreStatus_FormattedHours(t *testing.T) {
	var missing *StoreStatus
	assert.Equal(t, "Hours unavailable", missing.FormattedHours())

	status := NewDefaultStoreStatus("18:00", "23:00", "system", time.Now())
	assert.Equal(t, "18:00 - 23:00", status.FormattedHours())
	assert.False(t, status.IsOpen)

	status.ClosingTime = ""
	assert.Equal(t, "Hours unavailable", status.FormattedHours())
}

func TestStoreStatus_IsStaleComparedTo(t *testing.T) {
	now := time.Now()
	older := &StoreStatus{LastUpdated: now.Add(-time.Second)}
	newer := &StoreStatus{LastUpdated: now}

	assert.True(t, older.IsStaleComparedTo(newer))
	assert.False(t, newer.IsStaleComparedTo(older))
	assert.False(t, newer.IsStaleComparedTo(newer))
	assert.False(t, older.IsStaleComparedTo(nil))
}

func TestStoreStatus_IsStaleComparedToIgnoresSubMicrosecond(t *testing.T) {
	stored := &StoreStatus{LastUpdated: time.Date(2025, 3, 14, 19, 30, 0, 123456000, time.UTC)}
	pushed := &StoreStatus{LastUpdated: stored.LastUpdated.Add(789 * time.Nanosecond)}

	assert.False(t, stored.IsStaleComparedTo(pushed))
	assert.False(t, pushed.IsStaleComparedTo(stored))
}

func TestStorageTime(t *testing.T) {
	at := time.Date(2025, 3, 14, 19, 30, 0, 123456789, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 14, 19, 30, 0, 123456000, time.UTC), StorageTime(at))
}

func TestStoreStatus_CloneIsDetached(t *testing.T) {
	status := &StoreStatus{IsOpen: true}
	cloned := status.Clone()
	cloned.IsOpen = false

	assert.True(t, status.IsOpen)
}
