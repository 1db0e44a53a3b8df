package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeEvent_DecodePayload(t *testing.T) {
	status := &StoreStatus{IsOpen: true, OpeningTime: "18:00", ClosingTime: "23:00", UpdatedBy: "Staff"}

	event, err := NewChangeEvent(CollectionStoreSettings, ChangeTypeUpdate, "row", status, time.Now())
	require.NoError(t, err)

	var decoded StoreStatus
	require.NoError(t, event.DecodePayload(&decoded))
	assert.Equal(t, *status, decoded)
}

func TestChangeFilter_Matches(t *testing.T) {
	event := &ChangeEvent{Collection: CollectionOrders, Type: ChangeTypeUpdate, RecordID: "o1"}

	assert.True(t, ChangeFilter{}.Matches(event))
	assert.True(t, ChangeFilter{Collection: CollectionOrders, RecordID: "o1"}.Matches(event))
	assert.False(t, ChangeFilter{Collection: CollectionStoreSettings}.Matches(event))
	assert.False(t, ChangeFilter{RecordID: "o2"}.Matches(event))
	assert.False(t, ChangeFilter{Types: []ChangeType{ChangeTypeInsert}}.Matches(event))
	assert.True(t, ChangeFilter{Types: []ChangeType{ChangeTypeInsert, ChangeTypeUpdate}}.Matches(event))
	assert.False(t, ChangeFilter{}.Matches(nil))
}
