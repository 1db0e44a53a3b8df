package realtime

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHub(bufferSize int) *Hub {
	return NewHub(bufferSize, metrics.NewRecorder(prometheus.NewRegistry()), discardLogger())
}

func newEvent(t *testing.T, collection, recordID string) *entity.ChangeEvent {
	t.Helper()

	event, err := entity.NewChangeEvent(collection, entity.ChangeTypeUpdate, recordID, map[string]string{"id": recordID}, time.Now())
	require.NoError(t, err)

	return event
}

func receive(t *testing.T, ch <-chan *entity.ChangeEvent) *entity.ChangeEvent {
	t.Helper()

	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}

func assertNoEvent(t *testing.T, ch <-chan *entity.ChangeEvent) {
	t.Helper()

	select {
	case event, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FansOutToMatchingSubscribers(t *testing.T) {
	hub := newTestHub(4)
	ctx := context.Background()

	storeSub, err := hub.Subscribe(ctx, entity.ChangeFilter{Collection: entity.CollectionStoreSettings})
	require.NoError(t, err)
	orderSub, err := hub.Subscribe(ctx, entity.ChangeFilter{Collection: entity.CollectionOrders, RecordID: "order-1"})
	require.NoError(t, err)
	allSub, err := hub.Subscribe(ctx, entity.ChangeFilter{})
	require.NoError(t, err)

	require.NoError(t, hub.Publish(ctx, newEvent(t, entity.CollectionOrders, "order-1")))
	require.NoError(t, hub.Publish(ctx, newEvent(t, entity.CollectionOrders, "order-2")))

	assert.Equal(t, "order-1", receive(t, orderSub.Events()).RecordID)
	assertNoEvent(t, orderSub.Events())
	assertNoEvent(t, storeSub.Events())

	assert.Equal(t, "order-1", receive(t, allSub.Events()).RecordID)
	assert.Equal(t, "order-2", receive(t, allSub.Events()).RecordID)
}

func TestHub_DropsWhenSubscriberBufferFull(t *testing.T) {
	hub := newTestHub(1)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, entity.ChangeFilter{})
	require.NoError(t, err)

	require.NoError(t, hub.Publish(ctx, newEvent(t, entity.CollectionOrders, "first")))
	require.NoError(t, hub.Publish(ctx, newEvent(t, entity.CollectionOrders, "second")))

	assert.Equal(t, "first", receive(t, sub.Events()).RecordID)
	assertNoEvent(t, sub.Events())
}

func TestHub_ReleasesSubscriptionWhenContextEnds(t *testing.T) {
	hub := newTestHub(1)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := hub.Subscribe(ctx, entity.ChangeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount())

	cancel()

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := newTestHub(1)

	sub, err := hub.Subscribe(context.Background(), entity.ChangeFilter{})
	require.NoError(t, err)

	assert.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())
	assert.Equal(t, 0, hub.SubscriberCount())

	// Publishing after release must not panic on the closed channel.
	assert.NoError(t, hub.Publish(context.Background(), newEvent(t, entity.CollectionOrders, "late")))
}

func TestHub_CloseRejectsNewSubscribers(t *testing.T) {
	hub := newTestHub(1)

	sub, err := hub.Subscribe(context.Background(), entity.ChangeFilter{})
	require.NoError(t, err)

	require.NoError(t, hub.Close())
	_, ok := <-sub.Events()
	assert.False(t, ok)

	_, err = hub.Subscribe(context.Background(), entity.ChangeFilter{})
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestHub_PublishNil(t *testing.T) {
	assert.Error(t, newTestHub(1).Publish(context.Background(), nil))
}
