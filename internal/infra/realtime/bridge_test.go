package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopbackTransport echoes published payloads to every listener, like a broker would.
type loopbackTransport struct {
	mu        sync.Mutex
	listeners []chan []byte
	failFirst atomic.Bool
	attempts  atomic.Int32
}

func (t *loopbackTransport) name() string { return "loopback" }

func (t *loopbackTransport) publish(_ context.Context, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, l := range t.listeners {
		l <- payload
	}

	return nil
}

func (t *loopbackTransport) listen(ctx context.Context, ready func(), deliver func([]byte)) error {
	t.attempts.Add(1)
	if t.failFirst.CompareAndSwap(true, false) {
		return errors.New("connection refused")
	}

	ch := make(chan []byte, 16)
	t.mu.Lock()
	t.listeners = append(t.listeners, ch)
	t.mu.Unlock()
	ready()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-ch:
			deliver(payload)
		}
	}
}

func (t *loopbackTransport) close() error { return nil }

func newTestBridge(t *testing.T, transport *loopbackTransport) *bridgeFeed {
	t.Helper()

	recorder := metrics.NewRecorder(prometheus.NewRegistry())
	feed := newBridgeFeed(NewHub(4, recorder, discardLogger()), transport, recorder, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, feed.Start(ctx))
	t.Cleanup(func() { _ = feed.Stop(context.Background()) })

	return feed
}

func TestBridgeFeed_DeliversBrokerEcho(t *testing.T) {
	feed := newTestBridge(t, &loopbackTransport{})

	sub, err := feed.Subscribe(context.Background(), entity.ChangeFilter{Collection: entity.CollectionStoreSettings})
	require.NoError(t, err)

	event := newEvent(t, entity.CollectionStoreSettings, "settings-1")
	require.NoError(t, feed.Publish(context.Background(), event))

	got := receive(t, sub.Events())
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.RecordID, got.RecordID)
	assert.JSONEq(t, string(event.Payload), string(got.Payload))
}

func TestBridgeFeed_DiscardsMalformedPayload(t *testing.T) {
	transport := &loopbackTransport{}
	feed := newTestBridge(t, transport)

	sub, err := feed.Subscribe(context.Background(), entity.ChangeFilter{})
	require.NoError(t, err)

	require.NoError(t, transport.publish(context.Background(), []byte("{not json")))
	assertNoEvent(t, sub.Events())
}

func TestBridgeFeed_ReconnectsAfterListenFailure(t *testing.T) {
	transport := &loopbackTransport{}
	transport.failFirst.Store(true)

	feed := newTestBridge(t, transport)
	assert.GreaterOrEqual(t, transport.attempts.Load(), int32(2))

	sub, err := feed.Subscribe(context.Background(), entity.ChangeFilter{})
	require.NoError(t, err)
	require.NoError(t, feed.Publish(context.Background(), newEvent(t, entity.CollectionOrders, "order-9")))
	assert.Equal(t, "order-9", receive(t, sub.Events()).RecordID)
}

func TestBridgeFeed_StopReleasesSubscribers(t *testing.T) {
	recorder := metrics.NewRecorder(prometheus.NewRegistry())
	feed := newBridgeFeed(NewHub(1, recorder, discardLogger()), &loopbackTransport{}, recorder, discardLogger())
	require.NoError(t, feed.Start(context.Background()))

	sub, err := feed.Subscribe(context.Background(), entity.ChangeFilter{})
	require.NoError(t, err)

	require.NoError(t, feed.Stop(context.Background()))
	_, ok := <-sub.Events()
	assert.False(t, ok)
}
