package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	reconnectMinBackoff = 500 * time.Millisecond
	reconnectMaxBackoff = 15 * time.Second
)

// transport moves serialised change events between instances.
type transport interface {
	name() string
	publish(ctx context.Context, payload []byte) error
	// listen blocks until ctx is done or the connection fails. It calls ready
	// once the server confirmed the subscription, then deliver per message.
	listen(ctx context.Context, ready func(), deliver func(payload []byte)) error
	close() error
}

// bridgeFeed publishes through a broker and fans received events into a local Hub.
// A writer sees its own change only when the broker echoes it back.
type bridgeFeed struct {
	hub       *Hub
	transport transport
	metrics   service.MetricsRecorder
	logger    *slog.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	readyOnce sync.Once
	ready     chan struct{}
}

func newBridgeFeed(hub *Hub, t transport, metrics service.MetricsRecorder, logger *slog.Logger) *bridgeFeed {
	return &bridgeFeed{
		hub:       hub,
		transport: t,
		metrics:   metrics,
		logger:    logger.With(slog.String("feed", t.name())),
		ready:     make(chan struct{}),
	}
}

// Publish serialises the event and hands it to the broker.
func (f *bridgeFeed) Publish(ctx context.Context, event *entity.ChangeEvent) error {
	if event == nil {
		return errors.New("nil change event")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode change event")
	}

	if err := f.transport.publish(ctx, payload); err != nil {
		return errors.Wrapf(err, "failed to publish %s change event", event.Collection)
	}
	f.metrics.RealtimeEventPublished(event.Collection)

	return nil
}

// Subscribe registers a local listener on the hub.
func (f *bridgeFeed) Subscribe(ctx context.Context, filter entity.ChangeFilter) (service.Subscription, error) {
	return f.hub.Subscribe(ctx, filter)
}

// Start runs the listen loop and waits until the first subscription is confirmed.
func (f *bridgeFeed) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	f.wg.Add(1)
	go f.run(runCtx)

	select {
	case <-f.ready:
		f.logger.Info("Realtime feed listening")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "realtime feed did not become ready")
	}
}

// Stop ends the listen loop and releases every local subscription.
func (f *bridgeFeed) Stop(_ context.Context) error {
	if f.cancel != nil {
		f.cancel()
	}
	f.wg.Wait()

	hubErr := f.hub.Close()
	if err := f.transport.close(); err != nil {
		return err
	}

	return hubErr
}

func (f *bridgeFeed) run(ctx context.Context) {
	defer f.wg.Done()

	backoff := reconnectMinBackoff
	for {
		err := f.transport.listen(ctx, f.markReady, f.deliver)
		if ctx.Err() != nil {
			return
		}

		f.logger.Warn("Realtime feed connection lost, reconnecting",
			slog.Any("error", err),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, reconnectMaxBackoff)
	}
}

func (f *bridgeFeed) markReady() {
	f.readyOnce.Do(func() { close(f.ready) })
}

func (f *bridgeFeed) deliver(payload []byte) {
	var event entity.ChangeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		f.logger.Warn("Discarding malformed change event", slog.Any("error", err))

		return
	}

	f.hub.Deliver(&event)
}
