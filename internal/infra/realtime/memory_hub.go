// Package realtime implements the change feed that pushes committed row
// changes to every interested session.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrHubClosed is returned by Subscribe after the hub has been shut down.
var ErrHubClosed = errors.New("realtime hub closed")

// Hub is the in-process fan-out. It is a complete ChangeFeed for a single
// instance and the local delivery stage of the postgres and redis feeds.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscription]struct{}
	closed      bool
	bufferSize  int
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// NewHub creates a hub whose subscribers buffer up to bufferSize events.
func NewHub(bufferSize int, metrics service.MetricsRecorder, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &Hub{
		subscribers: make(map[*subscription]struct{}),
		bufferSize:  bufferSize,
		metrics:     metrics,
		logger:      logger,
	}
}

// Publish delivers the event to local subscribers.
func (h *Hub) Publish(_ context.Context, event *entity.ChangeEvent) error {
	if event == nil {
		return errors.New("nil change event")
	}

	h.metrics.RealtimeEventPublished(event.Collection)
	h.Deliver(event)

	return nil
}

// Deliver fans event out without blocking; a subscriber with a full buffer misses it.
func (h *Hub) Deliver(event *entity.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if !sub.filter.Matches(event) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			h.metrics.RealtimeEventDropped()
			h.logger.Warn("Realtime subscriber buffer full, dropping event",
				slog.String("collection", event.Collection),
				slog.String("record_id", event.RecordID),
			)
		}
	}
}

// Subscribe registers a listener that is released on Close or when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, filter entity.ChangeFilter) (service.Subscription, error) {
	sub := &subscription{
		hub:    h,
		filter: filter,
		events: make(chan *entity.ChangeEvent, h.bufferSize),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, ErrHubClosed
	}
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	h.metrics.RealtimeSubscribersChanged(1)

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

// SubscriberCount reports the number of open subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Close releases every subscription and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true
	subs := make([]*subscription, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}

	return nil
}

func (h *Hub) remove(sub *subscription) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; !ok {
		return false
	}
	delete(h.subscribers, sub)
	// Closed under the write lock so Deliver never sends on a closed channel.
	close(sub.events)

	return true
}

type subscription struct {
	hub       *Hub
	filter    entity.ChangeFilter
	events    chan *entity.ChangeEvent
	done      chan struct{}
	closeOnce sync.Once
}

func (s *subscription) Events() <-chan *entity.ChangeEvent {
	return s.events
}

func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		if s.hub.remove(s) {
			s.hub.metrics.RealtimeSubscribersChanged(-1)
		}
		close(s.done)
	})

	return nil
}
