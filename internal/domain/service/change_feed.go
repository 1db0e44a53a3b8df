package service

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// ChangeFeed is the realtime push channel. Delivery is at-most-once with no
// replay: a subscriber that is not listening, or is too slow, misses events.
type ChangeFeed interface {
	// Publish fans the event out to every matching subscriber.
	Publish(ctx context.Context, event *entity.ChangeEvent) error

	// Subscribe registers a subscriber. The subscription is released when
	// Close is called or ctx is done, whichever comes first.
	Subscribe(ctx context.Context, filter entity.ChangeFilter) (Subscription, error)
}

// Subscription is one listener on the ChangeFeed.
type Subscription interface {
	// Events yields matching events; the channel is closed on release.
	Events() <-chan *entity.ChangeEvent

	// Close releases the subscription. It is safe to call more than once.
	Close() error
}
