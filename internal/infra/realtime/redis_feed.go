package realtime

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisTransport carries change events over Redis PUBLISH/SUBSCRIBE.
type redisTransport struct {
	client  *redis.Client
	channel string
}

func newRedisTransport(client *redis.Client, channel string) *redisTransport {
	return &redisTransport{client: client, channel: channel}
}

func (t *redisTransport) name() string {
	return "redis"
}

func (t *redisTransport) publish(ctx context.Context, payload []byte) error {
	return errors.WithStack(t.client.Publish(ctx, t.channel, payload).Err())
}

func (t *redisTransport) listen(ctx context.Context, ready func(), deliver func(payload []byte)) error {
	pubsub := t.client.Subscribe(ctx, t.channel)
	defer pubsub.Close()

	// Receive blocks until the subscription confirmation arrives.
	if _, err := pubsub.Receive(ctx); err != nil {
		return errors.Wrap(err, "failed to SUBSCRIBE")
	}
	ready()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return errors.New("redis subscription channel closed")
			}
			deliver([]byte(msg.Payload))
		}
	}
}

// close leaves the client open; it is shared with the cart store.
func (t *redisTransport) close() error {
	return nil
}
