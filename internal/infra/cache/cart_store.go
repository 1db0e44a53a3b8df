package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pizzeria/config"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	cartKeyPrefix       = "cart:"
	defaultCartTTL      = 24 * time.Hour
	memorySweepInterval = 10 * time.Minute
)

// CartParams holds dependencies for the cart store, injected by Fx
type CartParams struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewCartRepository returns the redis cart store when a client exists and the
// in-process store otherwise.
func NewCartRepository(params CartParams) repository.CartRepository {
	ttl := defaultCartTTL
	if params.Config.Redis != nil && params.Config.Redis.CartTTL > 0 {
		ttl = params.Config.Redis.CartTTL
	}

	if params.Redis == nil {
		params.Logger.Info("Using in-process cart store")

		repo := NewMemoryCartRepository(ttl, time.Now)
		if params.Lc != nil {
			registerSweeper(params.Lc, repo, params.Logger)
		}

		return repo
	}

	return NewRedisCartRepository(params.Redis, ttl)
}

// registerSweeper evicts abandoned in-process carts for the app's lifetime.
func registerSweeper(lc fx.Lifecycle, repo *MemoryCartRepository, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				repo.RunSweeper(ctx, memorySweepInterval, logger)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

// RedisCartRepository keeps each cart in one hash: field menu item ID, value
// the JSON line. Every write refreshes the key TTL.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{client: client, ttl: ttl}
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

func (r *RedisCartRepository) GetCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(cartID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	cart := &entity.Cart{ID: cartID, Lines: make([]entity.CartLine, 0, len(fields))}
	for field, value := range fields {
		var line entity.CartLine
		if err := json.Unmarshal([]byte(value), &line); err != nil {
			return nil, errors.Wrapf(err, "corrupt cart line %s", field)
		}
		cart.Lines = append(cart.Lines, line)
	}
	sortLines(cart.Lines)

	return cart, nil
}

func (r *RedisCartRepository) SetLine(ctx context.Context, cartID string, line entity.CartLine) error {
	value, err := json.Marshal(line)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart line")
	}

	key := cartKey(cartID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, line.MenuItemID.String(), value)
		pipe.Expire(ctx, key, r.ttl)

		return nil
	})

	return errors.Wrap(err, "failed to write cart line")
}

func (r *RedisCartRepository) RemoveLine(ctx context.Context, cartID string, menuItemID uuid.UUID) error {
	return errors.Wrap(r.client.HDel(ctx, cartKey(cartID), menuItemID.String()).Err(), "failed to remove cart line")
}

func (r *RedisCartRepository) Clear(ctx context.Context, cartID string) error {
	return errors.Wrap(r.client.Del(ctx, cartKey(cartID)).Err(), "failed to clear cart")
}
