package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	menuListKeyPrefix = "menu:list:"
	menuTTL           = 5 * time.Minute
)

// MenuCacheParams holds dependencies for the menu cache, injected by Fx
type MenuCacheParams struct {
	fx.In

	Repo   repository.MenuRepository `name:"menuStore"`
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewMenuRepository wraps the database menu repository with a redis
// read-through cache for listings. Without redis it returns the store as is.
func NewMenuRepository(params MenuCacheParams) repository.MenuRepository {
	if params.Redis == nil {
		return params.Repo
	}

	return NewCachedMenuRepository(params.Repo, params.Redis, params.Logger)
}

// CachedMenuRepository caches ListMenuItems per category. Cache failures fall
// through to the database.
type CachedMenuRepository struct {
	repository.MenuRepository

	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedMenuRepository(repo repository.MenuRepository, client *redis.Client, logger *slog.Logger) *CachedMenuRepository {
	return &CachedMenuRepository{
		MenuRepository: repo,
		redis:          client,
		ttl:            menuTTL,
		logger:         logger,
	}
}

func menuListKey(category string) string {
	if category == "" {
		return menuListKeyPrefix + "all"
	}

	return menuListKeyPrefix + category
}

func (c *CachedMenuRepository) ListMenuItems(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	key := menuListKey(category)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []*entity.MenuItem
		if jsonErr := json.Unmarshal(data, &items); jsonErr == nil {
			return items, nil
		}
		c.logger.Warn("Discarding corrupt cached menu", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Menu cache read failed, using database", slog.Any("error", err))
	}

	items, err := c.MenuRepository.ListMenuItems(ctx, category)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(items); jsonErr == nil {
		if setErr := c.redis.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.logger.Warn("Failed to cache menu", slog.Any("error", setErr))
		}
	}

	return items, nil
}

// UpsertMenuItems writes through and drops every cached listing.
func (c *CachedMenuRepository) UpsertMenuItems(ctx context.Context, items []*entity.MenuItem) error {
	if err := c.MenuRepository.UpsertMenuItems(ctx, items); err != nil {
		return err
	}

	keys, err := c.redis.Keys(ctx, menuListKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return nil
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate menu cache", slog.Any("error", err))
	}

	return nil
}

var _ repository.MenuRepository = (*CachedMenuRepository)(nil)

// FindMenuItemByID is served by the database so availability is never stale.
func (c *CachedMenuRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return c.MenuRepository.FindMenuItemByID(ctx, id)
}
