package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pizzeria/internal/domain/entity"
	mockRepo "pizzeria/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis fails every command immediately.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestNewMenuRepository_WithoutRedisReturnsStore(t *testing.T) {
	store := mockRepo.NewMockMenuRepository(t)

	repo := NewMenuRepository(MenuCacheParams{Repo: store, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	assert.Same(t, store, repo)
}

func TestCachedMenuRepository_FallsThroughWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockMenuRepository(t)
	items := []*entity.MenuItem{{ID: uuid.New(), Name: "Margherita", Category: "pizzas", Price: 950, Available: true}}
	store.EXPECT().ListMenuItems(ctx, "pizzas").Return(items, nil).Once()

	repo := NewCachedMenuRepository(store, unreachableRedis(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := repo.ListMenuItems(ctx, "pizzas")

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCachedMenuRepository_UpsertWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockMenuRepository(t)
	items := []*entity.MenuItem{{ID: uuid.New(), Name: "Diavola", Category: "pizzas", Price: 1100}}
	store.EXPECT().UpsertMenuItems(ctx, items).Return(nil).Once()

	repo := NewCachedMenuRepository(store, unreachableRedis(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, repo.UpsertMenuItems(ctx, items))
}
