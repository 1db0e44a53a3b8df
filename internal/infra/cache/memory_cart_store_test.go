package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzeria/config"
	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestMemoryCartRepository_LinesReplaceAndRemove(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)}
	repo := NewMemoryCartRepository(time.Hour, clock.Now)

	margherita := uuid.New()
	calabresa := uuid.New()

	require.NoError(t, repo.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: margherita, Quantity: 1}))
	require.NoError(t, repo.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: calabresa, Quantity: 2}))
	require.NoError(t, repo.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: margherita, Quantity: 3, Notes: "no basil"}))

	cart, err := repo.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	for _, line := range cart.Lines {
		if line.MenuItemID == margherita {
			assert.Equal(t, 3, line.Quantity)
			assert.Equal(t, "no basil", line.Notes)
		}
	}

	require.NoError(t, repo.RemoveLine(ctx, "cart-1", margherita))
	cart, err = repo.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, calabresa, cart.Lines[0].MenuItemID)

	require.NoError(t, repo.Clear(ctx, "cart-1"))
	cart, err = repo.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestMemoryCartRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)}
	repo := NewMemoryCartRepository(time.Hour, clock.Now)

	require.NoError(t, repo.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: uuid.New(), Quantity: 1}))

	clock.now = clock.now.Add(59 * time.Minute)
	require.NoError(t, repo.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: uuid.New(), Quantity: 1}))

	// The second write refreshed the TTL.
	clock.now = clock.now.Add(30 * time.Minute)
	cart, err := repo.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)

	clock.now = clock.now.Add(time.Hour)
	cart, err = repo.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "cart-1", cart.ID)
}

func TestMemoryCartRepository_UnknownCartIsEmpty(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour, time.Now)

	cart, err := repo.GetCart(context.Background(), "missing")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Lines)

	assert.NoError(t, repo.RemoveLine(context.Background(), "missing", uuid.New()))
}

func TestMemoryCartRepository_SweepDropsAbandonedCarts(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)}
	repo := NewMemoryCartRepository(time.Hour, clock.Now)

	require.NoError(t, repo.SetLine(ctx, "abandoned", entity.CartLine{MenuItemID: uuid.New(), Quantity: 1}))
	clock.now = clock.now.Add(30 * time.Minute)
	require.NoError(t, repo.SetLine(ctx, "active", entity.CartLine{MenuItemID: uuid.New(), Quantity: 1}))

	clock.now = clock.now.Add(45 * time.Minute)
	assert.Equal(t, 1, repo.Sweep())
	assert.NotContains(t, repo.carts, "abandoned")
	assert.Contains(t, repo.carts, "active")

	assert.Equal(t, 0, repo.Sweep())
}

func TestNewCartRepository_MemoryStoreSweepsWithLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := NewCartRepository(CartParams{Lc: lc, Config: &config.Config{}, Logger: logger})
	require.IsType(t, &MemoryCartRepository{}, repo)

	lc.RequireStart()
	lc.RequireStop()
}
