package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/infra/cache"
	mockRepo "pizzeria/internal/mocks/repository"
	mockUsecase "pizzeria/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service  *cartService
	gate     *mockUsecase.MockInteractionGate
	carts    *cache.MemoryCartRepository
	menuRepo *mockRepo.MockMenuRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	fx := cartServiceFixtures{
		gate:     mockUsecase.NewMockInteractionGate(t),
		carts:    cache.NewMemoryCartRepository(time.Hour, fixedClock()),
		menuRepo: mockRepo.NewMockMenuRepository(t),
	}
	fx.service = newCartService(fx.gate, fx.carts, fx.menuRepo, newDiscardLogger())

	return fx
}

func margherita() *entity.MenuItem {
	return &entity.MenuItem{
		ID:        uuid.New(),
		Name:      "Margherita",
		Category:  "pizza",
		Price:     4590,
		Available: true,
	}
}

func (fx cartServiceFixtures) expectMenu(items ...*entity.MenuItem) {
	byID := make(map[uuid.UUID]*entity.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
		fx.menuRepo.EXPECT().FindMenuItemByID(mock.Anything, item.ID).Return(item, nil).Maybe()
	}
	fx.menuRepo.EXPECT().FindMenuItemsByIDs(mock.Anything, mock.Anything).Return(byID, nil).Maybe()
}

func TestCartService_AddItemMergesLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	pizza := margherita()

	fx.gate.EXPECT().CheckInteraction(ctx).Return(nil)
	fx.expectMenu(pizza)

	_, err := fx.service.AddItem(ctx, "cart-1", pizza.ID, 1, "no basil")
	require.NoError(t, err)

	priced, err := fx.service.AddItem(ctx, "cart-1", pizza.ID, 2, "")
	require.NoError(t, err)

	require.Len(t, priced.Lines, 1)
	assert.Equal(t, 3, priced.Lines[0].Quantity)
	assert.Equal(t, "no basil", priced.Lines[0].Notes)
	assert.Equal(t, int64(3*4590), priced.Total)
}

func TestCartService_ClosedStoreBlocksMutations(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.gate.EXPECT().CheckInteraction(ctx).Return(domainerrors.ErrStoreClosed)

	_, err := fx.service.AddItem(ctx, "cart-1", id, 1, "")
	assert.ErrorIs(t, err, domainerrors.ErrStoreClosed)

	_, err = fx.service.UpdateItemQuantity(ctx, "cart-1", id, 2)
	assert.ErrorIs(t, err, domainerrors.ErrStoreClosed)

	_, err = fx.service.RemoveItem(ctx, "cart-1", id)
	assert.ErrorIs(t, err, domainerrors.ErrStoreClosed)

	assert.ErrorIs(t, fx.service.ClearCart(ctx, "cart-1"), domainerrors.ErrStoreClosed)
}

func TestCartService_GetCartIgnoresGate(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	pizza := margherita()
	fx.expectMenu(pizza)

	require.NoError(t, fx.carts.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: pizza.ID, Quantity: 2}))

	priced, err := fx.service.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2*4590), priced.Total)
}

func TestCartService_AddItemValidation(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	pizza := margherita()
	soldOut := margherita()
	soldOut.Available = false

	fx.gate.EXPECT().CheckInteraction(ctx).Return(nil)
	fx.expectMenu(pizza, soldOut)

	_, err := fx.service.AddItem(ctx, "cart-1", pizza.ID, 0, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.AddItem(ctx, "cart-1", soldOut.ID, 1, "")
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemUnavailable)

	_, err = fx.service.AddItem(ctx, "cart-1", pizza.ID, maxLineQuantity+1, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItemRejectsOverflowingQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	pizza := margherita()

	fx.gate.EXPECT().CheckInteraction(ctx).Return(nil)
	fx.expectMenu(pizza)

	_, err := fx.service.AddItem(ctx, "cart-1", pizza.ID, 2, "")
	require.NoError(t, err)

	_, err = fx.service.AddItem(ctx, "cart-1", pizza.ID, math.MaxInt, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	cart, err := fx.carts.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	pizza := margherita()

	fx.gate.EXPECT().CheckInteraction(ctx).Return(nil)
	fx.expectMenu(pizza)
	require.NoError(t, fx.carts.SetLine(ctx, "cart-1", entity.CartLine{MenuItemID: pizza.ID, Quantity: 1}))

	priced, err := fx.service.UpdateItemQuantity(ctx, "cart-1", pizza.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, priced.Lines[0].Quantity)

	_, err = fx.service.UpdateItemQuantity(ctx, "cart-1", uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	priced, err = fx.service.UpdateItemQuantity(ctx, "cart-1", pizza.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, priced.Lines)
}
