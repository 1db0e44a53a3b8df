package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	mockRepo "pizzeria/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuService_ListMenuNormalisesCategory(t *testing.T) {
	menuRepo := mockRepo.NewMockMenuRepository(t)
	svc := NewMenuService(menuRepo)
	items := []*entity.MenuItem{margherita()}

	menuRepo.EXPECT().ListMenuItems(mock.Anything, "pizza").Return(items, nil)

	got, err := svc.ListMenu(context.Background(), " Pizza ")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMenuService_GetMenuItemNotFound(t *testing.T) {
	menuRepo := mockRepo.NewMockMenuRepository(t)
	svc := NewMenuService(menuRepo)
	id := uuid.New()

	menuRepo.EXPECT().FindMenuItemByID(mock.Anything, id).Return(nil, repository.ErrMenuItemNotFound)

	_, err := svc.GetMenuItem(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}
