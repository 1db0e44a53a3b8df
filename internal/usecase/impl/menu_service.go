package impl

import (
	"context"
	"strings"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type menuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service instance
func NewMenuService(menuRepo repository.MenuRepository) usecase.MenuUsecase {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListMenu(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	items, err := s.menuRepo.ListMenuItems(ctx, strings.TrimSpace(strings.ToLower(category)))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list menu")
	}

	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.FindMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find menu item")
	}

	return item, nil
}
