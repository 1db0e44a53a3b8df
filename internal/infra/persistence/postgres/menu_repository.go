package postgres

import (
	"context"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// ListMenuItems returns the catalogue ordered by category then name.
func (repo *menuRepository) ListMenuItems(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	query := repo.db.WithContext(ctx).Order("category ASC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// FindMenuItemByID retrieves a single item.
func (repo *menuRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindMenuItemsByIDs retrieves several items at once. Missing IDs are simply absent from the map.
func (repo *menuRepository) FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.MenuItem, error) {
	result := make(map[uuid.UUID]*entity.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items")
	}

	for _, itemM := range itemModels {
		result[itemM.ID] = toMenuItemDomain(itemM)
	}

	return result, nil
}

// UpsertMenuItems inserts items or overwrites existing rows with the same ID.
func (repo *menuRepository) UpsertMenuItems(ctx context.Context, items []*entity.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.MenuItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromMenuItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "category", "price", "available", "updated_at"}),
		}).
		Create(&itemModels).Error; err != nil {
		return errors.Wrap(err, "failed to upsert menu items")
	}

	return nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
