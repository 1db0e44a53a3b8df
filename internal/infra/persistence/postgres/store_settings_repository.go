package postgres

import (
	"context"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type storeSettingsRepository struct {
	db *gorm.DB
}

// NewStoreSettingsRepository is the constructor for storeSettingsRepository.
func NewStoreSettingsRepository(db *gorm.DB) repository.StoreSettingsRepository {
	return &storeSettingsRepository{db: db}
}

// Find loads the singleton row.
func (repo *storeSettingsRepository) Find(ctx context.Context) (*entity.StoreStatus, error) {
	var settingsM model.StoreSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find store settings")
	}

	return toStoreStatusDomain(&settingsM), nil
}

// Create inserts the singleton row. A second session racing on first access
// hits the unique singleton index and gets ErrStoreStatusConflict.
func (repo *storeSettingsRepository) Create(ctx context.Context, status *entity.StoreStatus) error {
	settingsM := fromStoreStatusDomain(status)

	if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrStoreStatusConflict
		}

		return errors.Wrap(err, "failed to create store settings")
	}

	status.ID = settingsM.ID

	return nil
}

// Update writes the mutable columns of the singleton row.
func (repo *storeSettingsRepository) Update(ctx context.Context, status *entity.StoreStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreSettingsModel{}).
		Where("id = ?", status.ID).
		Updates(map[string]any{
			"is_open":      status.IsOpen,
			"last_updated": status.LastUpdated,
			"updated_by":   status.UpdatedBy,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreStatusNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreStatusDomain(data *model.StoreSettingsModel) *entity.StoreStatus {
	if data == nil {
		return nil
	}

	return &entity.StoreStatus{
		ID:          data.ID,
		IsOpen:      data.IsOpen,
		OpeningTime: data.OpeningTime,
		ClosingTime: data.ClosingTime,
		LastUpdated: data.LastUpdated,
		UpdatedBy:   data.UpdatedBy,
	}
}

func fromStoreStatusDomain(data *entity.StoreStatus) *model.StoreSettingsModel {
	if data == nil {
		return nil
	}

	return &model.StoreSettingsModel{
		ID:          data.ID,
		Singleton:   true,
		IsOpen:      data.IsOpen,
		OpeningTime: data.OpeningTime,
		ClosingTime: data.ClosingTime,
		LastUpdated: data.LastUpdated,
		UpdatedBy:   data.UpdatedBy,
	}
}
