package postgres

import (
	"context"
	"time"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

// CreateStaff persists a new staff account.
func (repo *staffRepository) CreateStaff(ctx context.Context, staff *entity.StaffAccount) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Omit("Sessions").Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStaff
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff account")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindStaffByUsername retrieves an account by username.
func (repo *staffRepository) FindStaffByUsername(ctx context.Context, username string) (*entity.StaffAccount, error) {
	var staffM model.StaffAccountModel

	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by username")
	}

	return toStaffDomain(&staffM), nil
}

// FindStaffByID retrieves an account by ID.
func (repo *staffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffAccount, error) {
	var staffM model.StaffAccountModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by ID")
	}

	return toStaffDomain(&staffM), nil
}

type staffSessionRepository struct {
	db *gorm.DB
}

// NewStaffSessionRepository is the constructor for staffSessionRepository.
func NewStaffSessionRepository(db *gorm.DB) repository.StaffSessionRepository {
	return &staffSessionRepository{db: db}
}

// CreateSession persists a new refresh-token session.
func (repo *staffSessionRepository) CreateSession(ctx context.Context, session *entity.StaffSession) error {
	sessionM := fromStaffSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("invalid staff reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindSessionByHash retrieves a session by its token hash. Expiry is checked by the caller.
func (repo *staffSessionRepository) FindSessionByHash(ctx context.Context, tokenHash string) (*entity.StaffSession, error) {
	var sessionM model.StaffSessionModel

	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toStaffSessionDomain(&sessionM), nil
}

// DeleteSession removes a session by ID.
func (repo *staffSessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StaffSessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete staff session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaffSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes every session past its expiry.
func (repo *staffSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&model.StaffSessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired staff sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toStaffDomain(data *model.StaffAccountModel) *entity.StaffAccount {
	if data == nil {
		return nil
	}

	return &entity.StaffAccount{
		ID:           data.ID,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStaffDomain(data *entity.StaffAccount) *model.StaffAccountModel {
	if data == nil {
		return nil
	}

	return &model.StaffAccountModel{
		ID:           data.ID,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toStaffSessionDomain(data *model.StaffSessionModel) *entity.StaffSession {
	if data == nil {
		return nil
	}

	return &entity.StaffSession{
		ID:        data.ID,
		StaffID:   data.StaffID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromStaffSessionDomain(data *entity.StaffSession) *model.StaffSessionModel {
	if data == nil {
		return nil
	}

	return &model.StaffSessionModel{
		ID:        data.ID,
		StaffID:   data.StaffID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
