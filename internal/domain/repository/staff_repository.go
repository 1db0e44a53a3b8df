package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrStaffNotFound is returned when a staff account is not found.
	ErrStaffNotFound = errors.New("staff account not found")
	// ErrDuplicateStaff is returned when the username is taken.
	ErrDuplicateStaff = errors.New("staff account already exists")
	// ErrStaffSessionNotFound is returned when a refresh-token session is not found.
	ErrStaffSessionNotFound = errors.New("staff session not found")
)

// StaffRepository defines staff account persistence.
type StaffRepository interface {
	// CreateStaff persists a new staff account.
	CreateStaff(ctx context.Context, staff *entity.StaffAccount) error

	// FindStaffByUsername retrieves an account by username.
	FindStaffByUsername(ctx context.Context, username string) (*entity.StaffAccount, error)

	// FindStaffByID retrieves an account by ID.
	FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffAccount, error)
}

// StaffSessionRepository stores refresh-token sessions so they can be revoked.
type StaffSessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.StaffSession) error

	// FindSessionByHash retrieves a session by its token hash.
	FindSessionByHash(ctx context.Context, tokenHash string) (*entity.StaffSession, error)

	// DeleteSession removes a session by ID.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredSessions removes all expired sessions and returns how many were deleted.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
