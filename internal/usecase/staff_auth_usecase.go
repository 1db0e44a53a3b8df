package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/domain/service"
)

// CreateStaffInput describes a new staff account.
type CreateStaffInput struct {
	Username    string      `json:"username" validate:"required,min=3,max=50"`
	DisplayName string      `json:"display_name" validate:"required,max=100"`
	Password    string      `json:"password" validate:"required,min=8,max=72"`
	Role        entity.Role `json:"role" validate:"required"`
}

// StaffAuthUsecase issues, validates and revokes staff credentials.
type StaffAuthUsecase interface {
	// Login verifies the password and opens a session.
	Login(ctx context.Context, username, password string) (*entity.StaffTokens, error)

	// Refresh rotates the session behind refreshToken.
	Refresh(ctx context.Context, refreshToken string) (*entity.StaffTokens, error)

	// Logout revokes the session behind refreshToken.
	Logout(ctx context.Context, refreshToken string) error

	// CreateStaff registers a new account.
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.StaffAccount, error)

	// ValidateAccess parses an access token.
	ValidateAccess(ctx context.Context, accessToken string) (*service.Claims, error)
}
