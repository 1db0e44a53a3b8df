package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for customer device management
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *DeviceInfo) (*entity.CustomerDevice, error)

	// GetDevices retrieves all active devices for a customer
	GetDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// DeactivateDevice removes a device (soft delete)
	DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error
}
