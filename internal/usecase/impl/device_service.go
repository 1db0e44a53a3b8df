package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices by customer")
	}

	// Same client device: keep the row, swap the token.
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device by ID")
		}
		s.log(ctx).Info("Device token refreshed", slog.String("device_id", device.ID.String()))

		return updated, nil
	}

	now := s.now()
	device := &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   strings.ToLower(deviceInfo.Platform),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithDetails("device already registered")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}
	s.log(ctx).Info("Device registered",
		slog.String("customer_id", customerID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// GetDevices retrieves all active devices for a customer
func (s *deviceService) GetDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active devices by customer")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find device by ID")
	}

	if device.CustomerID != customerID {
		return domainerrors.ErrForbidden.WithDetails("device belongs to another customer")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete device")
	}

	return nil
}
