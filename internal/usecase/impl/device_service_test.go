package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	mockRepo "pizzeria/internal/mocks/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return([]*entity.CustomerDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CustomerDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, customerID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, customerID, device.CustomerID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.CustomerDevice{
		ID:         deviceID,
		CustomerID: customerID,
		FCMToken:   "old-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		IsActive:   true,
	}
	updatedDevice := &entity.CustomerDevice{
		ID:         deviceID,
		CustomerID: customerID,
		FCMToken:   "new-fcm-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		IsActive:   true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return([]*entity.CustomerDevice{existingDevice}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{DeviceID: "d", FCMToken: "t", Platform: "web"})
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestDeviceService_GetDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	expectedDevices := []*entity.CustomerDevice{
		{ID: uuid.New(), CustomerID: customerID, IsActive: true},
		{ID: uuid.New(), CustomerID: customerID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCustomer(ctx, customerID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetDevices(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, customerID, deviceID))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(ctx, customerID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("other customer", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.CustomerDevice{ID: deviceID, CustomerID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(ctx, customerID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
