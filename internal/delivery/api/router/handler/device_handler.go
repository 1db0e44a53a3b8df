package handler

import (
	"net/http"

	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler manages the push-notification devices of a customer.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC}
}

// RegisterDevice registers a device or refreshes its FCM token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	customerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), customerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetDevices lists the active devices of a customer.
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	customerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetDevices(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice stops pushes to one device.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	customerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := uuidParam(c, "deviceId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), customerID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
