package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pizzeria/config"
	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/delivery/api/sse"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffOrderHandlerParams holds dependencies for StaffOrderHandler, injected by Fx.
type StaffOrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Config  *config.Config
}

// StaffOrderHandler serves the order dashboard.
type StaffOrderHandler struct {
	orderUC   usecase.OrderUsecase
	heartbeat time.Duration
}

// NewStaffOrderHandler is the constructor for StaffOrderHandler
func NewStaffOrderHandler(params StaffOrderHandlerParams) *StaffOrderHandler {
	h := &StaffOrderHandler{orderUC: params.OrderUC}
	if rt := params.Config.Realtime; rt != nil {
		h.heartbeat = rt.HeartbeatInterval
	}

	return h
}

// UpdateStatusRequest names the target status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders lists orders, newest first. ?status= takes a comma-separated
// list and ?limit= is capped by configuration.
func (h *StaffOrderHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{}

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, ok := entity.ParseOrderStatus(strings.TrimSpace(part))
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", part)))
			}
			input.Statuses = append(input.Statuses, status)
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer"))
		}
		input.Limit = limit
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Advance moves the order to its next status.
func (h *StaffOrderHandler) Advance(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.AdvanceStatus(c.Request().Context(), orderID, staffActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves the order to an explicit, adjacent status.
func (h *StaffOrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(strings.TrimSpace(req.Status)), staffActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel cancels a non-terminal order.
func (h *StaffOrderHandler) Cancel(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), orderID, staffActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ConfirmPayment marks the order as paid.
func (h *StaffOrderHandler) ConfirmPayment(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ConfirmPayment(c.Request().Context(), orderID, staffActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Stream pushes every order change to the dashboard.
func (h *StaffOrderHandler) Stream(c echo.Context) error {
	orders, err := h.orderUC.WatchOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return sse.Stream(c, "order", orders, h.heartbeat)
}
