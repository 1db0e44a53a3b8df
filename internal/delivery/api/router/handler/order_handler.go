package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pizzeria/config"
	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/delivery/api/sse"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	OrderUC    usecase.OrderUsecase
	TrackerUC  usecase.OrderTrackerUsecase
	ReviewUC   usecase.ReviewUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// OrderHandler serves the customer side of an order: checkout, tracking,
// delivery confirmation and the review.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
	trackerUC  usecase.OrderTrackerUsecase
	reviewUC   usecase.ReviewUsecase
	heartbeat  time.Duration
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	h := &OrderHandler{
		checkoutUC: params.CheckoutUC,
		orderUC:    params.OrderUC,
		trackerUC:  params.TrackerUC,
		reviewUC:   params.ReviewUC,
		logger:     params.Logger,
	}
	if rt := params.Config.Realtime; rt != nil {
		h.heartbeat = rt.HeartbeatInterval
	}

	return h
}

// ConfirmDeliveryRequest identifies the customer confirming receipt.
type ConfirmDeliveryRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

// SubmitReviewRequest represents the request body for reviewing an order.
// The rating range is checked by the review use case.
type SubmitReviewRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Preflight answers whether the checkout step may be entered.
func (h *OrderHandler) Preflight(c echo.Context) error {
	if err := h.checkoutUC.CheckoutPreflight(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"allowed": true})
}

// PlaceOrder turns a cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req usecase.CheckoutInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.checkoutUC.Checkout(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderItems returns the lines of an order.
func (h *OrderHandler) GetOrderItems(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.orderUC.GetOrderItems(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Track streams the order as server-sent events until the client leaves.
func (h *OrderHandler) Track(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updates, err := h.trackerUC.Track(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return sse.Stream(c, "order", updates, h.heartbeat)
}

// TrackingQR renders the tracking link as a PNG.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.GenerateTrackingQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmDelivery closes a delivering order on the customer's word.
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ConfirmDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ConfirmDelivery(c.Request().Context(), orderID, uuid.MustParse(req.CustomerID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetReview returns the review of an order.
func (h *OrderHandler) GetReview(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// SubmitReview stores the one review an order may receive.
func (h *OrderHandler) SubmitReview(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), orderID, uuid.MustParse(req.CustomerID), req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}
