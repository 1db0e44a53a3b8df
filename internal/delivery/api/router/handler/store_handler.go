package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pizzeria/config"
	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/delivery/api/sse"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreStatusUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// StoreHandler serves the store status and its purchase gate.
type StoreHandler struct {
	storeUC   usecase.StoreStatusUsecase
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	h := &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
	if rt := params.Config.Realtime; rt != nil {
		h.heartbeat = rt.HeartbeatInterval
	}

	return h
}

// InteractionResponse tells the client whether purchase actions are allowed.
type InteractionResponse struct {
	Allowed bool   `json:"allowed"`
	Hours   string `json:"hours"`
}

// GetStatus returns the persisted store status.
func (h *StoreHandler) GetStatus(c echo.Context) error {
	status, err := h.storeUC.FetchStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetHours returns the opening window for display.
func (h *StoreHandler) GetHours(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"hours": h.storeUC.FormattedHours()})
}

// GetInteraction answers the purchase gate. A closed store is a 423 carrying
// the support contact.
func (h *StoreHandler) GetInteraction(c echo.Context) error {
	if err := h.storeUC.CheckInteraction(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, InteractionResponse{
		Allowed: true,
		Hours:   h.storeUC.FormattedHours(),
	})
}

// StreamStatus pushes the store status as server-sent events.
func (h *StoreHandler) StreamStatus(c echo.Context) error {
	statuses, err := h.storeUC.Watch(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return sse.Stream(c, "store_status", statuses, h.heartbeat)
}

// Toggle flips the store open or closed. Staff only.
func (h *StoreHandler) Toggle(c echo.Context) error {
	status, err := h.storeUC.Toggle(c.Request().Context(), staffActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
