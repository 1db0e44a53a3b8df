package handler

import (
	"net/http"
	"strings"

	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
}

// MenuHandler serves the catalogue.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{menuUC: params.MenuUC}
}

// ListMenu lists menu items, optionally filtered by ?category=.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.menuUC.ListMenu(c.Request().Context(), strings.TrimSpace(c.QueryParam("category")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetMenuItem returns one menu item.
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}
