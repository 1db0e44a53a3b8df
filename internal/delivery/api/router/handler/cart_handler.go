package handler

import (
	"net/http"

	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler edits carts. Mutations answer 423 while the store is closed.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddCartItemRequest represents the request body for adding a cart line
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=50"`
	Notes      string `json:"notes" validate:"max=200"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=50"`
}

// GetCart returns the priced cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context(), c.Param("cartId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a menu item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), c.Param("cartId"), uuid.MustParse(req.MenuItemID), req.Quantity, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets a line quantity; zero removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	menuItemID, err := uuidParam(c, "menuItemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), c.Param("cartId"), menuItemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	menuItemID, err := uuidParam(c, "menuItemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("cartId"), menuItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context(), c.Param("cartId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
