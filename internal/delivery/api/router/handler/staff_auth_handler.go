package handler

import (
	"net/http"

	"pizzeria/internal/delivery/api/response"
	"pizzeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffAuthHandlerParams holds dependencies for StaffAuthHandler, injected by Fx.
type StaffAuthHandlerParams struct {
	fx.In

	StaffAuthUC usecase.StaffAuthUsecase
}

// StaffAuthHandler issues and revokes staff credentials.
type StaffAuthHandler struct {
	staffAuthUC usecase.StaffAuthUsecase
}

// NewStaffAuthHandler is the constructor for StaffAuthHandler
func NewStaffAuthHandler(params StaffAuthHandlerParams) *StaffAuthHandler {
	return &StaffAuthHandler{staffAuthUC: params.StaffAuthUC}
}

// LoginRequest represents the staff login body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token to rotate or revoke.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Login exchanges username and password for a token pair.
func (h *StaffAuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tokens, err := h.staffAuthUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// Refresh rotates the session behind a refresh token.
func (h *StaffAuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tokens, err := h.staffAuthUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// Logout revokes the session behind a refresh token.
func (h *StaffAuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.staffAuthUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
