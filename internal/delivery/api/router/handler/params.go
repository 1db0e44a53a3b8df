package handler

import (
	"fmt"

	"pizzeria/internal/delivery/api/middleware"
	domainerrors "pizzeria/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// uuidParam parses the named path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be a UUID", name))
	}

	return id, nil
}

// bindAndValidate decodes the body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// staffActor labels writes made by the authenticated staff member.
func staffActor(c echo.Context) string {
	if staffID, ok := middleware.GetStaffID(c); ok {
		return "staff:" + staffID.String()
	}

	return ""
}
