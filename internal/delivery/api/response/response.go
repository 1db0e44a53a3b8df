// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "pizzeria/internal/delivery/context"
	domainerrors "pizzeria/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g. "STORE_CLOSED"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Remediation or field errors, 4xx only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details never leave the server for 5xx
// responses or for authentication failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// renderAppError renders err when it carries an AppError. The boolean is
// false for any other error.
func renderAppError(c echo.Context, err error) (bool, error) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false, nil
	}

	return true, Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// HandleAppError renders domain errors and passes everything else on to the
// centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	if handled, renderErr := renderAppError(c, err); handled {
		return renderErr
	}

	return errors.WithStack(err)
}
