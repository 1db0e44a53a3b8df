package middleware

import (
	"log/slog"
	"strings"

	"pizzeria/internal/delivery/api/response"
	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyStaffID = "staffID"
	keyRoles   = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	StaffAuth usecase.StaffAuthUsecase
}

// AuthMiddleware guards the staff routes with access tokens and roles.
type AuthMiddleware struct {
	staffAuth usecase.StaffAuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{staffAuth: params.StaffAuth}
}

// Authenticate validates the Bearer access token and stores the staff ID and
// roles on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.staffAuth.ValidateAccess(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyStaffID, claims.StaffID)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		// Tag the request-scoped logger with the staff member.
		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.String("staff_id", claims.StaffID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole lets the request through when the staff member holds any of
// roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !held.ContainsAny(roles...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// GetStaffID returns the authenticated staff ID.
func GetStaffID(c echo.Context) (uuid.UUID, bool) {
	staffID, ok := c.Get(keyStaffID).(uuid.UUID)

	return staffID, ok
}

// GetRoles returns the roles of the authenticated staff member.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return roles, ok
}
