package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
)

// RoleGate answers whether a user holds a named role. Implementations must
// fail closed: errors resolve to false.
type RoleGate interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) bool
}

// RequireRole gates a route group on the exact named role. Checks are
// exact-match with no hierarchy, and only custom identities can hold roles.
// The check runs once per request; a revocation takes effect on the next one.
func RequireRole(gate RoleGate, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := GetIdentity(c)
			if identity.Source != models.SourceCustom {
				return utils.ForbiddenResponse(c, "Insufficient privileges")
			}

			if !gate.HasRole(c.Request().Context(), identity.User.ID, role) {
				return utils.ForbiddenResponse(c, "Insufficient privileges")
			}

			return next(c)
		}
	}
}
