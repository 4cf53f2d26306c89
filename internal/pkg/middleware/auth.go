package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
)

const (
	// ContextKeyIdentity holds the resolved identity in the Echo context
	ContextKeyIdentity = "identity"

	// HeaderOAuthToken carries the hosted provider's access token alongside
	// the custom session bearer token
	HeaderOAuthToken = "X-OAuth-Access-Token"
)

// IdentityResolver resolves the presented credentials into one identity
type IdentityResolver interface {
	Resolve(ctx context.Context, customToken, oauthToken string) models.Identity
}

// IdentityMiddleware resolves the request's identity once, through the
// dual-provider coordinator, and stores it in the context. Downstream
// handlers read the identity and never branch on provider.
func IdentityMiddleware(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customToken := bearerToken(c)
			oauthToken := c.Request().Header.Get(HeaderOAuthToken)

			identity := resolver.Resolve(c.Request().Context(), customToken, oauthToken)
			c.Set(ContextKeyIdentity, identity)

			if identity.Source == models.SourceCustom {
				c.Set("user_id", identity.User.ID.String())
			}

			return next(c)
		}
	}
}

// RequireAuth rejects requests whose identity resolved to no provider
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := GetIdentity(c)
			if !identity.IsAuthenticated() {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			return next(c)
		}
	}
}

// GetIdentity extracts the resolved identity from the Echo context
func GetIdentity(c echo.Context) models.Identity {
	if identity, ok := c.Get(ContextKeyIdentity).(models.Identity); ok {
		return identity
	}
	return models.Identity{Source: models.SourceNone}
}

// bearerToken extracts the bearer token from the Authorization header
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
