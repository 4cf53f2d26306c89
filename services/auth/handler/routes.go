package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/middleware"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler    *http.AuthHandler
	sessionHandler *http.SessionHandler
	profileHandler *http.ProfileHandler
	roleHandler    *http.RoleHandler
	authUC         auth.AuthUC
	resolver       middleware.IdentityResolver
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	sessionHandler *http.SessionHandler,
	profileHandler *http.ProfileHandler,
	roleHandler *http.RoleHandler,
	authUC auth.AuthUC,
	resolver middleware.IdentityResolver,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		sessionHandler: sessionHandler,
		profileHandler: profileHandler,
		roleHandler:    roleHandler,
		authUC:         authUC,
		resolver:       resolver,
	}
}

// RegisterRoutes registers all routes on the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.SignUp)
	authGroup.POST("/signin", h.authHandler.SignIn)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/password/forgot", h.authHandler.ForgotPassword)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)

	// Routes behind the dual-provider identity resolver
	identified := e.Group("", middleware.IdentityMiddleware(h.resolver), middleware.RequireAuth())
	identified.POST("/auth/signout", h.sessionHandler.SignOut)
	identified.GET("/me", h.sessionHandler.Me)
	identified.PUT("/me", h.profileHandler.UpdateProfile)
	identified.GET("/me/dashboard", h.sessionHandler.Dashboard)

	// Admin surface, gated on the exact admin role
	adminGroup := e.Group("/admin",
		middleware.IdentityMiddleware(h.resolver),
		middleware.RequireAuth(),
		middleware.RequireRole(h.authUC, models.RoleAdmin))
	adminGroup.POST("/roles", h.roleHandler.GrantRole)
	adminGroup.DELETE("/roles", h.roleHandler.RevokeRole)
	adminGroup.GET("/users/:id/roles", h.roleHandler.ListRoles)
}
