package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/middleware"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
)

// SessionHandler handles HTTP requests for the authenticated session surface
type SessionHandler struct {
	authUC auth.AuthUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authUC auth.AuthUC) *SessionHandler {
	return &SessionHandler{authUC: authUC}
}

// Me returns the resolved identity of the caller
func (h *SessionHandler) Me(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	return utils.SuccessResponse(c, http.StatusOK, "Identity retrieved successfully", identity)
}

// SignOut revokes all active sessions of the caller. Calling it without a
// live session succeeds and changes nothing.
func (h *SessionHandler) SignOut(c echo.Context) error {
	identity := middleware.GetIdentity(c)

	if err := h.authUC.SignOut(c.Request().Context(), identity); err != nil {
		logger.Error("Failed to sign out",
			logger.ErrorField(err),
			logger.String("endpoint", "SignOut"))
		return utils.InternalServerErrorResponse(c, "Failed to sign out")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed out successfully", nil)
}

// Dashboard returns the merged account overview
func (h *SessionHandler) Dashboard(c echo.Context) error {
	identity := middleware.GetIdentity(c)

	resp, err := h.authUC.Dashboard(c.Request().Context(), identity)
	if err != nil {
		logger.Error("Failed to load dashboard",
			logger.ErrorField(err),
			logger.String("endpoint", "Dashboard"))
		return utils.InternalServerErrorResponse(c, "Failed to load dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", resp)
}
