package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/middleware"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	authUC auth.AuthUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authUC auth.AuthUC) *ProfileHandler {
	return &ProfileHandler{authUC: authUC}
}

// UpdateProfile updates the caller's profile. Only custom identities have a
// profile row to update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity.Source != models.SourceCustom {
		return utils.ForbiddenResponse(c, "Profile updates require a custom account")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FullName == "" {
		return utils.BadRequestResponse(c, "Full name is required")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), identity.User.ID, &req)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to update profile",
			logger.ErrorField(err),
			logger.String("user_id", identity.User.ID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}
