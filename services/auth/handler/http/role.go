package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
)

// RoleHandler handles HTTP requests for the admin role-management surface
type RoleHandler struct {
	authUC auth.AuthUC
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(authUC auth.AuthUC) *RoleHandler {
	return &RoleHandler{authUC: authUC}
}

// GrantRole assigns a role to a user
func (h *RoleHandler) GrantRole(c echo.Context) error {
	var req models.GrantRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	if !models.ValidRole(req.Role) {
		return utils.BadRequestResponse(c, "Unknown role")
	}

	if err := h.authUC.GrantRole(c.Request().Context(), userID, req.Role); err != nil {
		logger.Error("Failed to grant role",
			logger.ErrorField(err),
			logger.String("user_id", req.UserID),
			logger.String("role", req.Role))
		return utils.InternalServerErrorResponse(c, "Failed to grant role")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role granted successfully", nil)
}

// RevokeRole removes a role from a user
func (h *RoleHandler) RevokeRole(c echo.Context) error {
	var req models.RevokeRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	if !models.ValidRole(req.Role) {
		return utils.BadRequestResponse(c, "Unknown role")
	}

	if err := h.authUC.RevokeRole(c.Request().Context(), userID, req.Role); err != nil {
		logger.Error("Failed to revoke role",
			logger.ErrorField(err),
			logger.String("user_id", req.UserID),
			logger.String("role", req.Role))
		return utils.InternalServerErrorResponse(c, "Failed to revoke role")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role revoked successfully", nil)
}

// ListRoles returns all roles held by a user
func (h *RoleHandler) ListRoles(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	roles, err := h.authUC.ListRoles(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list roles",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to list roles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Roles retrieved successfully", roles)
}
