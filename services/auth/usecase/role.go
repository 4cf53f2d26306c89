package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
)

// HasRole reports whether the user holds the exact named role. Fail closed:
// any lookup error is treated the same as the role being absent, never as a
// grant.
func (u *AuthUC) HasRole(ctx context.Context, userID uuid.UUID, role string) bool {
	ok, err := u.authRepo.HasRole(ctx, userID, role)
	if err != nil {
		logger.Warn("Role lookup failed, denying",
			logger.String("user_id", userID.String()),
			logger.String("role", role),
			logger.Err(err))
		return false
	}
	return ok
}

// GrantRole assigns a named role to a user
func (u *AuthUC) GrantRole(ctx context.Context, userID uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("unknown role: %s", role)
	}
	return u.authRepo.GrantRole(ctx, userID, role)
}

// RevokeRole removes a named role from a user. Takes effect on the next
// authorization check; requests already past the gate keep running.
func (u *AuthUC) RevokeRole(ctx context.Context, userID uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("unknown role: %s", role)
	}
	return u.authRepo.RevokeRole(ctx, userID, role)
}

// ListRoles returns all roles assigned to a user
func (u *AuthUC) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return u.authRepo.ListRoles(ctx, userID)
}
