package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/repository"
)

// SignOut revokes every active session of the resolved identity. An OAuth
// identity has no server-side session rows to revoke, and signing out with no
// live session at all is a successful no-op.
func (u *AuthUC) SignOut(ctx context.Context, identity models.Identity) error {
	if identity.Source != models.SourceCustom {
		return nil
	}

	revoked, err := u.authRepo.DeleteSessionsForUser(ctx, identity.User.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	logger.Info("Signed out",
		logger.String("user_id", identity.User.ID.String()),
		logger.Int64("sessions_revoked", revoked))

	return nil
}

// GetUserByID retrieves a user by ID
func (u *AuthUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.authRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the user's mutable profile fields
func (u *AuthUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := u.authRepo.UpdateFullName(ctx, userID, req.FullName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return u.GetUserByID(ctx, userID)
}
