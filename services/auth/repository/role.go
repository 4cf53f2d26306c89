package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GrantRole assigns a role to a user. Granting an already-held role is a
// no-op thanks to the uniqueness on (user_id, role).
func (r *AuthRepo) GrantRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, role) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}

	return nil
}

// RevokeRole removes a role from a user
func (r *AuthRepo) RevokeRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}

	return nil
}

// HasRole reports whether the user holds the exact role
func (r *AuthRepo) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, role)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}

	return exists, nil
}

// ListRoles returns all roles assigned to a user
func (r *AuthRepo) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`

	roles := []string{}
	err := r.db.SelectContext(ctx, &roles, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}
