package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brandspace/auraup/internal/pkg/models"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("not found")

// CreateUser creates a new user in the database
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, mobile_number, country_code, full_name, password_hash,
			is_verified, is_active, created_at, updated_at
		) VALUES (:id, :mobile_number, :country_code, :full_name, :password_hash,
			:is_verified, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByMobile retrieves a user by normalized mobile number and country code
func (r *AuthRepo) GetUserByMobile(ctx context.Context, mobileNumber, countryCode string) (*models.User, error) {
	query := `
		SELECT id, mobile_number, country_code, full_name, password_hash,
			is_verified, is_active, created_at, updated_at
		FROM users
		WHERE mobile_number = $1 AND country_code = $2
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, mobileNumber, countryCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, mobile_number, country_code, full_name, password_hash,
			is_verified, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateFullName updates the user's display name
func (r *AuthRepo) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	query := `
		UPDATE users
		SET full_name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, fullName, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update full name: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the user's password hash
func (r *AuthRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
