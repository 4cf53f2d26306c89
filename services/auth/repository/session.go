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

// CreateSession persists a newly minted session
func (r *AuthRepo) CreateSession(ctx context.Context, session *models.Session) error {
	now := time.Now()
	session.CreatedAt = now
	session.LastActivityAt = now

	query := `
		INSERT INTO sessions (token, user_id, created_at, last_activity_at,
			expires_at, ip_address, user_agent
		) VALUES (:token, :user_id, :created_at, :last_activity_at,
			:expires_at, :ip_address, :user_agent)
	`
	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetSession retrieves a live session by token and records the read as
// activity. Only expires_at decides validity; the expiry is never extended.
// Expired rows are simply unreadable here, they are not garbage collected.
func (r *AuthRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	query := `
		UPDATE sessions
		SET last_activity_at = $1
		WHERE token = $2 AND expires_at > $1
		RETURNING token, user_id, created_at, last_activity_at, expires_at, ip_address, user_agent
	`

	var session models.Session
	err := r.db.GetContext(ctx, &session, query, time.Now(), token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// DeleteSessionsForUser revokes every session of the given user and returns
// how many were removed. Zero removals is not an error: signing out without a
// live session is a no-op.
func (r *AuthRepo) DeleteSessionsForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM sessions WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

// CountActiveSessions counts unexpired sessions for a user
func (r *AuthRepo) CountActiveSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM sessions WHERE user_id = $1 AND expires_at > $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}
