package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/brandspace/auraup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/brandspace/auraup/services/auth AuthRepo

// AuthRepo represents the authentication repository interface
type AuthRepo interface {
	// users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByMobile(ctx context.Context, mobileNumber, countryCode string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// OTP challenges
	CreateOTPChallenge(ctx context.Context, challenge *models.OTPChallenge) error
	GetOTPChallenge(ctx context.Context, otpType, mobileNumber string) (*models.OTPChallenge, error)
	DeleteOTPChallenge(ctx context.Context, otpType, mobileNumber string) error

	// sessions
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSessionsForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveSessions(ctx context.Context, userID uuid.UUID) (int, error)

	// role assignments
	GrantRole(ctx context.Context, userID uuid.UUID, role string) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role string) error
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}
