package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/brandspace/auraup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/brandspace/auraup/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// credential verification
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.OTPIssuedResponse, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.OTPIssuedResponse, error)
	RequestPasswordReset(ctx context.Context, req *models.ForgotPasswordRequest) (*models.OTPIssuedResponse, error)

	// OTP challenge verification and session issuance
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, meta models.SessionMeta) (*models.AuthResponse, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error

	// session lifecycle
	SignOut(ctx context.Context, identity models.Identity) error

	// profile
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	Dashboard(ctx context.Context, identity models.Identity) (*models.DashboardResponse, error)

	// role authorization gate
	HasRole(ctx context.Context, userID uuid.UUID, role string) bool
	GrantRole(ctx context.Context, userID uuid.UUID, role string) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role string) error
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}
