package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/repository"
)

// VerifyOTP checks a submitted code against its challenge and, for signup and
// signin, mints a session. The challenge is looked up under the submitted
// type, so a code issued for one flow is never accepted in another. The
// session row is persisted before the response is returned: a caller can
// never observe a token the store does not know about.
func (u *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest, meta models.SessionMeta) (*models.AuthResponse, error) {
	mobile, countryCode, err := utils.NormalizeMobileNumber(req.MobileNumber, req.CountryCode)
	if err != nil {
		return nil, err
	}
	if !utils.ValidOTPCode(req.OTPCode) {
		return nil, auth.ErrInvalidOTP
	}

	challenge, err := u.consumeChallenge(ctx, req.OTPType, mobile, req.OTPCode)
	if err != nil {
		return nil, err
	}

	var user *models.User
	switch challenge.Type {
	case models.OTPTypeSignup:
		user = &models.User{
			MobileNumber: mobile,
			CountryCode:  countryCode,
			FullName:     challenge.FullName,
			PasswordHash: challenge.PasswordHash,
			IsVerified:   true,
			IsActive:     true,
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// Everyone starts with the base role
		if err := u.authRepo.GrantRole(ctx, user.ID, models.RoleUser); err != nil {
			return nil, fmt.Errorf("failed to grant default role: %w", err)
		}

	case models.OTPTypeSignin:
		user, err = u.authRepo.GetUserByMobile(ctx, mobile, countryCode)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, auth.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if !user.IsActive {
			return nil, auth.ErrInactiveAccount
		}

	default:
		// password_reset codes complete through ResetPassword, not here
		return nil, auth.ErrInvalidOTP
	}

	session, err := u.mintSession(ctx, user.ID, meta)
	if err != nil {
		return nil, err
	}

	logger.Info("OTP verified",
		logger.String("mobile_number", mobile),
		logger.String("otp_type", challenge.Type),
		logger.String("user_id", user.ID.String()))

	return &models.AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User:      user,
	}, nil
}

// ResetPassword verifies a password_reset code and replaces the password in
// the same call. It deliberately does not mint a session: the user proves
// identity, then re-authenticates.
func (u *AuthUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	mobile, countryCode, err := utils.NormalizeMobileNumber(req.MobileNumber, req.CountryCode)
	if err != nil {
		return err
	}
	if !utils.ValidOTPCode(req.OTPCode) {
		return auth.ErrInvalidOTP
	}

	if _, err := u.consumeChallenge(ctx, models.OTPTypePasswordReset, mobile, req.OTPCode); err != nil {
		return err
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobile, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.authRepo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed",
		logger.String("mobile_number", mobile),
		logger.String("user_id", user.ID.String()))

	return nil
}

// consumeChallenge fetches the challenge for (type, mobile), compares the
// code, and deletes the challenge on success so it is single use
func (u *AuthUC) consumeChallenge(ctx context.Context, otpType, mobile, code string) (*models.OTPChallenge, error) {
	challenge, err := u.authRepo.GetOTPChallenge(ctx, otpType, mobile)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP challenge: %w", err)
	}

	if challenge.Code != code {
		return nil, auth.ErrInvalidOTP
	}

	if err := u.authRepo.DeleteOTPChallenge(ctx, otpType, mobile); err != nil {
		return nil, fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	return challenge, nil
}

// mintSession creates and persists an opaque session token with a fixed
// expiry from config
func (u *AuthUC) mintSession(ctx context.Context, userID uuid.UUID, meta models.SessionMeta) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(u.cfg.Session.ExpirationMinutes) * time.Minute),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}

	if err := u.authRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
