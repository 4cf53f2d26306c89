package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/repository"
)

// SignUp validates registration details and issues a signup OTP challenge.
// No user row is written here; the pending details ride inside the challenge
// and the user is created only when the code is verified.
func (u *AuthUC) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.OTPIssuedResponse, error) {
	mobile, countryCode, err := utils.NormalizeMobileNumber(req.MobileNumber, req.CountryCode)
	if err != nil {
		return nil, err
	}

	// A registered mobile number must never receive a second signup OTP
	existing, err := u.authRepo.GetUserByMobile(ctx, mobile, countryCode)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, auth.ErrDuplicateMobile
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return u.issueChallenge(ctx, &models.OTPChallenge{
		MobileNumber: mobile,
		CountryCode:  countryCode,
		Type:         models.OTPTypeSignup,
		FullName:     req.FullName,
		PasswordHash: string(hash),
	})
}

// SignIn verifies mobile number and password and issues a signin OTP challenge
func (u *AuthUC) SignIn(ctx context.Context, req *models.SignInRequest) (*models.OTPIssuedResponse, error) {
	mobile, countryCode, err := utils.NormalizeMobileNumber(req.MobileNumber, req.CountryCode)
	if err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobile, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, auth.ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return u.issueChallenge(ctx, &models.OTPChallenge{
		MobileNumber: mobile,
		CountryCode:  countryCode,
		Type:         models.OTPTypeSignin,
	})
}

// RequestPasswordReset issues a password_reset OTP challenge for a known user
func (u *AuthUC) RequestPasswordReset(ctx context.Context, req *models.ForgotPasswordRequest) (*models.OTPIssuedResponse, error) {
	mobile, countryCode, err := utils.NormalizeMobileNumber(req.MobileNumber, req.CountryCode)
	if err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobile, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, auth.ErrInactiveAccount
	}

	return u.issueChallenge(ctx, &models.OTPChallenge{
		MobileNumber: mobile,
		CountryCode:  countryCode,
		Type:         models.OTPTypePasswordReset,
	})
}

// issueChallenge generates a code, stores the challenge, and dispatches it
// through the configured delivery channel
func (u *AuthUC) issueChallenge(ctx context.Context, challenge *models.OTPChallenge) (*models.OTPIssuedResponse, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, err
	}
	challenge.Code = code

	if err := u.authRepo.CreateOTPChallenge(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create OTP challenge: %w", err)
	}

	notification := &models.OTPNotification{
		MobileNumber: challenge.MobileNumber,
		CountryCode:  challenge.CountryCode,
		Code:         challenge.Code,
		Type:         challenge.Type,
	}
	if err := u.deliverer.Deliver(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to deliver OTP: %w", err)
	}

	logger.Info("OTP challenge issued",
		logger.String("mobile_number", challenge.MobileNumber),
		logger.String("otp_type", challenge.Type))

	resp := &models.OTPIssuedResponse{RequiresOTP: true}
	if u.deliverer.Inline() {
		resp.OTP = challenge.Code
	}

	return resp, nil
}
