package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/internal/utils"
	"github.com/brandspace/auraup/services/auth"
)

// minPasswordLength is enforced before any backend work happens
const minPasswordLength = 8

// AuthHandler handles HTTP requests for the authentication flows
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SignUp handles registration requests
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.MobileNumber == "" || req.CountryCode == "" || req.Password == "" || req.FullName == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}
	if len(req.Password) < minPasswordLength {
		return utils.BadRequestResponse(c, "Password must be at least 8 characters")
	}

	resp, err := h.authUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateMobile) {
			return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
		}
		logger.Error("Failed to sign up",
			logger.ErrorField(err),
			logger.String("endpoint", "SignUp"))
		return utils.InternalServerErrorResponse(c, "Failed to sign up")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// SignIn handles authentication requests
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.MobileNumber == "" || req.CountryCode == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}

	resp, err := h.authUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInactiveAccount) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to sign in",
			logger.ErrorField(err),
			logger.String("endpoint", "SignIn"))
		return utils.InternalServerErrorResponse(c, "Failed to sign in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// VerifyOTP handles OTP verification for signup and signin flows
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.MobileNumber == "" || req.CountryCode == "" || req.OTPCode == "" || req.OTPType == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}
	if !utils.ValidOTPCode(req.OTPCode) {
		return utils.BadRequestResponse(c, "OTP must be 6 digits")
	}
	if req.OTPType != models.OTPTypeSignup && req.OTPType != models.OTPTypeSignin {
		return utils.BadRequestResponse(c, "Invalid OTP type")
	}

	meta := models.SessionMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), &req, meta)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) || errors.Is(err, auth.ErrInvalidOTP) {
			return utils.UnauthorizedResponse(c, "Invalid OTP")
		}
		logger.Error("Failed to verify OTP",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyOTP"))
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

// ForgotPassword starts a password reset challenge
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.MobileNumber == "" || req.CountryCode == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}

	resp, err := h.authUC.RequestPasswordReset(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrInactiveAccount) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to request password reset",
			logger.ErrorField(err),
			logger.String("endpoint", "ForgotPassword"))
		return utils.InternalServerErrorResponse(c, "Failed to request password reset")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// ResetPassword completes a password reset with the OTP and new password.
// On success the caller returns to sign-in; no session is issued here.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.MobileNumber == "" || req.CountryCode == "" || req.OTPCode == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "All fields are required")
	}
	if len(req.NewPassword) < minPasswordLength {
		return utils.BadRequestResponse(c, "Password must be at least 8 characters")
	}
	if !utils.ValidOTPCode(req.OTPCode) {
		return utils.BadRequestResponse(c, "OTP must be 6 digits")
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) || errors.Is(err, auth.ErrInvalidOTP) {
			return utils.UnauthorizedResponse(c, "Invalid OTP")
		}
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to reset password",
			logger.ErrorField(err),
			logger.String("endpoint", "ResetPassword"))
		return utils.InternalServerErrorResponse(c, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}
