package auth

import "errors"

// Sentinel errors surfaced by the auth usecases. Handlers map these to HTTP
// status codes; everything else is treated as an internal error.
var (
	ErrDuplicateMobile    = errors.New("mobile number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrOTPNotFound        = errors.New("OTP not found or expired")
	ErrInvalidOTP         = errors.New("invalid OTP code")
)
