package models

// SignUpRequest is a request to register with mobile number and password
type SignUpRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
}

// SignInRequest is a request to authenticate with mobile number and password
type SignInRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// VerifyOTPRequest is a request to verify an issued one-time code
type VerifyOTPRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required"`
	OTPCode      string `json:"otp_code" validate:"required"`
	OTPType      string `json:"otp_type" validate:"required"`
}

// ForgotPasswordRequest starts a password reset challenge
type ForgotPasswordRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required"`
}

// ResetPasswordRequest completes a password reset with the OTP and new password
type ResetPasswordRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required"`
	OTPCode      string `json:"otp_code" validate:"required"`
	NewPassword  string `json:"new_password" validate:"required"`
}

// UpdateProfileRequest updates mutable profile fields
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
}

// OTPIssuedResponse signals that an OTP challenge has been issued out-of-band.
// OTP is populated only in inline delivery mode.
type OTPIssuedResponse struct {
	RequiresOTP bool   `json:"requires_otp"`
	OTP         string `json:"otp,omitempty"`
}

// AuthResponse is returned after successful OTP verification
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// DashboardResponse merges the parallel account lookups into one payload
type DashboardResponse struct {
	User           *User      `json:"user,omitempty"`
	OAuthUser      *OAuthUser `json:"oauth_user,omitempty"`
	Roles          []string   `json:"roles"`
	ActiveSessions int        `json:"active_sessions"`
}

// GrantRoleRequest assigns a role to a user
type GrantRoleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// RevokeRoleRequest removes a role from a user
type RevokeRoleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}
