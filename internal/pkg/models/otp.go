package models

import (
	"time"
)

// OTP challenge types. A code is only verifiable under the type it was issued for.
const (
	OTPTypeSignup        = "signup"
	OTPTypeSignin        = "signin"
	OTPTypePasswordReset = "password_reset"
)

// OTPChallenge is the ephemeral record backing an issued one-time code.
// Signup challenges carry the pending user's details so no user row exists
// until verification succeeds.
type OTPChallenge struct {
	MobileNumber string    `json:"mobile_number"`
	CountryCode  string    `json:"country_code"`
	Code         string    `json:"code"`
	Type         string    `json:"type"`
	IssuedAt     time.Time `json:"issued_at"`

	// Pending signup payload, empty for signin and password_reset
	FullName     string `json:"full_name,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// OTPNotification is the message published to the SMS delivery worker
type OTPNotification struct {
	MobileNumber string `json:"mobile_number"`
	CountryCode  string `json:"country_code"`
	Code         string `json:"code"`
	Type         string `json:"type"`
}
