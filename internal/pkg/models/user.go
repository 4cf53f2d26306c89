package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a custom-auth user identified by mobile number
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	CountryCode  string    `json:"country_code" db:"country_code"`
	FullName     string    `json:"full_name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// OAuthUser is the identity carried by the hosted OAuth provider's access token.
// It is never merged into the users table; the coordinator holds it alongside
// the custom identity and picks one by precedence.
type OAuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}
