package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer token mapped server-side to a user and expiry.
// A session is valid only while now < ExpiresAt; reads bump LastActivityAt
// but never extend the expiry.
type Session struct {
	Token          string    `json:"token" db:"token"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at" db:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at" db:"expires_at"`
	IPAddress      string    `json:"ip_address" db:"ip_address"`
	UserAgent      string    `json:"user_agent" db:"user_agent"`
}

// SessionMeta carries per-request metadata recorded at session issuance
type SessionMeta struct {
	IPAddress string
	UserAgent string
}
