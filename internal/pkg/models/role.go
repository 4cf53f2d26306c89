package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names. Checks are exact-match, there is no hierarchy: admin does not
// automatically satisfy a moderator check.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// RoleAssignment maps a user to a named role, unique on (user_id, role)
type RoleAssignment struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ValidRole reports whether the given role name is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}
