package models

// IdentitySource tags which provider produced the resolved identity
type IdentitySource string

const (
	SourceNone   IdentitySource = "none"
	SourceCustom IdentitySource = "custom"
	SourceOAuth  IdentitySource = "oauth"
)

// Identity is the tagged variant the coordinator resolves once per request.
// Exactly one of User/OAuthUser is set depending on Source; downstream code
// never branches on provider again.
type Identity struct {
	Source    IdentitySource `json:"source"`
	User      *User          `json:"user,omitempty"`
	OAuthUser *OAuthUser     `json:"oauth_user,omitempty"`
	// SessionToken is set for custom identities so sign-out can revoke it
	SessionToken string `json:"-"`
}

// IsAuthenticated reports whether either provider yielded a user
func (i Identity) IsAuthenticated() bool {
	return i.Source != SourceNone
}
