package coordinator

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/brandspace/auraup/internal/pkg/models"
)

// OAuthVerifier validates access tokens minted by the hosted OAuth provider.
// The provider signs HS256 tokens with a shared project secret; we only read
// the identity claims, the provider's own protocol stays external.
type OAuthVerifier struct {
	secret string
	issuer string
}

// NewOAuthVerifier creates a verifier for the configured provider
func NewOAuthVerifier(cfg models.OAuthConfig) *OAuthVerifier {
	return &OAuthVerifier{
		secret: cfg.JWTSecret,
		issuer: cfg.Issuer,
	}
}

// Verify parses and validates the provider token and extracts the identity
func (v *OAuthVerifier) Verify(ctx context.Context, tokenString string) (*models.OAuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid provider token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid provider token claims")
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return nil, fmt.Errorf("invalid provider token issuer")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("provider token missing sub claim")
	}

	user := &models.OAuthUser{ID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if provider, ok := meta["provider"].(string); ok {
			user.Provider = provider
		}
	}

	return user, nil
}
