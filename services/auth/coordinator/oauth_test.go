package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandspace/auraup/internal/pkg/models"
)

const testSecret = "test-project-secret"

func signProviderToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestOAuthVerify_Success(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{JWTSecret: testSecret})

	tokenString := signProviderToken(t, jwt.MapClaims{
		"sub":   "oauth-user-123",
		"email": "jane@example.com",
		"app_metadata": map[string]interface{}{
			"provider": "google",
		},
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	user, err := verifier.Verify(context.Background(), tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "oauth-user-123", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "google", user.Provider)
}

func TestOAuthVerify_WrongSecret(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{JWTSecret: testSecret})

	tokenString := signProviderToken(t, jwt.MapClaims{
		"sub": "oauth-user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "some-other-secret")

	user, err := verifier.Verify(context.Background(), tokenString)

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestOAuthVerify_Expired(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{JWTSecret: testSecret})

	tokenString := signProviderToken(t, jwt.MapClaims{
		"sub": "oauth-user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	user, err := verifier.Verify(context.Background(), tokenString)

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestOAuthVerify_IssuerMismatch(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{
		JWTSecret: testSecret,
		Issuer:    "https://project.example.com/auth/v1",
	})

	tokenString := signProviderToken(t, jwt.MapClaims{
		"sub": "oauth-user-123",
		"iss": "https://other.example.com/auth/v1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	user, err := verifier.Verify(context.Background(), tokenString)

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "issuer")
}

func TestOAuthVerify_MissingSub(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{JWTSecret: testSecret})

	tokenString := signProviderToken(t, jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	user, err := verifier.Verify(context.Background(), tokenString)

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sub")
}

func TestOAuthVerify_Garbage(t *testing.T) {
	verifier := NewOAuthVerifier(models.OAuthConfig{JWTSecret: testSecret})

	user, err := verifier.Verify(context.Background(), "not-a-jwt")

	assert.Nil(t, user)
	assert.Error(t, err)
}
