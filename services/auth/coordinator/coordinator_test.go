package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth/mocks"
	"github.com/brandspace/auraup/services/auth/repository"
)

// stubVerifier lets tests control the OAuth provider answer directly
type stubVerifier struct {
	user  *models.OAuthUser
	err   error
	delay time.Duration
}

func (s *stubVerifier) Verify(ctx context.Context, tokenString string) (*models.OAuthUser, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func coordinatorConfig() *models.Config {
	return &models.Config{
		OAuth: models.OAuthConfig{TimeoutSeconds: 1},
	}
}

func TestResolve_CustomSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	coord := NewCoordinator(mockRepo, &stubVerifier{}, coordinatorConfig())

	token := uuid.New().String()
	userID := uuid.New()
	user := &models.User{ID: userID, FullName: "Jane Doe", IsActive: true}

	mockRepo.EXPECT().
		GetSession(gomock.Any(), token).
		Return(&models.Session{Token: token, UserID: userID}, nil)
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)

	// Act
	identity := coord.Resolve(context.Background(), token, "")

	// Assert
	assert.Equal(t, models.SourceCustom, identity.Source)
	assert.Equal(t, user, identity.User)
	assert.Equal(t, token, identity.SessionToken)
	assert.True(t, identity.IsAuthenticated())
}

func TestResolve_OAuthOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	oauthUser := &models.OAuthUser{ID: "oauth-123", Email: "jane@example.com"}
	coord := NewCoordinator(mockRepo, &stubVerifier{user: oauthUser}, coordinatorConfig())

	identity := coord.Resolve(context.Background(), "", "provider-token")

	assert.Equal(t, models.SourceOAuth, identity.Source)
	assert.Equal(t, oauthUser, identity.OAuthUser)
	assert.Nil(t, identity.User)
	assert.True(t, identity.IsAuthenticated())
}

func TestResolve_CustomWinsWhenBothValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	oauthUser := &models.OAuthUser{ID: "oauth-123"}
	coord := NewCoordinator(mockRepo, &stubVerifier{user: oauthUser}, coordinatorConfig())

	token := uuid.New().String()
	userID := uuid.New()
	user := &models.User{ID: userID, IsActive: true}

	mockRepo.EXPECT().
		GetSession(gomock.Any(), token).
		Return(&models.Session{Token: token, UserID: userID}, nil)
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)

	identity := coord.Resolve(context.Background(), token, "provider-token")

	// Precedence, not merging: only the custom identity's fields are set
	assert.Equal(t, models.SourceCustom, identity.Source)
	assert.Equal(t, user, identity.User)
	assert.Nil(t, identity.OAuthUser)
}

func TestResolve_CustomInvalidFallsBackToOAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	oauthUser := &models.OAuthUser{ID: "oauth-123"}
	coord := NewCoordinator(mockRepo, &stubVerifier{user: oauthUser}, coordinatorConfig())

	token := uuid.New().String()
	mockRepo.EXPECT().
		GetSession(gomock.Any(), token).
		Return(nil, repository.ErrNotFound)

	identity := coord.Resolve(context.Background(), token, "provider-token")

	assert.Equal(t, models.SourceOAuth, identity.Source)
	assert.Equal(t, oauthUser, identity.OAuthUser)
}

func TestResolve_NoTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	coord := NewCoordinator(mockRepo, &stubVerifier{}, coordinatorConfig())

	identity := coord.Resolve(context.Background(), "", "")

	assert.Equal(t, models.SourceNone, identity.Source)
	assert.False(t, identity.IsAuthenticated())
}

func TestResolve_ProviderErrorFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	coord := NewCoordinator(mockRepo, &stubVerifier{err: errors.New("provider unreachable")}, coordinatorConfig())

	token := uuid.New().String()
	mockRepo.EXPECT().
		GetSession(gomock.Any(), token).
		Return(nil, errors.New("connection refused"))

	identity := coord.Resolve(context.Background(), token, "provider-token")

	// Errors on both sides resolve to no identity, never a partial grant
	assert.Equal(t, models.SourceNone, identity.Source)
	assert.False(t, identity.IsAuthenticated())
}

func TestResolve_InactiveUserDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	coord := NewCoordinator(mockRepo, &stubVerifier{}, coordinatorConfig())

	token := uuid.New().String()
	userID := uuid.New()

	mockRepo.EXPECT().
		GetSession(gomock.Any(), token).
		Return(&models.Session{Token: token, UserID: userID}, nil)
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: false}, nil)

	identity := coord.Resolve(context.Background(), token, "")

	assert.Equal(t, models.SourceNone, identity.Source)
}

func TestResolve_SlowProviderIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	// The stub honors context cancellation, so the per-provider timeout cuts
	// this off well before the 10s sleep.
	coord := NewCoordinator(mockRepo, &stubVerifier{
		user:  &models.OAuthUser{ID: "oauth-123"},
		delay: 10 * time.Second,
	}, coordinatorConfig())

	start := time.Now()
	identity := coord.Resolve(context.Background(), "", "provider-token")
	elapsed := time.Since(start)

	assert.Equal(t, models.SourceNone, identity.Source)
	assert.Less(t, elapsed, 5*time.Second)
}
