package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth/mocks"
)

func TestDashboard_CustomIdentity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockDeliverer := mocks.NewMockOTPDeliverer(ctrl)
	uc := NewAuthUC(mockRepo, mockDeliverer, testConfig())

	userID := uuid.New()
	user := &models.User{ID: userID, FullName: "Jane Doe"}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)
	mockRepo.EXPECT().
		ListRoles(gomock.Any(), userID).
		Return([]string{models.RoleUser}, nil)
	mockRepo.EXPECT().
		CountActiveSessions(gomock.Any(), userID).
		Return(2, nil)

	// Act
	resp, err := uc.Dashboard(context.Background(), models.Identity{
		Source: models.SourceCustom,
		User:   user,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, user, resp.User)
	assert.Equal(t, []string{models.RoleUser}, resp.Roles)
	assert.Equal(t, 2, resp.ActiveSessions)
	assert.Nil(t, resp.OAuthUser)
}

func TestDashboard_PartialFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockDeliverer := mocks.NewMockOTPDeliverer(ctrl)
	uc := NewAuthUC(mockRepo, mockDeliverer, testConfig())

	userID := uuid.New()
	user := &models.User{ID: userID, FullName: "Jane Doe"}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)
	mockRepo.EXPECT().
		ListRoles(gomock.Any(), userID).
		Return(nil, errors.New("connection refused"))
	mockRepo.EXPECT().
		CountActiveSessions(gomock.Any(), userID).
		Return(1, nil)

	resp, err := uc.Dashboard(context.Background(), models.Identity{
		Source: models.SourceCustom,
		User:   user,
	})

	// One failed lookup degrades its slice, the rest of the payload survives
	assert.NoError(t, err)
	assert.Equal(t, user, resp.User)
	assert.Empty(t, resp.Roles)
	assert.Equal(t, 1, resp.ActiveSessions)
}

func TestDashboard_OAuthIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockDeliverer := mocks.NewMockOTPDeliverer(ctrl)
	uc := NewAuthUC(mockRepo, mockDeliverer, testConfig())

	oauthUser := &models.OAuthUser{ID: "oauth-123", Email: "jane@example.com", Provider: "google"}

	// No repository expectations: OAuth identities have no local rows
	resp, err := uc.Dashboard(context.Background(), models.Identity{
		Source:    models.SourceOAuth,
		OAuthUser: oauthUser,
	})

	assert.NoError(t, err)
	assert.Equal(t, oauthUser, resp.OAuthUser)
	assert.Nil(t, resp.User)
	assert.Empty(t, resp.Roles)
	assert.Zero(t, resp.ActiveSessions)
}

func TestDashboard_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockDeliverer := mocks.NewMockOTPDeliverer(ctrl)
	uc := NewAuthUC(mockRepo, mockDeliverer, testConfig())

	resp, err := uc.Dashboard(context.Background(), models.Identity{Source: models.SourceNone})

	assert.NoError(t, err)
	assert.Nil(t, resp.User)
	assert.Nil(t, resp.OAuthUser)
}
