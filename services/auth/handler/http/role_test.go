package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth/mocks"
)

func TestGrantRole_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	roleHandler := NewRoleHandler(mockAuthUC)

	userID := uuid.New()
	requestBody := `{"user_id": "` + userID.String() + `", "role": "moderator"}`
	c, rec := newTestContext(http.MethodPost, "/admin/roles", requestBody)

	mockAuthUC.EXPECT().
		GrantRole(gomock.Any(), userID, models.RoleModerator).
		Return(nil)

	// Act
	err := roleHandler.GrantRole(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGrantRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	roleHandler := NewRoleHandler(mockAuthUC)

	requestBody := `{"user_id": "` + uuid.New().String() + `", "role": "superuser"}`
	c, rec := newTestContext(http.MethodPost, "/admin/roles", requestBody)

	err := roleHandler.GrantRole(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Unknown role", response["error"])
}

func TestGrantRole_InvalidUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	roleHandler := NewRoleHandler(mockAuthUC)

	requestBody := `{"user_id": "not-a-uuid", "role": "moderator"}`
	c, rec := newTestContext(http.MethodPost, "/admin/roles", requestBody)

	err := roleHandler.GrantRole(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevokeRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	roleHandler := NewRoleHandler(mockAuthUC)

	userID := uuid.New()
	requestBody := `{"user_id": "` + userID.String() + `", "role": "moderator"}`
	c, rec := newTestContext(http.MethodDelete, "/admin/roles", requestBody)

	mockAuthUC.EXPECT().
		RevokeRole(gomock.Any(), userID, models.RoleModerator).
		Return(nil)

	err := roleHandler.RevokeRole(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRoles_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	roleHandler := NewRoleHandler(mockAuthUC)

	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/"+userID.String()+"/roles", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	mockAuthUC.EXPECT().
		ListRoles(gomock.Any(), userID).
		Return([]string{models.RoleAdmin, models.RoleUser}, nil)

	err := roleHandler.ListRoles(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{models.RoleAdmin, models.RoleUser}, response["data"])
}
