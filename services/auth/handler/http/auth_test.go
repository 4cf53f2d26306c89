package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/mocks"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignUp_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "testpass1", "full_name": "Jane Doe"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signup", requestBody)

	mockAuthUC.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		Return(&models.OTPIssuedResponse{RequiresOTP: true}, nil)

	// Act
	err := authHandler.SignUp(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["requires_otp"])
	// SMS delivery never puts the code in the response
	assert.NotContains(t, data, "otp")
}

func TestSignUp_DuplicateMobile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "testpass1", "full_name": "Jane Doe"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signup", requestBody)

	mockAuthUC.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrDuplicateMobile)

	err := authHandler.SignUp(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "mobile number already registered", response["error"])
}

func TestSignUp_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "short", "full_name": "Jane Doe"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signup", requestBody)

	err := authHandler.SignUp(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signup", requestBody)

	err := authHandler.SignUp(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "All fields are required", response["error"])
}

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "testpass1"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signin", requestBody)

	mockAuthUC.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(&models.OTPIssuedResponse{RequiresOTP: true}, nil)

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "wrongpass"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signin", requestBody)

	mockAuthUC.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidCredentials)

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignIn_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "password": "testpass1"}`
	c, rec := newTestContext(http.MethodPost, "/auth/signin", requestBody)

	mockAuthUC.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal details never leak to the caller
	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Failed to sign in", response["error"])
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "123456", "otp_type": "signin"}`
	c, rec := newTestContext(http.MethodPost, "/auth/otp/verify", requestBody)

	token := uuid.New().String()
	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{
			Token: token,
			User:  &models.User{ID: uuid.New(), FullName: "Jane Doe"},
		}, nil)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, token, data["token"])
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "111111", "otp_type": "signin"}`
	c, rec := newTestContext(http.MethodPost, "/auth/otp/verify", requestBody)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidOTP)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Missing and mismatched codes produce the same message
	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid OTP", response["error"])
}

func TestVerifyOTP_PasswordResetTypeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	// password_reset codes go through /auth/password/reset
	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "123456", "otp_type": "password_reset"}`
	c, rec := newTestContext(http.MethodPost, "/auth/otp/verify", requestBody)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPassword_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1"}`
	c, rec := newTestContext(http.MethodPost, "/auth/password/forgot", requestBody)

	mockAuthUC.EXPECT().
		RequestPasswordReset(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrUserNotFound)

	err := authHandler.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "123456", "new_password": "newpass123"}`
	c, rec := newTestContext(http.MethodPost, "/auth/password/reset", requestBody)

	mockAuthUC.EXPECT().
		ResetPassword(gomock.Any(), gomock.Any()).
		Return(nil)

	err := authHandler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// No token in the response, the user signs in again
	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Password reset successfully", response["message"])
	assert.Nil(t, response["data"])
}

func TestResetPassword_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT: a short password never reaches the usecase
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "123456", "new_password": "short"}`
	c, rec := newTestContext(http.MethodPost, "/auth/password/reset", requestBody)

	err := authHandler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Password must be at least 8 characters", response["error"])
}

func TestResetPassword_InvalidOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"mobile_number": "5551234567", "country_code": "+1", "otp_code": "111111", "new_password": "newpass123"}`
	c, rec := newTestContext(http.MethodPost, "/auth/password/reset", requestBody)

	mockAuthUC.EXPECT().
		ResetPassword(gomock.Any(), gomock.Any()).
		Return(auth.ErrOTPNotFound)

	err := authHandler.ResetPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
