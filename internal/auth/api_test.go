package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/auth"
	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MockTokenManager) {
	t.Helper()

	cfg := testutil.NewTestConfig(t)
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(cfg.Admin, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	return router, mockTokenManager
}

func TestLogin_Success(t *testing.T) {
	// Given
	router, mockTokenManager := setupTestEnvironment(t)
	var subjects []string
	mockTokenManager.GenerateAccessTokenFunc = func(subject string) (string, error) {
		subjects = append(subjects, subject)
		return "access-" + subject, nil
	}

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Username: testutil.AdminUsername, Password: testutil.AdminPassword},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "access-admin", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
	assert.Equal(t, []string{testutil.AdminUsername}, subjects)
}

func TestLogin_IncorrectCredentials(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name    string
		request auth.LoginRequest
	}{
		{name: "wrong password", request: auth.LoginRequest{Username: testutil.AdminUsername, Password: "wrong-password"}},
		{name: "wrong username", request: auth.LoginRequest{Username: "member1", Password: testutil.AdminPassword}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.request,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "AUTH-003", errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestLogin_ValidationError_MissingRequiredFields(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]string
	}{
		{name: "Missing username", requestBody: map[string]string{"password": testutil.AdminPassword}},
		{name: "Missing password", requestBody: map[string]string{"username": testutil.AdminUsername}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.requestBody,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestLogin_TokenFailure(t *testing.T) {
	router, mockTokenManager := setupTestEnvironment(t)
	mockTokenManager.GenerateAccessTokenFunc = func(string) (string, error) {
		return "", errors.New("signing failed")
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{Username: testutil.AdminUsername, Password: testutil.AdminPassword},
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestLogin_IssuesVerifiableTokens(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	manager := token.NewJWTManager(cfg)
	service := auth.NewAuthService(cfg.Admin, manager)

	response, err := service.Login(t.Context(), &auth.LoginRequest{
		Username: testutil.AdminUsername,
		Password: testutil.AdminPassword,
	})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testutil.AdminUsername, claims.Subject)
	assert.Equal(t, token.ACCESS, claims.TokenType)

	claims, err = manager.ValidateToken(response.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, token.REFRESH, claims.TokenType)
}
