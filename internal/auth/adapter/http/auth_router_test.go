package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"snapfeed/internal/auth/config"
	"snapfeed/internal/auth/domain/model"
	"snapfeed/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testHandlerConfig() *config.Config {
	return &config.Config{
		CookieName:     "sf_auth_token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		SessionTTL:     time.Hour,
	}
}

func setupTestApp(uc usecase.AuthUsecaseInterface) *fiber.App {
	app := fiber.New()
	handler := NewAuthHTTPHandler(uc, testHandlerConfig())
	middleware := NewAuthMiddleware(uc, "sf_auth_token")
	handler.SetupAuthRoutesWithMiddleware(app.Group("/api/v1/auth"), middleware)
	return app
}

func TestRegister_Created(t *testing.T) {
	uc := &mockAuthUsecase{}
	account := &model.Account{ID: "acct-1", Email: "new@example.com", Name: "New"}
	uc.On("Register", mock.Anything, mock.MatchedBy(func(r usecase.RegisterRequest) bool {
		return r.Email == "new@example.com"
	})).Return(account, "tok-123", nil)

	app := setupTestApp(uc)

	body, _ := json.Marshal(map[string]string{
		"email":    "new@example.com",
		"password": "password123",
		"name":     "New",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "tok-123", parsed["accessToken"])

	// session cookie is set on registration
	cookies := resp.Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "sf_auth_token" && c.Value == "tok-123" {
			found = true
		}
	}
	assert.True(t, found, "expected auth cookie to be set")
}

func TestRegister_EmailConflict(t *testing.T) {
	uc := &mockAuthUsecase{}
	uc.On("Register", mock.Anything, mock.Anything).Return(nil, "", usecase.ErrEmailTaken)

	app := setupTestApp(uc)

	body, _ := json.Marshal(map[string]string{
		"email": "dup@example.com", "password": "password123", "name": "D",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	uc := &mockAuthUsecase{}
	account := &model.Account{ID: "acct-1", Email: "l@example.com"}
	uc.On("Login", mock.Anything, mock.Anything).Return(account, "tok-login", nil)

	app := setupTestApp(uc)

	body, _ := json.Marshal(map[string]string{"email": "l@example.com", "password": "password123"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := &mockAuthUsecase{}
	uc.On("Login", mock.Anything, mock.Anything).Return(nil, "", usecase.ErrInvalidCredentials)

	app := setupTestApp(uc)

	body, _ := json.Marshal(map[string]string{"email": "l@example.com", "password": "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMe_RequiresAuth(t *testing.T) {
	uc := &mockAuthUsecase{}
	app := setupTestApp(uc)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMe_WithBearerToken(t *testing.T) {
	uc := &mockAuthUsecase{}
	claims := testClaims("acct-1", "user-1", "m@example.com")
	uc.On("ValidateToken", mock.Anything, "tok-me").Return(claims, nil)
	uc.On("GetAccountFromToken", mock.Anything, "tok-me").
		Return(&model.Account{ID: "acct-1", Email: "m@example.com"}, nil)

	app := setupTestApp(uc)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-me")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got model.Account
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "acct-1", got.ID)
}

func TestLogout_ClearsCookie(t *testing.T) {
	uc := &mockAuthUsecase{}
	claims := testClaims("acct-1", "user-1", "m@example.com")
	uc.On("ValidateToken", mock.Anything, "tok-out").Return(claims, nil)
	uc.On("Logout", mock.Anything, "tok-out").Return(nil)

	app := setupTestApp(uc)

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-out")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "sf_auth_token" {
			assert.Empty(t, c.Value)
		}
	}
	uc.AssertExpectations(t)
}
