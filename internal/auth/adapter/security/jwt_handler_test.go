package security

import (
	"context"
	"testing"
	"time"

	"snapfeed/internal/auth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:   "unit-test-secret-key",
		JWTIssuer:      "snapfeed-test",
		AccessTokenTTL: time.Minute,
	}
}

func TestNewJWTokenService_Validation(t *testing.T) {
	_, err := NewJWTokenService(&config.Config{JWTIssuer: "x", AccessTokenTTL: time.Minute})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "x", AccessTokenTTL: time.Minute})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "x", JWTIssuer: "y"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTokenService(testConfig())
	require.NoError(t, err)

	ctx := context.Background()
	token, err := svc.GenerateToken(ctx, "acct-1", "user-1", "a@b.co")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", claims.AccountID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, "snapfeed-test", claims.Issuer)
}

func TestValidateToken_Empty(t *testing.T) {
	svc, err := NewJWTokenService(testConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc, err := NewJWTokenService(testConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc1, err := NewJWTokenService(testConfig())
	require.NoError(t, err)

	cfg2 := testConfig()
	cfg2.JWTSecretKey = "a-different-secret"
	svc2, err := NewJWTokenService(cfg2)
	require.NoError(t, err)

	token, err := svc1.GenerateToken(context.Background(), "acct-1", "user-1", "a@b.co")
	require.NoError(t, err)

	_, err = svc2.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = time.Nanosecond
	svc, err := NewJWTokenService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), "acct-1", "user-1", "a@b.co")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
