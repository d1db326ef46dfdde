package core

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitlane-backend-go/internal/config"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-access-secret",
		JWTExpire:        "168h",
		JWTRefreshSecret: "test-refresh-secret",
		JWTRefreshExpire: "720h",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken("user_42")
	require.NoError(t, err)

	userID, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_42", userID)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	refresh, err := svc.GenerateRefreshToken("user_42")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "refresh tokens use a different secret")
}

func TestVerifyGarbageToken(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "user_42",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestInvalidExpiryConfig(t *testing.T) {
	cfg := testTokenConfig()
	cfg.JWTExpire = "7d" // time.ParseDuration has no day unit
	_, err := NewTokenService(cfg)
	assert.Error(t, err)
}
