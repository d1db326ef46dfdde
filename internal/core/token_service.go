package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pitlane-backend-go/internal/config"
)

// tokenService signs and verifies HS256 tokens whose subject is the user
// id. The refresh token is only ever issued, never accepted on protected
// routes; VerifyAccessToken checks against the access secret alone.
type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService builds a TokenService from the JWT configuration.
func NewTokenService(cfg *config.Config) (TokenService, error) {
	accessTTL, err := time.ParseDuration(cfg.JWTExpire)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRE duration '%s': %w", cfg.JWTExpire, err)
	}
	refreshTTL, err := time.ParseDuration(cfg.JWTRefreshExpire)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRE duration '%s': %w", cfg.JWTRefreshExpire, err)
	}
	return &tokenService{
		accessSecret:  []byte(cfg.JWTSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

func (s *tokenService) GenerateAccessToken(userID string) (string, error) {
	return sign(userID, s.accessSecret, s.accessTTL)
}

func (s *tokenService) GenerateRefreshToken(userID string) (string, error) {
	return sign(userID, s.refreshSecret, s.refreshTTL)
}

func sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *tokenService) VerifyAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
