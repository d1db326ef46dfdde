package core

import "errors"

// Operational errors the API layer maps to HTTP status codes.
var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("not authorized to access this resource")

	ErrPaymentNotConfigured = errors.New("payment gateway is not configured")
	ErrWebhookSignature     = errors.New("webhook signature verification failed")
)
