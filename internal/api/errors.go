package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/db"
)

// AppError is an operational error carrying its HTTP status code.
// Handlers attach one via c.Error; the ErrorHandler middleware shapes
// the envelope.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

// EnvelopeStatus returns "fail" for client errors and "error" for
// server errors, per the response envelope convention.
func (e *AppError) EnvelopeStatus() string {
	if e.Code >= http.StatusInternalServerError {
		return "error"
	}
	return "fail"
}

// NewAppError wraps err with an explicit status code and client message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// respondSuccess writes a success envelope.
func respondSuccess(c *gin.Context, code int, data any) {
	c.JSON(code, Response{Status: "success", Data: data})
}

// ErrorHandler is the centralized responder: handlers record errors with
// c.Error and return, and this middleware maps the last recorded error
// to a status code and envelope after the chain finishes. Unexpected
// errors become a generic 500; their detail is only echoed to the client
// outside release mode.
func ErrorHandler(logger *zap.Logger, releaseMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, Response{Status: appErr.EnvelopeStatus(), Message: appErr.Message})
			return
		}

		code, message := classify(err)
		if code == http.StatusInternalServerError {
			logger.Error("unhandled request error",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			if releaseMode {
				message = "Something went very wrong!"
			}
			c.JSON(code, Response{Status: "error", Message: message})
			return
		}
		c.JSON(code, Response{Status: "fail", Message: message})
	}
}

// classify maps domain sentinel errors to status codes.
func classify(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationMessage(validationErrs)
	case errors.Is(err, core.ErrEmailTaken):
		return http.StatusBadRequest, "User already exists with this email"
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, core.ErrWrongPassword):
		return http.StatusUnauthorized, "Current password is incorrect"
	case errors.Is(err, core.ErrTokenExpired):
		return http.StatusUnauthorized, "Your session has expired. Please log in again."
	case errors.Is(err, core.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token. Please log in again."
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action"
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, core.ErrWebhookSignature):
		return http.StatusBadRequest, "Webhook signature verification failed"
	case errors.Is(err, core.ErrPaymentNotConfigured):
		return http.StatusInternalServerError, "Payment gateway is not configured"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Invalid input data"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return "Field '" + fe.Field() + "' is required"
	case "email":
		return "Please provide a valid email address"
	case "password":
		return "Password must be at least 8 characters with an uppercase letter, a lowercase letter and a number"
	case "min":
		return "Field '" + fe.Field() + "' is below the minimum allowed value"
	case "max":
		return "Field '" + fe.Field() + "' exceeds the maximum allowed value"
	case "oneof":
		return "Field '" + fe.Field() + "' must be one of: " + fe.Param()
	case "gt":
		return "Field '" + fe.Field() + "' must be greater than " + fe.Param()
	default:
		return "Field '" + fe.Field() + "' is invalid"
	}
}

// bindError turns a request binding failure into a 400 AppError. Body
// decode errors that are not validator failures get a generic message.
func bindError(err error) *AppError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return NewAppError(http.StatusBadRequest, validationMessage(validationErrs), err)
	}
	return NewAppError(http.StatusBadRequest, "Invalid request body", err)
}
