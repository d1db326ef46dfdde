package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/models"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "currentUser"
)

// failResponse mirrors the API envelope for client errors. It is defined
// locally to avoid an import cycle with internal/api.
type failResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func abortFail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, failResponse{Status: "fail", Message: message})
}

// AuthMiddleware guards routes with JWT access tokens.
type AuthMiddleware struct {
	tokens core.TokenService
	users  core.UserService
	logger *zap.Logger
}

// NewAuthMiddleware creates an AuthMiddleware instance.
func NewAuthMiddleware(tokens core.TokenService, users core.UserService, logger *zap.Logger) *AuthMiddleware {
	if tokens == nil || users == nil {
		panic("AuthMiddleware requires non-nil token and user services")
	}
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger}
}

// RequireAuth verifies the Bearer token from the Authorization header,
// loads the account it belongs to and stores both the user id and the
// user in the Gin context. Deleted accounts are rejected even when the
// token itself is still valid.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortFail(c, http.StatusUnauthorized, "You are not logged in. Please log in to get access.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortFail(c, http.StatusUnauthorized, "Authorization header format must be 'Bearer {token}'")
			return
		}

		userID, err := m.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			if errors.Is(err, core.ErrTokenExpired) {
				abortFail(c, http.StatusUnauthorized, "Your session has expired. Please log in again.")
				return
			}
			abortFail(c, http.StatusUnauthorized, "Invalid token. Please log in again.")
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Warn("token subject no longer exists", zap.String("userId", userID), zap.Error(err))
			abortFail(c, http.StatusUnauthorized, "The user belonging to this token no longer exists.")
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RestrictTo allows only the listed roles past. Must run after
// RequireAuth.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortFail(c, http.StatusUnauthorized, "You are not logged in. Please log in to get access.")
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortFail(c, http.StatusForbidden, "You do not have permission to perform this action")
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}
