package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/models"
)

// AuthHandler handles the account endpoints under /api/auth.
type AuthHandler struct {
	users  core.UserService
	tokens core.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users core.UserService, tokens core.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	h.respondWithTokens(c, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.respondWithTokens(c, http.StatusOK, user)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

// UpdateProfile handles PUT /api/auth/update.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"user": user})
}

// ChangePassword handles PUT /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	err := h.users.ChangePassword(c.Request.Context(), middleware.UserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, code int, user *models.User) {
	token, err := h.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		c.Error(err)
		return
	}
	refresh, err := h.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, code, AuthResponse{Token: token, RefreshToken: refresh, User: user})
}
