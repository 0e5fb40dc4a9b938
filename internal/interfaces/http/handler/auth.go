package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/chemstock/backend/internal/application/identity"
	"github.com/chemstock/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents a logout request. The refresh token is optional;
// the access token comes from the Authorization header.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates a user and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), identityapp.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tokens)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), identityapp.RefreshRequest{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tokens)
}

// Logout revokes the current session's tokens
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Body is optional for logout
	_ = c.ShouldBindJSON(&req)

	accessToken := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)

	if err := h.authService.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
