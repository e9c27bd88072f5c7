package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/taskflow/backend/internal/application/identity"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest represents a sign-up request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=320"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"max=200"`
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

// PasswordResetRequest starts or completes a password reset. An email
// starts the flow; a reset token plus new password completes it.
type PasswordResetRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password" binding:"omitempty,min=8,max=128"`
}

// UpdatePasswordRequest changes the signed-in user's password
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identityapp.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), identityapp.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout handles POST /auth/logout. The presented access token is revoked
// for its remaining lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "Invalid token")
		return
	}

	err = h.authService.Logout(c.Request.Context(), identityapp.LogoutInput{
		UserID: userID,
		JTI:    claims.ID,
		TTL:    claims.GetRemainingTTL(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// OAuthRedirect handles GET /auth/oauth/:provider
func (h *AuthHandler) OAuthRedirect(c *gin.Context) {
	provider := c.Param("provider")
	redirectTo := c.Query("redirect_to")

	result, err := h.authService.OAuthRedirect(provider, redirectTo)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// PasswordReset handles POST /auth/password/reset. Unknown emails yield
// the same outward success to avoid account probing.
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Completion mode: token plus new password
	if req.ResetToken != "" {
		if req.NewPassword == "" {
			h.BadRequest(c, "new_password is required")
			return
		}
		err := h.authService.ResetPassword(c.Request.Context(), identityapp.ResetPasswordInput{
			ResetToken:  req.ResetToken,
			NewPassword: req.NewPassword,
		})
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, gin.H{"message": "Password updated"})
		return
	}

	if req.Email == "" {
		h.BadRequest(c, "email is required")
		return
	}

	result, err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result == nil {
		h.Success(c, gin.H{"message": "If the account exists, a reset token has been issued"})
		return
	}

	h.Success(c, result)
}

// UpdatePassword handles PUT /auth/password for the signed-in user
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	err = h.authService.ChangePassword(c.Request.Context(), identityapp.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password updated"})
}

// GetCurrentUser handles GET /me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
