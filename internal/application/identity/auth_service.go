package identity

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	profiles   *ProfileService
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	oauth      config.OAuthConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	profiles *ProfileService,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	oauth config.OAuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		profiles:   profiles,
		jwtService: jwtService,
		blacklist:  blacklist,
		oauth:      oauth,
		logger:     logger,
	}
}

// Register creates a new account and signs it in. Profile bootstrap runs in
// the background and never blocks or fails the sign-up.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	s.logger.Info("Registration attempt", zap.String("email", input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.profiles.EnsureProfileAsync(user.ID, user.FirstName, user.LastName)

	s.logger.Info("User registered",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return s.authResult(tokenPair, user), nil
}

// Login authenticates a user and returns tokens. Each successful login
// triggers exactly one background profile ensure.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't fail the login over bookkeeping
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.profiles.EnsureProfileAsync(user.ID, user.FirstName, user.LastName)

	s.logger.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return s.authResult(tokenPair, user), nil
}

// OAuthRedirect builds the authorization URL for an external identity provider
func (s *AuthService) OAuthRedirect(provider, redirectTo string) (*OAuthRedirectResult, error) {
	switch provider {
	case "google":
		if s.oauth.GoogleClientID == "" {
			return nil, shared.NewDomainError("OAUTH_NOT_CONFIGURED", "Google sign-in is not configured")
		}

		q := url.Values{}
		q.Set("client_id", s.oauth.GoogleClientID)
		q.Set("redirect_uri", s.oauth.GoogleRedirectURL)
		q.Set("response_type", "code")
		q.Set("scope", "openid email profile")
		if redirectTo != "" {
			q.Set("state", redirectTo)
		}

		return &OAuthRedirectResult{
			Provider: provider,
			URL:      s.oauth.GoogleAuthURL + "?" + q.Encode(),
		}, nil
	default:
		return nil, shared.NewDomainError("UNSUPPORTED_PROVIDER", "Unsupported OAuth provider")
	}
}

// RefreshToken rotates the token pair using a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed", zap.String("user_id", userID.String()))

	return s.authResult(tokenPair, user), nil
}

// Logout revokes the presented access token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.JTI == "" {
		return shared.NewDomainError("TOKEN_INVALID", "Token has no ID to revoke")
	}

	if err := s.blacklist.Revoke(ctx, input.JTI, input.TTL); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to end session")
	}

	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))

	return nil
}

// GetCurrentUser retrieves the current user's information
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	info := toUserInfo(user)
	return &info, nil
}

// ChangePassword changes a user's password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))

	return nil
}

// RequestPasswordReset issues a short-lived reset token for the account.
// An unknown email yields the same outward success to avoid account probing;
// the returned result is nil in that case.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*PasswordResetResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("Password reset requested for unknown email")
			return nil, nil
		}
		s.logger.Error("Failed to look up user for password reset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reset request")
	}

	token, expiresAt, err := s.jwtService.GenerateResetToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate reset token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process reset request")
	}

	s.logger.Info("Password reset token issued", zap.String("user_id", user.ID.String()))

	return &PasswordResetResult{ResetToken: token, ExpiresAt: expiresAt}, nil
}

// ResetPassword sets a new password using a valid reset token
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	claims, err := s.jwtService.ValidateResetToken(input.ResetToken)
	if err != nil {
		return mapTokenError(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to store new password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("Password reset completed", zap.String("user_id", userID.String()))

	return nil
}

func (s *AuthService) authResult(tokenPair *auth.TokenPair, user *identity.User) *AuthResult {
	return &AuthResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  toUserInfo(user),
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate token")
	}
}
