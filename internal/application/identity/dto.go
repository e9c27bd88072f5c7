package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
)

// RegisterInput contains registration data
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput identifies the session being ended
type LogoutInput struct {
	UserID uuid.UUID
	JTI    string
	TTL    time.Duration
}

// ChangePasswordInput contains password change data
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ResetPasswordInput carries a reset token and the new password
type ResetPasswordInput struct {
	ResetToken  string
	NewPassword string
}

// UserInfo is the user representation returned to the transport layer
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileInfo is the profile representation returned to the transport layer
type ProfileInfo struct {
	UserID               uuid.UUID `json:"user_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	AvatarURL            string    `json:"avatar_url"`
	Theme                string    `json:"theme"`
	CompactMode          bool      `json:"compact_mode"`
	Language             string    `json:"language"`
	EmailNotifications   bool      `json:"email_notifications"`
	TaskReminders        bool      `json:"task_reminders"`
	MentionNotifications bool      `json:"mention_notifications"`
	BrowserNotifications bool      `json:"browser_notifications"`
	AutoSave             bool      `json:"auto_save"`
	UsageAnalytics       bool      `json:"usage_analytics"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// AuthResult is returned from Register, Login and Refresh
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// OAuthRedirectResult carries the provider authorization URL
type OAuthRedirectResult struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// PasswordResetResult carries the issued reset token
type PasswordResetResult struct {
	ResetToken string    `json:"reset_token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// UpdateProfileInput contains partial profile updates; nil fields are unchanged
type UpdateProfileInput struct {
	UserID               uuid.UUID
	FirstName            *string
	LastName             *string
	Theme                *string
	CompactMode          *bool
	Language             *string
	EmailNotifications   *bool
	TaskReminders        *bool
	MentionNotifications *bool
	BrowserNotifications *bool
	AutoSave             *bool
	UsageAnalytics       *bool
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DisplayName: user.DisplayName(),
		CreatedAt:   user.CreatedAt,
	}
}

func toProfileInfo(profile *identity.Profile) ProfileInfo {
	return ProfileInfo{
		UserID:               profile.UserID,
		FirstName:            profile.FirstName,
		LastName:             profile.LastName,
		AvatarURL:            profile.AvatarURL,
		Theme:                string(profile.Theme),
		CompactMode:          profile.CompactMode,
		Language:             profile.Language,
		EmailNotifications:   profile.EmailNotifications,
		TaskReminders:        profile.TaskReminders,
		MentionNotifications: profile.MentionNotifications,
		BrowserNotifications: profile.BrowserNotifications,
		AutoSave:             profile.AutoSave,
		UsageAnalytics:       profile.UsageAnalytics,
		UpdatedAt:            profile.UpdatedAt,
	}
}
