package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// ThemePreference controls the dashboard color scheme
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// Default preference values applied when a profile is first created
const (
	DefaultTheme    = ThemeLight
	DefaultLanguage = "English (US)"
)

// Profile holds per-user presentation and notification preferences.
// Exactly one profile exists per user; it shares the user's ID.
type Profile struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	AvatarURL string

	Theme       ThemePreference
	CompactMode bool
	Language    string

	EmailNotifications   bool
	TaskReminders        bool
	MentionNotifications bool
	BrowserNotifications bool
	AutoSave             bool
	UsageAnalytics       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile creates a profile with default preferences for a user
func NewProfile(userID uuid.UUID, firstName, lastName string) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}

	now := time.Now()
	return &Profile{
		UserID:               userID,
		FirstName:            strings.TrimSpace(firstName),
		LastName:             strings.TrimSpace(lastName),
		Theme:                DefaultTheme,
		CompactMode:          false,
		Language:             DefaultLanguage,
		EmailNotifications:   true,
		TaskReminders:        true,
		MentionNotifications: true,
		BrowserNotifications: true,
		AutoSave:             true,
		UsageAnalytics:       false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// FullName returns the profile's display name
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SetName updates the profile's first and last name
func (p *Profile) SetName(firstName, lastName string) error {
	if len(firstName) > 100 || len(lastName) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}

	p.FirstName = strings.TrimSpace(firstName)
	p.LastName = strings.TrimSpace(lastName)
	p.UpdatedAt = time.Now()

	return nil
}

// SetAvatarURL updates the avatar URL
func (p *Profile) SetAvatarURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_AVATAR", "Avatar URL cannot exceed 500 characters")
	}

	p.AvatarURL = url
	p.UpdatedAt = time.Now()

	return nil
}

// SetTheme updates the theme preference
func (p *Profile) SetTheme(theme ThemePreference) error {
	if theme != ThemeLight && theme != ThemeDark {
		return shared.NewDomainError("INVALID_THEME", "Theme must be light or dark")
	}

	p.Theme = theme
	p.UpdatedAt = time.Now()

	return nil
}

// SetLanguage updates the language preference
func (p *Profile) SetLanguage(language string) error {
	if strings.TrimSpace(language) == "" {
		return shared.NewDomainError("INVALID_LANGUAGE", "Language cannot be empty")
	}
	if len(language) > 50 {
		return shared.NewDomainError("INVALID_LANGUAGE", "Language cannot exceed 50 characters")
	}

	p.Language = language
	p.UpdatedAt = time.Now()

	return nil
}
