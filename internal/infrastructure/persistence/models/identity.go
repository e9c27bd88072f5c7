package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email        string `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// ProfileModel is the persistence model for the Profile domain entity.
// The primary key is the owning user's ID.
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	AvatarURL string    `gorm:"type:varchar(500)"`

	Theme       string `gorm:"type:varchar(10);not null;default:'light'"`
	CompactMode bool   `gorm:"not null;default:false"`
	Language    string `gorm:"type:varchar(50);not null"`

	EmailNotifications   bool `gorm:"not null;default:true"`
	TaskReminders        bool `gorm:"not null;default:true"`
	MentionNotifications bool `gorm:"not null;default:true"`
	BrowserNotifications bool `gorm:"not null;default:true"`
	AutoSave             bool `gorm:"not null;default:true"`
	UsageAnalytics       bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile entity.
func (m *ProfileModel) ToDomain() *identity.Profile {
	return &identity.Profile{
		UserID:               m.UserID,
		FirstName:            m.FirstName,
		LastName:             m.LastName,
		AvatarURL:            m.AvatarURL,
		Theme:                identity.ThemePreference(m.Theme),
		CompactMode:          m.CompactMode,
		Language:             m.Language,
		EmailNotifications:   m.EmailNotifications,
		TaskReminders:        m.TaskReminders,
		MentionNotifications: m.MentionNotifications,
		BrowserNotifications: m.BrowserNotifications,
		AutoSave:             m.AutoSave,
		UsageAnalytics:       m.UsageAnalytics,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Profile entity.
func (m *ProfileModel) FromDomain(p *identity.Profile) {
	m.UserID = p.UserID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.AvatarURL = p.AvatarURL
	m.Theme = string(p.Theme)
	m.CompactMode = p.CompactMode
	m.Language = p.Language
	m.EmailNotifications = p.EmailNotifications
	m.TaskReminders = p.TaskReminders
	m.MentionNotifications = p.MentionNotifications
	m.BrowserNotifications = p.BrowserNotifications
	m.AutoSave = p.AutoSave
	m.UsageAnalytics = p.UsageAnalytics
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ProfileModelFromDomain creates a new persistence model from a domain Profile entity.
func ProfileModelFromDomain(p *identity.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}
