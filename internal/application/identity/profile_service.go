package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProfileService keeps a profile row in step with the identity lifecycle
// and serves profile reads and updates.
type ProfileService struct {
	profileRepo identity.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo identity.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// EnsureProfile guarantees a profile row exists for the user. It is safe to
// call repeatedly; the user ID primary key makes the insert idempotent, and a
// duplicate-key failure from a racing insert counts as success. Any error
// other than the expected not-found lookup is logged and swallowed so profile
// bootstrap can never block a sign-in.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) {
	_, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Warn("Profile lookup failed during ensure",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	profile, err := identity.NewProfile(userID, firstName, lastName)
	if err != nil {
		s.logger.Warn("Profile construction failed during ensure",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the race to a concurrent ensure; the row exists, done
			return
		}
		s.logger.Warn("Profile creation failed during ensure",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	s.logger.Info("Profile created", zap.String("user_id", userID.String()))
}

// EnsureProfileAsync spawns EnsureProfile in the background with its own
// deadline and error boundary. Completion is not synchronized with the
// triggering request.
func (s *ProfileService) EnsureProfileAsync(userID uuid.UUID, firstName, lastName string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Panic in background profile ensure",
					zap.String("user_id", userID.String()),
					zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.EnsureProfile(ctx, userID, firstName, lastName)
	}()
}

// GetProfile returns the user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileInfo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROFILE_NOT_FOUND", "Profile not found")
		}
		s.logger.Error("Failed to load profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
	}

	info := toProfileInfo(profile)
	return &info, nil
}

// UpdateProfile applies the provided fields and returns the fresh profile.
// Mutation and re-read are separate phases so the caller always receives
// reconciled server state.
func (s *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*ProfileInfo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROFILE_NOT_FOUND", "Profile not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
	}

	if input.FirstName != nil || input.LastName != nil {
		first := profile.FirstName
		last := profile.LastName
		if input.FirstName != nil {
			first = *input.FirstName
		}
		if input.LastName != nil {
			last = *input.LastName
		}
		if err := profile.SetName(first, last); err != nil {
			return nil, err
		}
	}
	if input.Theme != nil {
		if err := profile.SetTheme(identity.ThemePreference(*input.Theme)); err != nil {
			return nil, err
		}
	}
	if input.Language != nil {
		if err := profile.SetLanguage(*input.Language); err != nil {
			return nil, err
		}
	}
	if input.CompactMode != nil {
		profile.CompactMode = *input.CompactMode
	}
	if input.EmailNotifications != nil {
		profile.EmailNotifications = *input.EmailNotifications
	}
	if input.TaskReminders != nil {
		profile.TaskReminders = *input.TaskReminders
	}
	if input.MentionNotifications != nil {
		profile.MentionNotifications = *input.MentionNotifications
	}
	if input.BrowserNotifications != nil {
		profile.BrowserNotifications = *input.BrowserNotifications
	}
	if input.AutoSave != nil {
		profile.AutoSave = *input.AutoSave
	}
	if input.UsageAnalytics != nil {
		profile.UsageAnalytics = *input.UsageAnalytics
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	// Phase two: read back the stored record
	fresh, err := s.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		s.logger.Error("Failed to reload profile after update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload profile")
	}

	info := toProfileInfo(fresh)
	return &info, nil
}

// SetAvatarURL stores the avatar URL on the profile and returns the fresh profile
func (s *ProfileService) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) (*ProfileInfo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROFILE_NOT_FOUND", "Profile not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
	}

	if err := profile.SetAvatarURL(url); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		s.logger.Error("Failed to store avatar URL", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	fresh, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload profile")
	}

	info := toProfileInfo(fresh)
	return &info, nil
}
