package identity

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *Profile) error

	// Update updates an existing profile
	Update(ctx context.Context, profile *Profile) error

	// FindByUserID finds the profile for a user.
	// Returns shared.ErrNotFound when the user has no profile yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
