package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Create inserts a new profile. A racing insert for the same user surfaces
// as shared.ErrAlreadyExists via the primary key.
func (r *GormProfileRepository) Create(ctx context.Context, profile *identity.Profile) error {
	model := models.ProfileModelFromDomain(profile)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update saves an existing profile
func (r *GormProfileRepository) Update(ctx context.Context, profile *identity.Profile) error {
	model := models.ProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByUserID finds a profile by the owning user's ID.
// Returns shared.ErrNotFound when absent.
func (r *GormProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormProfileRepository implements ProfileRepository
var _ identity.ProfileRepository = (*GormProfileRepository)(nil)
