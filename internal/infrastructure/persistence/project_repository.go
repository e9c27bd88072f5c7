package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"github.com/taskflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create inserts a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *workspace.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves an existing project
func (r *GormProjectRepository) Update(ctx context.Context, project *workspace.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a project with its boards, tasks and memberships
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("board_id IN (?)", tx.Model(&models.BoardModel{}).Select("id").Where("project_id = ?", id)).
			Delete(&models.TaskModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.BoardModel{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ProjectMemberModel{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ProjectModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindVisible finds projects the user owns or is a member of
func (r *GormProjectRepository) FindVisible(ctx context.Context, userID uuid.UUID, filter workspace.ProjectFilter) ([]*workspace.Project, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Model(&models.ProjectMemberModel{}).Select("project_id").Where("user_id = ?", userID))

	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.SortBy, ProjectSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortOrder)

	var projectModels []models.ProjectModel
	if err := base.
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*workspace.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, total, nil
}

// AddMember inserts a project membership
func (r *GormProjectRepository) AddMember(ctx context.Context, member *workspace.ProjectMember) error {
	model := models.ProjectMemberModelFromDomain(member)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// RemoveMember deletes a project membership
func (r *GormProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ProjectMemberModel{}, "project_id = ? AND user_id = ?", projectID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindMembers returns the project's memberships
func (r *GormProjectRepository) FindMembers(ctx context.Context, projectID uuid.UUID) ([]*workspace.ProjectMember, error) {
	var memberModels []models.ProjectMemberModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]*workspace.ProjectMember, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToDomain()
	}
	return members, nil
}

// IsMember reports whether the user belongs to the project
func (r *GormProjectRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProjectMemberModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormProjectRepository) applyFilterWithoutPagination(query *gorm.DB, filter workspace.ProjectFilter) *gorm.DB {
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	return query
}

// Ensure GormProjectRepository implements ProjectRepository
var _ workspace.ProjectRepository = (*GormProjectRepository)(nil)
