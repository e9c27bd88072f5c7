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

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *workspace.Task) error {
	model := models.TaskModelFromDomain(task)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves an existing task
func (r *GormTaskRepository) Update(ctx context.Context, task *workspace.Task) error {
	model := models.TaskModelFromDomain(task)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a task by ID
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a task by its ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBoardID returns the board's tasks ordered by position
func (r *GormTaskRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*workspace.Task, error) {
	var taskModels []models.TaskModel
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*workspace.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, nil
}

// FindVisible returns the user's visible tasks matching the filter
func (r *GormTaskRepository) FindVisible(ctx context.Context, userID uuid.UUID, filter workspace.TaskFilter) ([]*workspace.Task, error) {
	var taskModels []models.TaskModel
	query := r.visibleQuery(ctx, userID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*workspace.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, nil
}

// FindVisibleWithProject is FindVisible with the board→project join resolved
func (r *GormTaskRepository) FindVisibleWithProject(ctx context.Context, userID uuid.UUID, filter workspace.TaskFilter) ([]*workspace.TaskWithProject, error) {
	var rows []models.TaskWithProjectRow
	query := r.visibleQuery(ctx, userID).
		Select("tasks.*, projects.id AS project_id, projects.title AS project_title").
		Joins("JOIN boards ON boards.id = tasks.board_id").
		Joins("JOIN projects ON projects.id = boards.project_id")
	query = r.applyFilter(query, filter)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	tasks := make([]*workspace.TaskWithProject, len(rows))
	for i := range rows {
		tasks[i] = rows[i].ToDomain()
	}
	return tasks, nil
}

// MaxPosition returns the highest task position on a board, -1 when empty
func (r *GormTaskRepository) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("board_id = ?", boardID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// visibleQuery scopes tasks to those the user created, is assigned to, or
// owns through the board's project.
func (r *GormTaskRepository) visibleQuery(ctx context.Context, userID uuid.UUID) *gorm.DB {
	ownedBoards := r.db.Model(&models.BoardModel{}).
		Select("boards.id").
		Joins("JOIN projects ON projects.id = boards.project_id").
		Where("projects.owner_id = ?", userID)

	return r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("tasks.creator_id = ? OR tasks.assignee_id = ? OR tasks.board_id IN (?)",
			userID, userID, ownedBoards)
}

// applyFilter applies filter windows and sorting to the query
func (r *GormTaskRepository) applyFilter(query *gorm.DB, filter workspace.TaskFilter) *gorm.DB {
	if filter.DueAfter != nil {
		query = query.Where("tasks.due_date >= ?", *filter.DueAfter)
	}
	if filter.DueBefore != nil {
		query = query.Where("tasks.due_date <= ?", *filter.DueBefore)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("tasks.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("tasks.created_at <= ?", *filter.CreatedBefore)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", string(*filter.Status))
	}

	sortField := ValidateSortField(filter.SortBy, TaskSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	return query.Order("tasks." + sortField + " " + sortOrder)
}

// Ensure GormTaskRepository implements TaskRepository
var _ workspace.TaskRepository = (*GormTaskRepository)(nil)
