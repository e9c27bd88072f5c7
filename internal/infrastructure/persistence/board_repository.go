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

// GormBoardRepository implements BoardRepository using GORM
type GormBoardRepository struct {
	db *gorm.DB
}

// NewGormBoardRepository creates a new GormBoardRepository
func NewGormBoardRepository(db *gorm.DB) *GormBoardRepository {
	return &GormBoardRepository{db: db}
}

// Create inserts a new board
func (r *GormBoardRepository) Create(ctx context.Context, board *workspace.Board) error {
	model := models.BoardModelFromDomain(board)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves an existing board
func (r *GormBoardRepository) Update(ctx context.Context, board *workspace.Board) error {
	model := models.BoardModelFromDomain(board)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a board and its tasks
func (r *GormBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TaskModel{}, "board_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BoardModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a board by its ID
func (r *GormBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Board, error) {
	var model models.BoardModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProjectID returns the project's boards ordered by position
func (r *GormBoardRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*workspace.Board, error) {
	var boardModels []models.BoardModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&boardModels).Error; err != nil {
		return nil, err
	}

	boards := make([]*workspace.Board, len(boardModels))
	for i := range boardModels {
		boards[i] = boardModels[i].ToDomain()
	}
	return boards, nil
}

// FindDefaultForProject returns the project's lowest-position board.
// Returns shared.ErrNoBoardFound when the project has no boards.
func (r *GormBoardRepository) FindDefaultForProject(ctx context.Context, projectID uuid.UUID) (*workspace.Board, error) {
	var model models.BoardModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNoBoardFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// MaxPosition returns the highest board position in a project, -1 when empty
func (r *GormBoardRepository) MaxPosition(ctx context.Context, projectID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&models.BoardModel{}).
		Where("project_id = ?", projectID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Ensure GormBoardRepository implements BoardRepository
var _ workspace.BoardRepository = (*GormBoardRepository)(nil)
