package workspace

import (
	"context"

	"github.com/google/uuid"
)

// BoardRepository defines the interface for board persistence
type BoardRepository interface {
	// Create creates a new board
	Create(ctx context.Context, board *Board) error

	// Update updates an existing board
	Update(ctx context.Context, board *Board) error

	// Delete deletes a board and its tasks
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a board by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Board, error)

	// FindByProjectID returns the project's boards ordered by position
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*Board, error)

	// FindDefaultForProject returns the lowest-position board of a project.
	// Returns shared.ErrNoBoardFound when the project has no boards.
	FindDefaultForProject(ctx context.Context, projectID uuid.UUID) (*Board, error)

	// MaxPosition returns the highest board position in a project, -1 when empty
	MaxPosition(ctx context.Context, projectID uuid.UUID) (int, error)
}
