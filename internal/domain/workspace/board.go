package workspace

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// Board represents an ordered column group of tasks within a project
type Board struct {
	shared.BaseAggregateRoot
	ProjectID uuid.UUID
	Title     string
	Position  int
}

// NewBoard creates a board at the given position within a project
func NewBoard(projectID uuid.UUID, title string, position int) (*Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Board title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Board title cannot exceed 200 characters")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	if position < 0 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Board position cannot be negative")
	}

	return &Board{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		Title:             title,
		Position:          position,
	}, nil
}

// SetTitle updates the board title
func (b *Board) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Board title cannot be empty")
	}

	b.Title = title
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetPosition moves the board to a new position
func (b *Board) SetPosition(position int) error {
	if position < 0 {
		return shared.NewDomainError("INVALID_POSITION", "Board position cannot be negative")
	}

	b.Position = position
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}
