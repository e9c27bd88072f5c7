package workspace

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskWithProject pairs a task with its owning project resolved via the
// board join; aggregators need the project without loading full aggregates.
type TaskWithProject struct {
	Task         *Task
	ProjectID    uuid.UUID
	ProjectTitle string
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *Task) error

	// Update updates an existing task
	Update(ctx context.Context, task *Task) error

	// Delete deletes a task by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindByBoardID returns the board's tasks ordered by position
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*Task, error)

	// FindVisible returns tasks the user created, is assigned to, or owns via
	// the board's project, matching the given filter
	FindVisible(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*Task, error)

	// FindVisibleWithProject is FindVisible with the board→project join resolved
	FindVisibleWithProject(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*TaskWithProject, error)

	// MaxPosition returns the highest task position on a board, -1 when empty
	MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error)
}

// TaskFilter contains filter options for querying tasks
type TaskFilter struct {
	// Filter by due date window, inclusive on both ends
	DueAfter  *time.Time
	DueBefore *time.Time

	// Filter by creation date window
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	// Filter by status
	Status *TaskStatus

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewTaskFilter creates a new TaskFilter with default values
func NewTaskFilter() TaskFilter {
	return TaskFilter{
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithDueWindow restricts tasks to a due-date window
func (f TaskFilter) WithDueWindow(after, before time.Time) TaskFilter {
	f.DueAfter = &after
	f.DueBefore = &before
	return f
}

// WithCreatedWindow restricts tasks to a creation-date window
func (f TaskFilter) WithCreatedWindow(after, before time.Time) TaskFilter {
	f.CreatedAfter = &after
	f.CreatedBefore = &before
	return f
}

// WithStatus sets the status filter
func (f TaskFilter) WithStatus(status TaskStatus) TaskFilter {
	f.Status = &status
	return f
}

// WithSorting sets sorting parameters
func (f TaskFilter) WithSorting(sortBy, sortOrder string) TaskFilter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}
