package workspace

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	TaskStatusToDo        TaskStatus = "To Do"
	TaskStatusInProgress  TaskStatus = "In Progress"
	TaskStatusUnderReview TaskStatus = "Under Review"
	TaskStatusCompleted   TaskStatus = "Completed"
	TaskStatusUnspecified TaskStatus = ""
)

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow         TaskPriority = "Low"
	TaskPriorityMedium      TaskPriority = "Medium"
	TaskPriorityHigh        TaskPriority = "High"
	TaskPriorityUrgent      TaskPriority = "Urgent"
	TaskPriorityUnspecified TaskPriority = ""
)

// ParseTaskStatus maps a stored string to a known status.
// Unknown or legacy values collapse to Unspecified rather than leaking through.
func ParseTaskStatus(s string) TaskStatus {
	switch TaskStatus(s) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusUnderReview, TaskStatusCompleted:
		return TaskStatus(s)
	default:
		return TaskStatusUnspecified
	}
}

// ParseTaskPriority maps a stored string to a known priority
func ParseTaskPriority(s string) TaskPriority {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return TaskPriority(s)
	default:
		return TaskPriorityUnspecified
	}
}

// IsValid reports whether the status is one of the known variants
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusUnderReview, TaskStatusCompleted:
		return true
	}
	return false
}

// IsValid reports whether the priority is one of the known variants
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Task represents a unit of work on a board
type Task struct {
	shared.BaseAggregateRoot
	BoardID     uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	CreatorID   uuid.UUID
	Position    int
}

// NewTask creates a task on a board with default workflow values
func NewTask(boardID, creatorID uuid.UUID, title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}
	if boardID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOARD_ID", "Board ID cannot be empty")
	}
	if creatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Task creator cannot be empty")
	}

	return &Task{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BoardID:           boardID,
		Title:             title,
		Status:            TaskStatusToDo,
		Priority:          TaskPriorityMedium,
		CreatorID:         creatorID,
	}, nil
}

// SetTitle updates the task title
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}

	t.Title = title
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetDescription updates the task description
func (t *Task) SetDescription(description string) {
	t.Description = strings.TrimSpace(description)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// SetStatus transitions the task to a known status
func (t *Task) SetStatus(status TaskStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown task status")
	}

	t.Status = status
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetPriority sets the task priority
func (t *Task) SetPriority(priority TaskPriority) error {
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Unknown task priority")
	}

	t.Priority = priority
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetDueDate updates the due date; nil clears it
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// Assign sets the assignee; nil unassigns
func (t *Task) Assign(userID *uuid.UUID) {
	t.AssigneeID = userID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// MoveToBoard moves the task onto another board at the given position
func (t *Task) MoveToBoard(boardID uuid.UUID, position int) error {
	if boardID == uuid.Nil {
		return shared.NewDomainError("INVALID_BOARD_ID", "Board ID cannot be empty")
	}
	if position < 0 {
		return shared.NewDomainError("INVALID_POSITION", "Task position cannot be negative")
	}

	t.BoardID = boardID
	t.Position = position
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// IsCompleted reports whether the task has reached the Completed status
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
