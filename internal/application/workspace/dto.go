package workspace

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/workspace"
)

// CreateProjectInput contains data for creating a project
type CreateProjectInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Deadline    *time.Time
	Status      string
}

// UpdateProjectInput contains partial project updates; nil fields are unchanged
type UpdateProjectInput struct {
	ProjectID     uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	Status        *string
	Deadline      *time.Time
	ClearDeadline bool
}

// AddMemberInput contains data for adding a project member
type AddMemberInput struct {
	ProjectID uuid.UUID
	ActorID   uuid.UUID
	UserID    uuid.UUID
	Role      string
}

// CreateBoardInput contains data for creating a board
type CreateBoardInput struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Title     string
}

// CreateTaskInput contains data for creating a task. BoardID is optional;
// when absent the project's default board is resolved.
type CreateTaskInput struct {
	CreatorID   uuid.UUID
	ProjectID   uuid.UUID
	BoardID     *uuid.UUID
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
}

// UpdateTaskInput contains partial task updates; nil fields are unchanged
type UpdateTaskInput struct {
	TaskID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	DueDate       *time.Time
	ClearDueDate  bool
	AssigneeID    *uuid.UUID
	ClearAssignee bool
	BoardID       *uuid.UUID
	Position      *int
}

// ProjectInfo is the project representation returned to the transport layer
type ProjectInfo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MemberInfo is the membership representation returned to the transport layer
type MemberInfo struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// BoardInfo is the board representation returned to the transport layer
type BoardInfo struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskInfo is the task representation returned to the transport layer.
// Status and priority pass through ParseX so legacy values read back as
// empty (unspecified) rather than leaking raw strings.
type TaskInfo struct {
	ID          uuid.UUID                   `json:"id"`
	BoardID     uuid.UUID                   `json:"board_id"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Status      string                      `json:"status"`
	Priority    string                      `json:"priority"`
	DueDate     *time.Time                  `json:"due_date,omitempty"`
	Due         workspace.DueClassification `json:"due"`
	AssigneeID  *uuid.UUID                  `json:"assignee_id,omitempty"`
	CreatorID   uuid.UUID                   `json:"creator_id"`
	Position    int                         `json:"position"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func toProjectInfo(p *workspace.Project) ProjectInfo {
	return ProjectInfo{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(workspace.ParseProjectStatus(string(p.Status))),
		Deadline:    p.Deadline,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toMemberInfo(m *workspace.ProjectMember) MemberInfo {
	return MemberInfo{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func toBoardInfo(b *workspace.Board) BoardInfo {
	return BoardInfo{
		ID:        b.ID,
		ProjectID: b.ProjectID,
		Title:     b.Title,
		Position:  b.Position,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toTaskInfo(t *workspace.Task, now time.Time) TaskInfo {
	return TaskInfo{
		ID:          t.ID,
		BoardID:     t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(workspace.ParseTaskStatus(string(t.Status))),
		Priority:    string(workspace.ParseTaskPriority(string(t.Priority))),
		DueDate:     t.DueDate,
		Due:         workspace.ClassifyDueDate(t.DueDate, now),
		AssigneeID:  t.AssigneeID,
		CreatorID:   t.CreatorID,
		Position:    t.Position,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
