package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/workspace"
)

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	AggregateModel
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(20);not null;default:'Not Started'"`
	Deadline    *time.Time
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *workspace.Project {
	return &workspace.Project{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Status:            workspace.ProjectStatus(m.Status),
		Deadline:          m.Deadline,
		OwnerID:           m.OwnerID,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *workspace.Project) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Title = p.Title
	m.Description = p.Description
	m.Status = string(p.Status)
	m.Deadline = p.Deadline
	m.OwnerID = p.OwnerID
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *workspace.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// ProjectMemberModel is the persistence model for project membership.
type ProjectMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user"`
	Role      string    `gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProjectMemberModel) TableName() string {
	return "project_members"
}

// ToDomain converts the persistence model to a domain ProjectMember.
func (m *ProjectMemberModel) ToDomain() *workspace.ProjectMember {
	return &workspace.ProjectMember{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

// ProjectMemberModelFromDomain creates a new persistence model from a domain ProjectMember.
func ProjectMemberModelFromDomain(pm *workspace.ProjectMember) *ProjectMemberModel {
	return &ProjectMemberModel{
		ID:        pm.ID,
		ProjectID: pm.ProjectID,
		UserID:    pm.UserID,
		Role:      pm.Role,
		CreatedAt: pm.CreatedAt,
	}
}

// BoardModel is the persistence model for the Board domain entity.
type BoardModel struct {
	AggregateModel
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (BoardModel) TableName() string {
	return "boards"
}

// ToDomain converts the persistence model to a domain Board entity.
func (m *BoardModel) ToDomain() *workspace.Board {
	return &workspace.Board{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ProjectID:         m.ProjectID,
		Title:             m.Title,
		Position:          m.Position,
	}
}

// FromDomain populates the persistence model from a domain Board entity.
func (m *BoardModel) FromDomain(b *workspace.Board) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.ProjectID = b.ProjectID
	m.Title = b.Title
	m.Position = b.Position
}

// BoardModelFromDomain creates a new persistence model from a domain Board entity.
func BoardModelFromDomain(b *workspace.Board) *BoardModel {
	m := &BoardModel{}
	m.FromDomain(b)
	return m
}

// TaskModel is the persistence model for the Task domain entity.
type TaskModel struct {
	AggregateModel
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'To Do'"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'Medium'"`
	DueDate     *time.Time
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position    int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *workspace.Task {
	return &workspace.Task{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BoardID:           m.BoardID,
		Title:             m.Title,
		Description:       m.Description,
		Status:            workspace.TaskStatus(m.Status),
		Priority:          workspace.TaskPriority(m.Priority),
		DueDate:           m.DueDate,
		AssigneeID:        m.AssigneeID,
		CreatorID:         m.CreatorID,
		Position:          m.Position,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *workspace.Task) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.BoardID = t.BoardID
	m.Title = t.Title
	m.Description = t.Description
	m.Status = string(t.Status)
	m.Priority = string(t.Priority)
	m.DueDate = t.DueDate
	m.AssigneeID = t.AssigneeID
	m.CreatorID = t.CreatorID
	m.Position = t.Position
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *workspace.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}

// TaskWithProjectRow is the scan target for task queries joined to the
// owning project through the board.
type TaskWithProjectRow struct {
	TaskModel
	ProjectID    uuid.UUID `gorm:"column:project_id"`
	ProjectTitle string    `gorm:"column:project_title"`
}

// ToDomain converts the joined row to a domain TaskWithProject.
func (r *TaskWithProjectRow) ToDomain() *workspace.TaskWithProject {
	return &workspace.TaskWithProject{
		Task:         r.TaskModel.ToDomain(),
		ProjectID:    r.ProjectID,
		ProjectTitle: r.ProjectTitle,
	}
}
