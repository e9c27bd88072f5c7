package workspace

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusNotStarted  ProjectStatus = "Not Started"
	ProjectStatusInProgress  ProjectStatus = "In Progress"
	ProjectStatusOnHold      ProjectStatus = "On Hold"
	ProjectStatusCompleted   ProjectStatus = "Completed"
	ProjectStatusCancelled   ProjectStatus = "Cancelled"
	ProjectStatusUnspecified ProjectStatus = ""
)

// ParseProjectStatus maps a stored string to a known status.
// Unknown or legacy values collapse to Unspecified rather than leaking through.
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return ProjectStatus(s)
	default:
		return ProjectStatusUnspecified
	}
}

// IsValid reports whether the status is one of the known variants
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project represents a project workspace owning boards and members
type Project struct {
	shared.BaseAggregateRoot
	Title       string
	Description string
	Status      ProjectStatus
	Deadline    *time.Time
	OwnerID     uuid.UUID
}

// NewProject creates a new project owned by the given user
func NewProject(ownerID uuid.UUID, title, description string) (*Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Project title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Project title cannot exceed 200 characters")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Project owner cannot be empty")
	}

	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       strings.TrimSpace(description),
		Status:            ProjectStatusNotStarted,
		OwnerID:           ownerID,
	}, nil
}

// SetTitle updates the project title
func (p *Project) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Project title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Project title cannot exceed 200 characters")
	}

	p.Title = title
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDescription updates the project description
func (p *Project) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStatus transitions the project to a known status
func (p *Project) SetStatus(status ProjectStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown project status")
	}

	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDeadline updates the project deadline; nil clears it
func (p *Project) SetDeadline(deadline *time.Time) {
	p.Deadline = deadline
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsOwnedBy reports whether the given user owns the project
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// ProjectMember links a user to a project with a role
type ProjectMember struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Role      string
	CreatedAt time.Time
}

// DefaultMemberRole is assigned when no role is given
const DefaultMemberRole = "member"

// NewProjectMember creates a membership record
func NewProjectMember(projectID, userID uuid.UUID, role string) (*ProjectMember, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = DefaultMemberRole
	}

	return &ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}
