package workspace

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Update updates an existing project
	Update(ctx context.Context, project *Project) error

	// Delete deletes a project and its boards and tasks
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindVisible returns projects the user owns or is a member of
	FindVisible(ctx context.Context, userID uuid.UUID, filter ProjectFilter) ([]*Project, int64, error)

	// AddMember adds a user to a project
	AddMember(ctx context.Context, member *ProjectMember) error

	// RemoveMember removes a user from a project
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error

	// FindMembers returns the members of a project
	FindMembers(ctx context.Context, projectID uuid.UUID) ([]*ProjectMember, error)

	// IsMember reports whether the user belongs to the project
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

// ProjectFilter contains filter options for querying projects
type ProjectFilter struct {
	// Search keyword for title or description
	Keyword string

	// Filter by status
	Status *ProjectStatus

	// Pagination
	Page     int
	PageSize int

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewProjectFilter creates a new ProjectFilter with default values
func NewProjectFilter() ProjectFilter {
	return ProjectFilter{
		Page:      1,
		PageSize:  50,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithKeyword sets the search keyword
func (f ProjectFilter) WithKeyword(keyword string) ProjectFilter {
	f.Keyword = keyword
	return f
}

// WithStatus sets the status filter
func (f ProjectFilter) WithStatus(status ProjectStatus) ProjectFilter {
	f.Status = &status
	return f
}

// WithPagination sets pagination parameters
func (f ProjectFilter) WithPagination(page, pageSize int) ProjectFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset returns the offset for pagination
func (f ProjectFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f ProjectFilter) Limit() int {
	if f.PageSize <= 0 {
		return 50
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
