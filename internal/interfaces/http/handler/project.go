package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	workspaceapp "github.com/taskflow/backend/internal/application/workspace"
	"github.com/taskflow/backend/internal/domain/workspace"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
)

// ProjectHandler handles project and membership API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *workspaceapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *workspaceapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status" binding:"omitempty,max=20"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Status        *string    `json:"status" binding:"omitempty,max=20"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clear_deadline"`
}

// AddMemberRequest represents a request to add a project member
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,max=50"`
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.projectService.CreateProject(c.Request.Context(), workspaceapp.CreateProjectInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 50
	}

	filter := workspace.NewProjectFilter().WithPagination(req.Page, req.PageSize)
	if req.Search != "" {
		filter = filter.WithKeyword(req.Search)
	}
	if req.Status != "" {
		status := workspace.ParseProjectStatus(req.Status)
		if status == workspace.ProjectStatusUnspecified {
			h.BadRequest(c, "Unknown project status")
			return
		}
		filter = filter.WithStatus(status)
	}

	projects, total, err := h.projectService.ListProjects(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, projects, total, req.Page, req.PageSize)
}

// GetByID handles GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	info, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Update handles PATCH /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.projectService.UpdateProject(c.Request.Context(), workspaceapp.UpdateProjectInput{
		ProjectID:     projectID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListMembers handles GET /projects/:id/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(c.Request.Context(), projectID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, members)
}

// AddMember handles POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	member, err := h.projectService.AddMember(c.Request.Context(), workspaceapp.AddMemberInput{
		ProjectID: projectID,
		ActorID:   actorID,
		UserID:    memberID,
		Role:      req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, member)
}

// RemoveMember handles DELETE /projects/:id/members/:userId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := h.parseID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.projectService.RemoveMember(c.Request.Context(), projectID, actorID, memberID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseID parses the :id path parameter, responding with 400 on failure
func (h *ProjectHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return uuid.Nil, false
	}
	return id, true
}
