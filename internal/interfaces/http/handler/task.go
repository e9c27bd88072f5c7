package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	workspaceapp "github.com/taskflow/backend/internal/application/workspace"
)

// TaskHandler handles task API endpoints
type TaskHandler struct {
	BaseHandler
	taskService *workspaceapp.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *workspaceapp.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest represents a request to create a task. board_id is
// optional; without it the project's default board is resolved.
type CreateTaskRequest struct {
	ProjectID   string     `json:"project_id" binding:"required,uuid"`
	BoardID     *string    `json:"board_id" binding:"omitempty,uuid"`
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Status      string     `json:"status" binding:"omitempty,max=20"`
	Priority    string     `json:"priority" binding:"omitempty,max=20"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *string    `json:"assignee_id" binding:"omitempty,uuid"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=5000"`
	Status        *string    `json:"status" binding:"omitempty,max=20"`
	Priority      *string    `json:"priority" binding:"omitempty,max=20"`
	DueDate       *time.Time `json:"due_date"`
	ClearDueDate  bool       `json:"clear_due_date"`
	AssigneeID    *string    `json:"assignee_id" binding:"omitempty,uuid"`
	ClearAssignee bool       `json:"clear_assignee"`
	BoardID       *string    `json:"board_id" binding:"omitempty,uuid"`
	Position      *int       `json:"position" binding:"omitempty,min=0"`
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	input := workspaceapp.CreateTaskInput{
		CreatorID:   userID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	if req.BoardID != nil {
		boardID, err := uuid.Parse(*req.BoardID)
		if err != nil {
			h.BadRequest(c, "Invalid board ID")
			return
		}
		input.BoardID = &boardID
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			h.BadRequest(c, "Invalid assignee ID")
			return
		}
		input.AssigneeID = &assigneeID
	}

	info, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// List handles GET /tasks?filter=all|upcoming|completed
func (h *TaskHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter := workspaceapp.TaskListFilter(c.DefaultQuery("filter", string(workspaceapp.TaskListAll)))
	switch filter {
	case workspaceapp.TaskListAll, workspaceapp.TaskListUpcoming, workspaceapp.TaskListCompleted:
	default:
		h.BadRequest(c, "Unknown task filter")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tasks)
}

// ListBoardTasks handles GET /boards/:id/tasks
func (h *TaskHandler) ListBoardTasks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid board ID")
		return
	}

	tasks, err := h.taskService.ListBoardTasks(c.Request.Context(), boardID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tasks)
}

// GetByID handles GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	info, err := h.taskService.GetTask(c.Request.Context(), taskID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Update handles PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workspaceapp.UpdateTaskInput{
		TaskID:        taskID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Priority:      req.Priority,
		DueDate:       req.DueDate,
		ClearDueDate:  req.ClearDueDate,
		ClearAssignee: req.ClearAssignee,
		Position:      req.Position,
	}

	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			h.BadRequest(c, "Invalid assignee ID")
			return
		}
		input.AssigneeID = &assigneeID
	}
	if req.BoardID != nil {
		boardID, err := uuid.Parse(*req.BoardID)
		if err != nil {
			h.BadRequest(c, "Invalid board ID")
			return
		}
		input.BoardID = &boardID
	}

	info, err := h.taskService.UpdateTask(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
