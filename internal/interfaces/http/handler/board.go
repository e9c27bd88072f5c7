package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	workspaceapp "github.com/taskflow/backend/internal/application/workspace"
)

// BoardHandler handles board API endpoints
type BoardHandler struct {
	BaseHandler
	boardService *workspaceapp.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService *workspaceapp.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoardRequest represents a request to create a board
type CreateBoardRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
}

// Create handles POST /projects/:id/boards. New boards append after the
// project's highest position.
func (h *BoardHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.boardService.CreateBoard(c.Request.Context(), workspaceapp.CreateBoardInput{
		ProjectID: projectID,
		UserID:    userID,
		Title:     req.Title,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// List handles GET /projects/:id/boards
func (h *BoardHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), projectID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, boards)
}

// Delete handles DELETE /boards/:id
func (h *BoardHandler) Delete(c *gin.Context) {
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

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
