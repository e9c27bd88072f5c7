package handler

import (
	"github.com/gin-gonic/gin"
	analyticsapp "github.com/taskflow/backend/internal/application/analytics"
)

// OverviewHandler handles the dashboard overview endpoint
type OverviewHandler struct {
	BaseHandler
	overviewService *analyticsapp.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(overviewService *analyticsapp.OverviewService) *OverviewHandler {
	return &OverviewHandler{
		overviewService: overviewService,
	}
}

// Overview handles GET /overview
func (h *OverviewHandler) Overview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.overviewService.Overview(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
