package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	analyticsapp "github.com/taskflow/backend/internal/application/analytics"
)

// AnalyticsHandler handles workload analytics API endpoints
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Summary handles GET /analytics/summary?days=N
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			h.BadRequest(c, "days must be a positive integer")
			return
		}
	}

	result, err := h.analyticsService.Summary(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
