package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	analyticsapp "github.com/taskflow/backend/internal/application/analytics"
)

// CalendarHandler handles calendar API endpoints
type CalendarHandler struct {
	BaseHandler
	calendarService *analyticsapp.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService *analyticsapp.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// Month handles GET /calendar?month=YYYY-MM. Without a month parameter the
// current month is used.
func (h *CalendarHandler) Month(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	anchor := time.Now()
	if raw := c.Query("month"); raw != "" {
		anchor, err = time.Parse("2006-01", raw)
		if err != nil {
			h.BadRequest(c, "month must be in YYYY-MM format")
			return
		}
	}

	result, err := h.calendarService.Month(c.Request.Context(), userID, anchor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
