package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/workspace"
)

// NamePoint is a single histogram bucket
type NamePoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProjectProgressInfo is one project's completion ratio over the summary window
type ProjectProgressInfo struct {
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Progress  int       `json:"progress"`
}

// TrendPoint is one day's task creation count. Date is a UTC "YYYY-MM-DD" string.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SummaryResult is the full analytics payload for a date window
type SummaryResult struct {
	Days            int                   `json:"days"`
	ByStatus        []NamePoint           `json:"by_status"`
	ByPriority      []NamePoint           `json:"by_priority"`
	ProjectProgress []ProjectProgressInfo `json:"project_progress"`
	DailyTrend      []TrendPoint          `json:"daily_trend"`
	TotalTasks      int                   `json:"total_tasks"`
}

// CalendarTask is the task representation inside a calendar payload
type CalendarTask struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ProjectID    uuid.UUID  `json:"project_id"`
	ProjectTitle string     `json:"project_title"`
}

// CalendarDay annotates one day of the visible month
type CalendarDay struct {
	Date  string         `json:"date"`
	Busy  bool           `json:"busy"`
	Tasks []CalendarTask `json:"tasks"`
}

// CalendarResult is one month's worth of due tasks bucketed by day
type CalendarResult struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// OverviewStats holds the dashboard headline counts
type OverviewStats struct {
	TotalProjects  int `json:"total_projects"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}

// OverviewTask is a task row on the dashboard landing view
type OverviewTask struct {
	ID           uuid.UUID                   `json:"id"`
	Title        string                      `json:"title"`
	Status       string                      `json:"status"`
	Priority     string                      `json:"priority"`
	Due          workspace.DueClassification `json:"due"`
	ProjectTitle string                      `json:"project_title"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// OverviewProject is a project row on the dashboard landing view
type OverviewProject struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// OverviewResult is the dashboard landing payload
type OverviewResult struct {
	Stats          OverviewStats     `json:"stats"`
	RecentTasks    []OverviewTask    `json:"recent_tasks"`
	ActiveProjects []OverviewProject `json:"active_projects"`
}
