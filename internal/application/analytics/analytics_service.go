package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

const (
	// Histogram fallback labels for tasks whose status or priority reads
	// back as unspecified.
	noStatusLabel   = "No Status"
	noPriorityLabel = "No Priority"

	dayFormat = "2006-01-02"

	DefaultSummaryDays = 30
	MaxSummaryDays     = 365
)

// AnalyticsService derives display-ready aggregates from the user's task
// list. All aggregation is pure given the fetched input; only the fetch
// touches the repository.
type AnalyticsService struct {
	taskRepo workspace.TaskRepository
	logger   *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(taskRepo workspace.TaskRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Summary fetches the user's tasks created in the last `days` days and
// returns all analytics aggregates over that window.
func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID, days int) (*SummaryResult, error) {
	if days <= 0 {
		days = DefaultSummaryDays
	}
	if days > MaxSummaryDays {
		days = MaxSummaryDays
	}

	now := time.Now().UTC()
	end := now
	start := truncateToUTCDay(now).AddDate(0, 0, -(days - 1))

	filter := workspace.NewTaskFilter().
		WithCreatedWindow(start, end).
		WithSorting("created_at", "asc")

	tasks, err := s.taskRepo.FindVisibleWithProject(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to load tasks for analytics",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load analytics data")
	}

	return &SummaryResult{
		Days:            days,
		ByStatus:        TasksByStatus(tasks),
		ByPriority:      TasksByPriority(tasks),
		ProjectProgress: ProjectProgress(tasks),
		DailyTrend:      DailyTrend(tasks, start, end),
		TotalTasks:      len(tasks),
	}, nil
}

// TasksByStatus groups tasks by status into {name,value} pairs. Bucket
// order is the insertion order of first occurrence; unspecified statuses
// fall back to "No Status".
func TasksByStatus(tasks []*workspace.TaskWithProject) []NamePoint {
	return histogram(tasks, func(t *workspace.Task) string {
		status := workspace.ParseTaskStatus(string(t.Status))
		if status == workspace.TaskStatusUnspecified {
			return noStatusLabel
		}
		return string(status)
	})
}

// TasksByPriority groups tasks by priority into {name,value} pairs with
// "No Priority" as the unspecified fallback.
func TasksByPriority(tasks []*workspace.TaskWithProject) []NamePoint {
	return histogram(tasks, func(t *workspace.Task) string {
		priority := workspace.ParseTaskPriority(string(t.Priority))
		if priority == workspace.TaskPriorityUnspecified {
			return noPriorityLabel
		}
		return string(priority)
	})
}

func histogram(tasks []*workspace.TaskWithProject, key func(*workspace.Task) string) []NamePoint {
	index := make(map[string]int)
	points := make([]NamePoint, 0)
	for _, t := range tasks {
		name := key(t.Task)
		i, seen := index[name]
		if !seen {
			index[name] = len(points)
			points = append(points, NamePoint{Name: name})
			i = len(points) - 1
		}
		points[i].Value++
	}
	return points
}

// ProjectProgress groups tasks by owning project and computes each
// project's completion percentage. Only "Completed" counts as done.
func ProjectProgress(tasks []*workspace.TaskWithProject) []ProjectProgressInfo {
	index := make(map[uuid.UUID]int)
	infos := make([]ProjectProgressInfo, 0)

	for _, t := range tasks {
		i, seen := index[t.ProjectID]
		if !seen {
			index[t.ProjectID] = len(infos)
			infos = append(infos, ProjectProgressInfo{
				ProjectID: t.ProjectID,
				Title:     t.ProjectTitle,
			})
			i = len(infos) - 1
		}
		infos[i].Total++
		if t.Task.Status == workspace.TaskStatusCompleted {
			infos[i].Completed++
		}
	}

	for i := range infos {
		total := infos[i].Total
		if total < 1 {
			total = 1
		}
		infos[i].Progress = int(math.Round(float64(infos[i].Completed) / float64(total) * 100))
	}
	return infos
}

// DailyTrend buckets task creation counts per UTC day over [start,end]
// inclusive. Every day in the window appears, seeded at zero, sorted
// ascending by date string.
func DailyTrend(tasks []*workspace.TaskWithProject, start, end time.Time) []TrendPoint {
	counts := make(map[string]int)

	first := truncateToUTCDay(start)
	last := truncateToUTCDay(end)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		counts[day.Format(dayFormat)] = 0
	}

	for _, t := range tasks {
		key := t.Task.CreatedAt.UTC().Format(dayFormat)
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}

	points := make([]TrendPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, TrendPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func truncateToUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
