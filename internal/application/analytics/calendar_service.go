package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

// CalendarService buckets the user's due tasks by calendar day
type CalendarService struct {
	taskRepo workspace.TaskRepository
	logger   *zap.Logger
}

// NewCalendarService creates a new calendar service
func NewCalendarService(taskRepo workspace.TaskRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Month returns every day of the anchor's month annotated with the tasks
// due on it. Anchor can be any instant inside the month.
func (s *CalendarService) Month(ctx context.Context, userID uuid.UUID, anchor time.Time) (*CalendarResult, error) {
	startOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	filter := workspace.NewTaskFilter().
		WithDueWindow(startOfMonth, endOfMonth).
		WithSorting("due_date", "asc")

	tasks, err := s.taskRepo.FindVisibleWithProject(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to load calendar tasks",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load calendar data")
	}

	days := make([]CalendarDay, 0, 31)
	for day := startOfMonth; day.Month() == startOfMonth.Month(); day = day.AddDate(0, 0, 1) {
		onDay := TasksOnDay(tasks, day)
		days = append(days, CalendarDay{
			Date:  day.Format(dayFormat),
			Busy:  len(onDay) > 0,
			Tasks: toCalendarTasks(onDay),
		})
	}

	return &CalendarResult{
		Month: startOfMonth.Format("2006-01"),
		Days:  days,
	}, nil
}

// TasksOnDay returns the tasks whose due date falls on the given calendar
// day. Same-day comparison, not same-month.
func TasksOnDay(tasks []*workspace.TaskWithProject, day time.Time) []*workspace.TaskWithProject {
	out := make([]*workspace.TaskWithProject, 0)
	for _, t := range tasks {
		if t.Task.DueDate == nil {
			continue
		}
		if workspace.SameCalendarDay(*t.Task.DueDate, day) {
			out = append(out, t)
		}
	}
	return out
}

// IsBusyDay reports whether any task is due on the given calendar day
func IsBusyDay(tasks []*workspace.TaskWithProject, day time.Time) bool {
	for _, t := range tasks {
		if t.Task.DueDate != nil && workspace.SameCalendarDay(*t.Task.DueDate, day) {
			return true
		}
	}
	return false
}

func toCalendarTasks(tasks []*workspace.TaskWithProject) []CalendarTask {
	out := make([]CalendarTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, CalendarTask{
			ID:           t.Task.ID,
			Title:        t.Task.Title,
			Status:       string(workspace.ParseTaskStatus(string(t.Task.Status))),
			Priority:     string(workspace.ParseTaskPriority(string(t.Task.Priority))),
			DueDate:      t.Task.DueDate,
			ProjectID:    t.ProjectID,
			ProjectTitle: t.ProjectTitle,
		})
	}
	return out
}
