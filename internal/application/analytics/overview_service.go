package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

const (
	recentTaskLimit    = 5
	activeProjectLimit = 5
)

// OverviewService assembles the dashboard landing payload: headline counts,
// the most recent tasks, and in-progress projects.
type OverviewService struct {
	taskRepo    workspace.TaskRepository
	projectRepo workspace.ProjectRepository
	logger      *zap.Logger
}

// NewOverviewService creates a new overview service
func NewOverviewService(
	taskRepo workspace.TaskRepository,
	projectRepo workspace.ProjectRepository,
	logger *zap.Logger,
) *OverviewService {
	return &OverviewService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Overview returns the user's dashboard summary
func (s *OverviewService) Overview(ctx context.Context, userID uuid.UUID) (*OverviewResult, error) {
	tasks, err := s.taskRepo.FindVisibleWithProject(ctx, userID, workspace.NewTaskFilter())
	if err != nil {
		s.logger.Error("Failed to load overview tasks",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load overview data")
	}

	projects, total, err := s.projectRepo.FindVisible(ctx, userID, workspace.NewProjectFilter())
	if err != nil {
		s.logger.Error("Failed to load overview projects",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load overview data")
	}

	now := time.Now()

	result := &OverviewResult{
		Stats:          overviewStats(tasks, int(total), now),
		RecentTasks:    recentTasks(tasks, now, recentTaskLimit),
		ActiveProjects: activeProjects(projects, activeProjectLimit),
	}
	return result, nil
}

func overviewStats(tasks []*workspace.TaskWithProject, totalProjects int, now time.Time) OverviewStats {
	stats := OverviewStats{
		TotalProjects: totalProjects,
		TotalTasks:    len(tasks),
	}
	for _, t := range tasks {
		if t.Task.Status == workspace.TaskStatusCompleted {
			stats.CompletedTasks++
			continue
		}
		due := workspace.ClassifyDueDate(t.Task.DueDate, now)
		if due.Category == workspace.DueOverdue {
			stats.OverdueTasks++
		}
	}
	return stats
}

// recentTasks assumes tasks arrive newest-first, the repository's default
// ordering.
func recentTasks(tasks []*workspace.TaskWithProject, now time.Time, limit int) []OverviewTask {
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	out := make([]OverviewTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, OverviewTask{
			ID:           t.Task.ID,
			Title:        t.Task.Title,
			Status:       string(workspace.ParseTaskStatus(string(t.Task.Status))),
			Priority:     string(workspace.ParseTaskPriority(string(t.Task.Priority))),
			Due:          workspace.ClassifyDueDate(t.Task.DueDate, now),
			ProjectTitle: t.ProjectTitle,
			CreatedAt:    t.Task.CreatedAt,
		})
	}
	return out
}

func activeProjects(projects []*workspace.Project, limit int) []OverviewProject {
	out := make([]OverviewProject, 0, limit)
	for _, p := range projects {
		if p.Status != workspace.ProjectStatusInProgress {
			continue
		}
		out = append(out, OverviewProject{
			ID:       p.ID,
			Title:    p.Title,
			Status:   string(p.Status),
			Deadline: p.Deadline,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}
