package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

func TestOverviewService_Overview(t *testing.T) {
	userID := uuid.New()
	ownerID := uuid.New()
	projectID := uuid.New()
	now := time.Now()

	mkProject := func(title string, status workspace.ProjectStatus) *workspace.Project {
		p, err := workspace.NewProject(ownerID, title, "")
		require.NoError(t, err)
		p.Status = status
		return p
	}

	t.Run("aggregates counts, recent tasks and active projects", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		projectRepo := new(MockProjectRepository)
		svc := NewOverviewService(taskRepo, projectRepo, zap.NewNop())

		overdue := now.AddDate(0, 0, -3)
		tasks := []*workspace.TaskWithProject{
			withProject(mkTask(t, workspace.TaskStatusCompleted, workspace.TaskPriorityLow, now), projectID, "Alpha"),
			withProject(mkTask(t, workspace.TaskStatusToDo, workspace.TaskPriorityHigh, now), projectID, "Alpha"),
		}
		tasks[1].Task.DueDate = &overdue

		projects := []*workspace.Project{
			mkProject("Alpha", workspace.ProjectStatusInProgress),
			mkProject("Beta", workspace.ProjectStatusCompleted),
		}

		taskRepo.On("FindVisibleWithProject", mock.Anything, userID, mock.Anything).Return(tasks, nil)
		projectRepo.On("FindVisible", mock.Anything, userID, mock.Anything).Return(projects, int64(2), nil)

		result, err := svc.Overview(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Stats.TotalProjects)
		assert.Equal(t, 2, result.Stats.TotalTasks)
		assert.Equal(t, 1, result.Stats.CompletedTasks)
		assert.Equal(t, 1, result.Stats.OverdueTasks)

		require.Len(t, result.RecentTasks, 2)
		assert.Equal(t, "Alpha", result.RecentTasks[0].ProjectTitle)

		require.Len(t, result.ActiveProjects, 1)
		assert.Equal(t, "Alpha", result.ActiveProjects[0].Title)
	})

	t.Run("recent tasks are capped", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		projectRepo := new(MockProjectRepository)
		svc := NewOverviewService(taskRepo, projectRepo, zap.NewNop())

		tasks := make([]*workspace.TaskWithProject, 0, 8)
		for i := 0; i < 8; i++ {
			tasks = append(tasks, withProject(mkTask(t, workspace.TaskStatusToDo, workspace.TaskPriorityLow, now), projectID, "Alpha"))
		}

		taskRepo.On("FindVisibleWithProject", mock.Anything, userID, mock.Anything).Return(tasks, nil)
		projectRepo.On("FindVisible", mock.Anything, userID, mock.Anything).Return([]*workspace.Project{}, int64(0), nil)

		result, err := svc.Overview(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, result.RecentTasks, 5)
		assert.Equal(t, 8, result.Stats.TotalTasks)
	})

	t.Run("completed tasks never count as overdue", func(t *testing.T) {
		pastDue := now.AddDate(0, 0, -5)
		done := mkTask(t, workspace.TaskStatusCompleted, workspace.TaskPriorityLow, now)
		done.DueDate = &pastDue

		stats := overviewStats([]*workspace.TaskWithProject{withProject(done, projectID, "Alpha")}, 1, now)
		assert.Equal(t, 1, stats.CompletedTasks)
		assert.Equal(t, 0, stats.OverdueTasks)
	})
}
