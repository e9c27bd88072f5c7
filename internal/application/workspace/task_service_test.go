package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

func newTestTaskService(taskRepo *MockTaskRepository, boardRepo *MockBoardRepository, projectRepo *MockProjectRepository) *TaskService {
	return NewTaskService(taskRepo, boardRepo, projectRepo, zap.NewNop())
}

func TestTaskService_CreateTask(t *testing.T) {
	creatorID := uuid.New()
	projectID := uuid.New()

	ownProject := func(t *testing.T) *workspace.Project {
		t.Helper()
		project, err := workspace.NewProject(creatorID, "Launch", "")
		require.NoError(t, err)
		project.ID = projectID
		return project
	}

	t.Run("assigns the lowest-position board", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		b1, err := workspace.NewBoard(projectID, "To Do", 0)
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, projectID).Return(ownProject(t), nil)
		boardRepo.On("FindDefaultForProject", mock.Anything, projectID).Return(b1, nil)
		taskRepo.On("MaxPosition", mock.Anything, b1.ID).Return(2, nil)
		taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *workspace.Task) bool {
			return task.BoardID == b1.ID && task.Position == 3
		})).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*workspace.Task)
			taskRepo.On("FindByID", mock.Anything, created.ID).Return(created, nil)
		})

		result, err := svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: projectID,
			Title:     "Write report",
		})

		require.NoError(t, err)
		assert.Equal(t, b1.ID, result.BoardID)
		assert.Equal(t, "To Do", result.Status)
		assert.Equal(t, "Medium", result.Priority)
	})

	t.Run("boardless project fails without insert", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		projectRepo.On("FindByID", mock.Anything, projectID).Return(ownProject(t), nil)
		boardRepo.On("FindDefaultForProject", mock.Anything, projectID).Return(nil, shared.ErrNoBoardFound)

		_, err := svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: projectID,
			Title:     "Write report",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NO_BOARD_FOUND", domainErr.Code)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid status rejected before insert", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		b1, err := workspace.NewBoard(projectID, "To Do", 0)
		require.NoError(t, err)
		projectRepo.On("FindByID", mock.Anything, projectID).Return(ownProject(t), nil)
		boardRepo.On("FindDefaultForProject", mock.Anything, projectID).Return(b1, nil)

		_, err = svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: projectID,
			Title:     "Write report",
			Status:    "Done-ish",
		})

		require.Error(t, err)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("explicit board is honored", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		b2, err := workspace.NewBoard(projectID, "In Progress", 1)
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, projectID).Return(ownProject(t), nil)
		boardRepo.On("FindByID", mock.Anything, b2.ID).Return(b2, nil)
		taskRepo.On("MaxPosition", mock.Anything, b2.ID).Return(-1, nil)
		taskRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*workspace.Task)
			taskRepo.On("FindByID", mock.Anything, created.ID).Return(created, nil)
		})

		result, err := svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: projectID,
			BoardID:   &b2.ID,
			Title:     "Write report",
		})

		require.NoError(t, err)
		assert.Equal(t, b2.ID, result.BoardID)
		assert.Equal(t, 0, result.Position)
		boardRepo.AssertNotCalled(t, "FindDefaultForProject", mock.Anything, mock.Anything)
	})

	t.Run("non-member may not create in a foreign project", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		foreign, err := workspace.NewProject(uuid.New(), "Not yours", "")
		require.NoError(t, err)
		projectRepo.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)
		projectRepo.On("IsMember", mock.Anything, foreign.ID, creatorID).Return(false, nil)

		_, err = svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: foreign.ID,
			Title:     "Sneak in",
		})

		require.ErrorIs(t, err, shared.ErrForbidden)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		boardRepo.AssertNotCalled(t, "FindDefaultForProject", mock.Anything, mock.Anything)
	})

	t.Run("member may create in a shared project", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		shared2, err := workspace.NewProject(uuid.New(), "Shared", "")
		require.NoError(t, err)
		board, err := workspace.NewBoard(shared2.ID, "To Do", 0)
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, shared2.ID).Return(shared2, nil)
		projectRepo.On("IsMember", mock.Anything, shared2.ID, creatorID).Return(true, nil)
		boardRepo.On("FindDefaultForProject", mock.Anything, shared2.ID).Return(board, nil)
		taskRepo.On("MaxPosition", mock.Anything, board.ID).Return(-1, nil)
		taskRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*workspace.Task)
			taskRepo.On("FindByID", mock.Anything, created.ID).Return(created, nil)
		})

		result, err := svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: shared2.ID,
			Title:     "Team task",
		})

		require.NoError(t, err)
		assert.Equal(t, board.ID, result.BoardID)
	})

	t.Run("explicit board from another project rejected", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		otherBoard, err := workspace.NewBoard(uuid.New(), "Elsewhere", 0)
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, projectID).Return(ownProject(t), nil)
		boardRepo.On("FindByID", mock.Anything, otherBoard.ID).Return(otherBoard, nil)

		_, err = svc.CreateTask(context.Background(), CreateTaskInput{
			CreatorID: creatorID,
			ProjectID: projectID,
			BoardID:   &otherBoard.ID,
			Title:     "Write report",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_BOARD_ID", domainErr.Code)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFilterTasks(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	boardID := uuid.New()
	creatorID := uuid.New()

	mk := func(title string, due *time.Time, status workspace.TaskStatus) *workspace.Task {
		task, err := workspace.NewTask(boardID, creatorID, title)
		require.NoError(t, err)
		task.DueDate = due
		task.Status = status
		return task
	}

	yesterday := now.AddDate(0, 0, -1)
	today := time.Date(2025, 3, 14, 0, 30, 0, 0, time.UTC)
	nextWeek := now.AddDate(0, 0, 7)

	tasks := []*workspace.Task{
		mk("overdue", &yesterday, workspace.TaskStatusToDo),
		mk("today", &today, workspace.TaskStatusInProgress),
		mk("later", &nextWeek, workspace.TaskStatusCompleted),
		mk("no due", nil, workspace.TaskStatusCompleted),
	}

	t.Run("all is identity", func(t *testing.T) {
		assert.Len(t, FilterTasks(tasks, TaskListAll, now), 4)
	})

	t.Run("upcoming keeps due today or later", func(t *testing.T) {
		filtered := FilterTasks(tasks, TaskListUpcoming, now)
		require.Len(t, filtered, 2)
		assert.Equal(t, "today", filtered[0].Title)
		assert.Equal(t, "later", filtered[1].Title)
	})

	t.Run("completed matches exact status", func(t *testing.T) {
		filtered := FilterTasks(tasks, TaskListCompleted, now)
		require.Len(t, filtered, 2)
		for _, task := range filtered {
			assert.Equal(t, workspace.TaskStatusCompleted, task.Status)
		}
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	creatorID := uuid.New()
	ownerID := uuid.New()
	stranger := uuid.New()
	projectID := uuid.New()

	setup := func() (*TaskService, *MockTaskRepository, *workspace.Task) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		board, err := workspace.NewBoard(projectID, "To Do", 0)
		require.NoError(t, err)
		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)
		project.ID = projectID
		task, err := workspace.NewTask(board.ID, creatorID, "Write report")
		require.NoError(t, err)

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)
		boardRepo.On("FindByID", mock.Anything, board.ID).Return(board, nil)
		projectRepo.On("FindByID", mock.Anything, projectID).Return(project, nil)

		return svc, taskRepo, task
	}

	t.Run("creator may delete", func(t *testing.T) {
		svc, taskRepo, task := setup()
		taskRepo.On("Delete", mock.Anything, task.ID).Return(nil)

		require.NoError(t, svc.DeleteTask(context.Background(), task.ID, creatorID))
		taskRepo.AssertCalled(t, "Delete", mock.Anything, task.ID)
	})

	t.Run("project owner may delete", func(t *testing.T) {
		svc, taskRepo, task := setup()
		taskRepo.On("Delete", mock.Anything, task.ID).Return(nil)

		require.NoError(t, svc.DeleteTask(context.Background(), task.ID, ownerID))
	})

	t.Run("stranger may not delete", func(t *testing.T) {
		svc, taskRepo, task := setup()

		err := svc.DeleteTask(context.Background(), task.ID, stranger)
		require.Error(t, err)
		taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("failed delete keeps the task", func(t *testing.T) {
		svc, taskRepo, task := setup()
		taskRepo.On("Delete", mock.Anything, task.ID).Return(shared.NewDomainError("INTERNAL_ERROR", "boom"))

		err := svc.DeleteTask(context.Background(), task.ID, creatorID)
		require.Error(t, err)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	creatorID := uuid.New()
	boardID := uuid.New()

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		task, err := workspace.NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)
		taskRepo.On("Update", mock.Anything, task).Return(nil)

		status := "Under Review"
		result, err := svc.UpdateTask(context.Background(), UpdateTaskInput{
			TaskID: task.ID,
			UserID: creatorID,
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, "Under Review", result.Status)
		assert.Equal(t, "Write report", result.Title)
		assert.Equal(t, "Medium", result.Priority)
	})

	t.Run("invalid priority leaves task unchanged", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		task, err := workspace.NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)

		priority := "Critical"
		_, err = svc.UpdateTask(context.Background(), UpdateTaskInput{
			TaskID:   task.ID,
			UserID:   creatorID,
			Priority: &priority,
		})

		require.Error(t, err)
		taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, workspace.TaskPriorityMedium, task.Priority)
	})

	t.Run("move to an accessible board", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		project, err := workspace.NewProject(creatorID, "Launch", "")
		require.NoError(t, err)
		target, err := workspace.NewBoard(project.ID, "In Progress", 1)
		require.NoError(t, err)
		task, err := workspace.NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)
		boardRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		taskRepo.On("MaxPosition", mock.Anything, target.ID).Return(4, nil)
		taskRepo.On("Update", mock.Anything, task).Return(nil)

		result, err := svc.UpdateTask(context.Background(), UpdateTaskInput{
			TaskID:  task.ID,
			UserID:  creatorID,
			BoardID: &target.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, target.ID, result.BoardID)
		assert.Equal(t, 5, result.Position)
	})

	t.Run("move to a foreign board rejected", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		foreign, err := workspace.NewProject(uuid.New(), "Not yours", "")
		require.NoError(t, err)
		target, err := workspace.NewBoard(foreign.ID, "Their lane", 0)
		require.NoError(t, err)
		task, err := workspace.NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)
		boardRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
		projectRepo.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)
		projectRepo.On("IsMember", mock.Anything, foreign.ID, creatorID).Return(false, nil)

		_, err = svc.UpdateTask(context.Background(), UpdateTaskInput{
			TaskID:  task.ID,
			UserID:  creatorID,
			BoardID: &target.ID,
		})

		require.ErrorIs(t, err, shared.ErrForbidden)
		taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, boardID, task.BoardID)
	})

	t.Run("move to a missing board rejected", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		boardRepo := new(MockBoardRepository)
		projectRepo := new(MockProjectRepository)
		svc := newTestTaskService(taskRepo, boardRepo, projectRepo)

		task, err := workspace.NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)
		missingID := uuid.New()

		taskRepo.On("FindByID", mock.Anything, task.ID).Return(task, nil)
		boardRepo.On("FindByID", mock.Anything, missingID).Return(nil, shared.ErrNotFound)

		_, err = svc.UpdateTask(context.Background(), UpdateTaskInput{
			TaskID:  task.ID,
			UserID:  creatorID,
			BoardID: &missingID,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BOARD_NOT_FOUND", domainErr.Code)
		taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
