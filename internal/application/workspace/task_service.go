package workspace

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

// TaskListFilter names the in-memory task list filters
type TaskListFilter string

const (
	TaskListAll       TaskListFilter = "all"
	TaskListUpcoming  TaskListFilter = "upcoming"
	TaskListCompleted TaskListFilter = "completed"
)

// TaskService handles task operations
type TaskService struct {
	taskRepo    workspace.TaskRepository
	boardRepo   workspace.BoardRepository
	projectRepo workspace.ProjectRepository
	logger      *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo workspace.TaskRepository,
	boardRepo workspace.BoardRepository,
	projectRepo workspace.ProjectRepository,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		boardRepo:   boardRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateTask creates a task. When no board is given the project's
// lowest-position board is used; a project without boards fails with
// NO_BOARD_FOUND before any insert happens.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*TaskInfo, error) {
	if err := s.checkProjectAccess(ctx, input.ProjectID, input.CreatorID); err != nil {
		return nil, err
	}

	var boardID uuid.UUID

	if input.BoardID != nil {
		board, err := s.boardRepo.FindByID(ctx, *input.BoardID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("BOARD_NOT_FOUND", "Board not found")
			}
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load board")
		}
		if board.ProjectID != input.ProjectID {
			return nil, shared.NewDomainError("INVALID_BOARD_ID", "Board does not belong to the project")
		}
		boardID = board.ID
	} else {
		board, err := s.boardRepo.FindDefaultForProject(ctx, input.ProjectID)
		if err != nil {
			if errors.Is(err, shared.ErrNoBoardFound) {
				s.logger.Warn("Task creation with boardless project",
					zap.String("project_id", input.ProjectID.String()))
				return nil, shared.ErrNoBoardFound
			}
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve board")
		}
		boardID = board.ID
	}

	task, err := workspace.NewTask(boardID, input.CreatorID, input.Title)
	if err != nil {
		return nil, err
	}

	if input.Description != "" {
		task.SetDescription(input.Description)
	}
	if input.Status != "" {
		if err := task.SetStatus(workspace.TaskStatus(input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Priority != "" {
		if err := task.SetPriority(workspace.TaskPriority(input.Priority)); err != nil {
			return nil, err
		}
	}
	if input.DueDate != nil {
		task.SetDueDate(input.DueDate)
	}
	if input.AssigneeID != nil {
		task.Assign(input.AssigneeID)
	}

	maxPos, err := s.taskRepo.MaxPosition(ctx, boardID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve task position")
	}
	task.Position = maxPos + 1

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create task")
	}

	fresh, err := s.taskRepo.FindByID(ctx, task.ID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload task")
	}

	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("board_id", boardID.String()))

	info := toTaskInfo(fresh, time.Now())
	return &info, nil
}

// ListTasks returns the user's visible tasks with an in-memory list filter
// applied: upcoming keeps tasks due today or later, completed keeps tasks
// whose status is exactly Completed, all keeps everything.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, filter TaskListFilter) ([]TaskInfo, error) {
	tasks, err := s.taskRepo.FindVisible(ctx, userID, workspace.NewTaskFilter())
	if err != nil {
		s.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load tasks")
	}

	now := time.Now()
	filtered := FilterTasks(tasks, filter, now)

	infos := make([]TaskInfo, 0, len(filtered))
	for _, t := range filtered {
		infos = append(infos, toTaskInfo(t, now))
	}
	return infos, nil
}

// FilterTasks applies a list filter to an already-fetched task list
func FilterTasks(tasks []*workspace.Task, filter TaskListFilter, now time.Time) []*workspace.Task {
	switch filter {
	case TaskListUpcoming:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		out := make([]*workspace.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.DueDate != nil && !t.DueDate.Before(midnight) {
				out = append(out, t)
			}
		}
		return out
	case TaskListCompleted:
		out := make([]*workspace.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == workspace.TaskStatusCompleted {
				out = append(out, t)
			}
		}
		return out
	default:
		return tasks
	}
}

// ListBoardTasks returns a board's tasks ordered by position
func (s *TaskService) ListBoardTasks(ctx context.Context, boardID, userID uuid.UUID) ([]TaskInfo, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("BOARD_NOT_FOUND", "Board not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load board")
	}

	if err := s.checkProjectAccess(ctx, board.ProjectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		s.logger.Error("Failed to list board tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load tasks")
	}

	now := time.Now()
	infos := make([]TaskInfo, 0, len(tasks))
	for _, t := range tasks {
		infos = append(infos, toTaskInfo(t, now))
	}
	return infos, nil
}

// GetTask returns a task visible to the user
func (s *TaskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*TaskInfo, error) {
	task, err := s.loadVisibleTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	info := toTaskInfo(task, time.Now())
	return &info, nil
}

// UpdateTask applies the provided fields and returns the stored record.
// A failed update leaves the task untouched.
func (s *TaskService) UpdateTask(ctx context.Context, input UpdateTaskInput) (*TaskInfo, error) {
	task, err := s.loadVisibleTask(ctx, input.TaskID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := task.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		task.SetDescription(*input.Description)
	}
	if input.Status != nil {
		if err := task.SetStatus(workspace.TaskStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Priority != nil {
		if err := task.SetPriority(workspace.TaskPriority(*input.Priority)); err != nil {
			return nil, err
		}
	}
	if input.ClearDueDate {
		task.SetDueDate(nil)
	} else if input.DueDate != nil {
		task.SetDueDate(input.DueDate)
	}
	if input.ClearAssignee {
		task.Assign(nil)
	} else if input.AssigneeID != nil {
		task.Assign(input.AssigneeID)
	}
	if input.BoardID != nil {
		if *input.BoardID != task.BoardID {
			board, err := s.boardRepo.FindByID(ctx, *input.BoardID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewDomainError("BOARD_NOT_FOUND", "Board not found")
				}
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load board")
			}
			if err := s.checkProjectAccess(ctx, board.ProjectID, input.UserID); err != nil {
				return nil, err
			}
		}
		position := task.Position
		if input.Position != nil {
			position = *input.Position
		} else {
			maxPos, err := s.taskRepo.MaxPosition(ctx, *input.BoardID)
			if err != nil {
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve task position")
			}
			position = maxPos + 1
		}
		if err := task.MoveToBoard(*input.BoardID, position); err != nil {
			return nil, err
		}
	} else if input.Position != nil {
		if err := task.MoveToBoard(task.BoardID, *input.Position); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("Failed to update task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	fresh, err := s.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload task")
	}

	info := toTaskInfo(fresh, time.Now())
	return &info, nil
}

// DeleteTask removes a task. The creator and the project owner may delete.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("TASK_NOT_FOUND", "Task not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load task")
	}

	if task.CreatorID != userID {
		owner, err := s.isProjectOwnerOfBoard(ctx, task.BoardID, userID)
		if err != nil {
			return err
		}
		if !owner {
			return shared.ErrForbidden
		}
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		s.logger.Error("Failed to delete task", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete task")
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

// loadVisibleTask loads a task the user created, is assigned to, or owns via
// the board's project
func (s *TaskService) loadVisibleTask(ctx context.Context, taskID, userID uuid.UUID) (*workspace.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TASK_NOT_FOUND", "Task not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load task")
	}

	if task.CreatorID == userID {
		return task, nil
	}
	if task.AssigneeID != nil && *task.AssigneeID == userID {
		return task, nil
	}

	owner, err := s.isProjectOwnerOfBoard(ctx, task.BoardID, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, shared.ErrForbidden
	}

	return task, nil
}

func (s *TaskService) isProjectOwnerOfBoard(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return false, shared.NewDomainError("INTERNAL_ERROR", "Failed to load board")
	}
	project, err := s.projectRepo.FindByID(ctx, board.ProjectID)
	if err != nil {
		return false, shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}
	return project.IsOwnedBy(userID), nil
}

func (s *TaskService) checkProjectAccess(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}

	if project.IsOwnedBy(userID) {
		return nil
	}

	isMember, err := s.projectRepo.IsMember(ctx, projectID, userID)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to check project membership")
	}
	if !isMember {
		return shared.ErrForbidden
	}

	return nil
}
