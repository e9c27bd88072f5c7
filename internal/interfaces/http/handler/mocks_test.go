package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/taskflow/backend/internal/domain/workspace"
)

// MockProjectRepository implements workspace.ProjectRepository for testing
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *workspace.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *workspace.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspace.Project), args.Error(1)
}

func (m *MockProjectRepository) FindVisible(ctx context.Context, userID uuid.UUID, filter workspace.ProjectFilter) ([]*workspace.Project, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*workspace.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) AddMember(ctx context.Context, member *workspace.ProjectMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *MockProjectRepository) FindMembers(ctx context.Context, projectID uuid.UUID) ([]*workspace.ProjectMember, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workspace.ProjectMember), args.Error(1)
}

func (m *MockProjectRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

// MockBoardRepository implements workspace.BoardRepository for testing
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *workspace.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *workspace.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspace.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*workspace.Board, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workspace.Board), args.Error(1)
}

func (m *MockBoardRepository) FindDefaultForProject(ctx context.Context, projectID uuid.UUID) (*workspace.Board, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspace.Board), args.Error(1)
}

func (m *MockBoardRepository) MaxPosition(ctx context.Context, projectID uuid.UUID) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// MockTaskRepository implements workspace.TaskRepository for testing
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *workspace.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *workspace.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspace.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*workspace.Task, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workspace.Task), args.Error(1)
}

func (m *MockTaskRepository) FindVisible(ctx context.Context, userID uuid.UUID, filter workspace.TaskFilter) ([]*workspace.Task, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workspace.Task), args.Error(1)
}

func (m *MockTaskRepository) FindVisibleWithProject(ctx context.Context, userID uuid.UUID, filter workspace.TaskFilter) ([]*workspace.TaskWithProject, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workspace.TaskWithProject), args.Error(1)
}

func (m *MockTaskRepository) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}
