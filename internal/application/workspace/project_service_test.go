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

func newTestProjectService(projectRepo *MockProjectRepository, boardRepo *MockBoardRepository) *ProjectService {
	return NewProjectService(projectRepo, boardRepo, zap.NewNop())
}

func TestProjectService_CreateProject(t *testing.T) {
	ownerID := uuid.New()

	t.Run("new project starts as Not Started", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		projectRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*workspace.Project)
			projectRepo.On("FindByID", mock.Anything, created.ID).Return(created, nil)
		})

		result, err := svc.CreateProject(context.Background(), CreateProjectInput{
			OwnerID: ownerID,
			Title:   "Website Redesign",
		})

		require.NoError(t, err)
		assert.Equal(t, "Not Started", result.Status)
		assert.Equal(t, ownerID, result.OwnerID)
		assert.Nil(t, result.Deadline)
	})

	t.Run("invalid status rejected before insert", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		_, err := svc.CreateProject(context.Background(), CreateProjectInput{
			OwnerID: ownerID,
			Title:   "Website Redesign",
			Status:  "Archived",
		})

		require.Error(t, err)
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		_, err := svc.CreateProject(context.Background(), CreateProjectInput{
			OwnerID: ownerID,
			Title:   "   ",
		})

		require.Error(t, err)
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	ownerID := uuid.New()

	t.Run("clears deadline when requested", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)
		deadline := time.Now().AddDate(0, 1, 0)
		project.SetDeadline(&deadline)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("Update", mock.Anything, project).Return(nil)

		result, err := svc.UpdateProject(context.Background(), UpdateProjectInput{
			ProjectID:     project.ID,
			UserID:        ownerID,
			ClearDeadline: true,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Deadline)
	})

	t.Run("member may update", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		memberID := uuid.New()
		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("IsMember", mock.Anything, project.ID, memberID).Return(true, nil)
		projectRepo.On("Update", mock.Anything, project).Return(nil)

		status := "In Progress"
		result, err := svc.UpdateProject(context.Background(), UpdateProjectInput{
			ProjectID: project.ID,
			UserID:    memberID,
			Status:    &status,
		})

		require.NoError(t, err)
		assert.Equal(t, "In Progress", result.Status)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)
		outsider := uuid.New()

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("IsMember", mock.Anything, project.ID, outsider).Return(false, nil)

		title := "Hijacked"
		_, err = svc.UpdateProject(context.Background(), UpdateProjectInput{
			ProjectID: project.ID,
			UserID:    outsider,
			Title:     &title,
		})

		require.ErrorIs(t, err, shared.ErrForbidden)
		projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	ownerID := uuid.New()

	t.Run("owner may delete", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("Delete", mock.Anything, project.ID).Return(nil)

		require.NoError(t, svc.DeleteProject(context.Background(), project.ID, ownerID))
	})

	t.Run("member may not delete", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)
		memberID := uuid.New()

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

		err = svc.DeleteProject(context.Background(), project.ID, memberID)
		require.ErrorIs(t, err, shared.ErrForbidden)
		projectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Members(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()

	t.Run("owner adds member with default role", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("AddMember", mock.Anything, mock.MatchedBy(func(m *workspace.ProjectMember) bool {
			return m.UserID == memberID && m.Role == workspace.DefaultMemberRole
		})).Return(nil)

		result, err := svc.AddMember(context.Background(), AddMemberInput{
			ProjectID: project.ID,
			ActorID:   ownerID,
			UserID:    memberID,
		})

		require.NoError(t, err)
		assert.Equal(t, "member", result.Role)
	})

	t.Run("duplicate member reported as ALREADY_MEMBER", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		projectRepo.On("AddMember", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err = svc.AddMember(context.Background(), AddMemberInput{
			ProjectID: project.ID,
			ActorID:   ownerID,
			UserID:    memberID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_MEMBER", domainErr.Code)
	})

	t.Run("non-owner may not add members", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		boardRepo := new(MockBoardRepository)
		svc := newTestProjectService(projectRepo, boardRepo)

		project, err := workspace.NewProject(ownerID, "Launch", "")
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

		_, err = svc.AddMember(context.Background(), AddMemberInput{
			ProjectID: project.ID,
			ActorID:   memberID,
			UserID:    uuid.New(),
		})

		require.ErrorIs(t, err, shared.ErrForbidden)
		projectRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})
}
