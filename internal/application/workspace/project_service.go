package workspace

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

// ProjectService handles project and membership operations
type ProjectService struct {
	projectRepo workspace.ProjectRepository
	boardRepo   workspace.BoardRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo workspace.ProjectRepository,
	boardRepo workspace.BoardRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		boardRepo:   boardRepo,
		logger:      logger,
	}
}

// CreateProject creates a project and returns the stored record.
// Mutation and read-back are separate phases.
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*ProjectInfo, error) {
	project, err := workspace.NewProject(input.OwnerID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		if err := project.SetStatus(workspace.ProjectStatus(input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Deadline != nil {
		project.SetDeadline(input.Deadline)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}

	fresh, err := s.projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		s.logger.Error("Failed to reload project after create", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload project")
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", input.OwnerID.String()))

	info := toProjectInfo(fresh)
	return &info, nil
}

// ListProjects returns projects the user owns or is a member of
func (s *ProjectService) ListProjects(ctx context.Context, userID uuid.UUID, filter workspace.ProjectFilter) ([]ProjectInfo, int64, error) {
	projects, total, err := s.projectRepo.FindVisible(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to load projects")
	}

	infos := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		infos = append(infos, toProjectInfo(p))
	}
	return infos, total, nil
}

// GetProject returns a project the user owns or is a member of
func (s *ProjectService) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*ProjectInfo, error) {
	project, err := s.loadVisibleProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	info := toProjectInfo(project)
	return &info, nil
}

// UpdateProject applies the provided fields and returns the stored record
func (s *ProjectService) UpdateProject(ctx context.Context, input UpdateProjectInput) (*ProjectInfo, error) {
	project, err := s.loadVisibleProject(ctx, input.ProjectID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := project.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		project.SetDescription(*input.Description)
	}
	if input.Status != nil {
		if err := project.SetStatus(workspace.ProjectStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.ClearDeadline {
		project.SetDeadline(nil)
	} else if input.Deadline != nil {
		project.SetDeadline(input.Deadline)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	fresh, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload project")
	}

	info := toProjectInfo(fresh)
	return &info, nil
}

// DeleteProject removes a project. Only the owner may delete.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}

	if !project.IsOwnedBy(userID) {
		return shared.ErrForbidden
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete project")
	}

	s.logger.Info("Project deleted",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

// AddMember adds a user to a project. Only the owner may add members.
func (s *ProjectService) AddMember(ctx context.Context, input AddMemberInput) (*MemberInfo, error) {
	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}

	if !project.IsOwnedBy(input.ActorID) {
		return nil, shared.ErrForbidden
	}

	member, err := workspace.NewProjectMember(input.ProjectID, input.UserID, input.Role)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_MEMBER", "User is already a member of this project")
		}
		s.logger.Error("Failed to add project member", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add member")
	}

	info := toMemberInfo(member)
	return &info, nil
}

// RemoveMember removes a user from a project. Only the owner may remove members.
func (s *ProjectService) RemoveMember(ctx context.Context, projectID, actorID, userID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}

	if !project.IsOwnedBy(actorID) {
		return shared.ErrForbidden
	}

	if err := s.projectRepo.RemoveMember(ctx, projectID, userID); err != nil {
		s.logger.Error("Failed to remove project member", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove member")
	}

	return nil
}

// ListMembers returns a project's members, visible to owner and members
func (s *ProjectService) ListMembers(ctx context.Context, projectID, userID uuid.UUID) ([]MemberInfo, error) {
	if _, err := s.loadVisibleProject(ctx, projectID, userID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.FindMembers(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to list project members", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load members")
	}

	infos := make([]MemberInfo, 0, len(members))
	for _, m := range members {
		infos = append(infos, toMemberInfo(m))
	}
	return infos, nil
}

// loadVisibleProject loads a project the user owns or belongs to
func (s *ProjectService) loadVisibleProject(ctx context.Context, projectID, userID uuid.UUID) (*workspace.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}

	if project.IsOwnedBy(userID) {
		return project, nil
	}

	isMember, err := s.projectRepo.IsMember(ctx, projectID, userID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check project membership")
	}
	if !isMember {
		return nil, shared.ErrForbidden
	}

	return project, nil
}
