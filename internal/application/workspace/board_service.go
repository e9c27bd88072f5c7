package workspace

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/domain/workspace"
	"go.uber.org/zap"
)

// BoardService handles board operations within a project
type BoardService struct {
	boardRepo   workspace.BoardRepository
	projectRepo workspace.ProjectRepository
	logger      *zap.Logger
}

// NewBoardService creates a new board service
func NewBoardService(
	boardRepo workspace.BoardRepository,
	projectRepo workspace.ProjectRepository,
	logger *zap.Logger,
) *BoardService {
	return &BoardService{
		boardRepo:   boardRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateBoard appends a board at the end of the project's board order
func (s *BoardService) CreateBoard(ctx context.Context, input CreateBoardInput) (*BoardInfo, error) {
	if err := s.checkProjectAccess(ctx, input.ProjectID, input.UserID); err != nil {
		return nil, err
	}

	maxPos, err := s.boardRepo.MaxPosition(ctx, input.ProjectID)
	if err != nil {
		s.logger.Error("Failed to resolve board position", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create board")
	}

	board, err := workspace.NewBoard(input.ProjectID, input.Title, maxPos+1)
	if err != nil {
		return nil, err
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		s.logger.Error("Failed to create board", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create board")
	}

	fresh, err := s.boardRepo.FindByID(ctx, board.ID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reload board")
	}

	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("project_id", input.ProjectID.String()))

	info := toBoardInfo(fresh)
	return &info, nil
}

// ListBoards returns a project's boards ordered by position
func (s *BoardService) ListBoards(ctx context.Context, projectID, userID uuid.UUID) ([]BoardInfo, error) {
	if err := s.checkProjectAccess(ctx, projectID, userID); err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to list boards", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load boards")
	}

	infos := make([]BoardInfo, 0, len(boards))
	for _, b := range boards {
		infos = append(infos, toBoardInfo(b))
	}
	return infos, nil
}

// DeleteBoard removes a board and its tasks. Only the project owner may delete.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("BOARD_NOT_FOUND", "Board not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load board")
	}

	project, err := s.projectRepo.FindByID(ctx, board.ProjectID)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}
	if !project.IsOwnedBy(userID) {
		return shared.ErrForbidden
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		s.logger.Error("Failed to delete board", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete board")
	}

	return nil
}

// checkProjectAccess verifies the user owns or belongs to the project
func (s *BoardService) checkProjectAccess(ctx context.Context, projectID, userID uuid.UUID) error {
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
