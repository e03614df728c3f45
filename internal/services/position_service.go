package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"
	"candidate-intake-api/internal/transport/dto"
)

// positionService implements the PositionService interface.
type positionService struct {
	repo storage.PositionRepository
}

// NewPositionService creates a new position service instance.
func NewPositionService(repo storage.PositionRepository) PositionService {
	return &positionService{repo: repo}
}

func (s *positionService) List(ctx context.Context) ([]models.Position, error) {
	positions, err := s.repo.List(ctx)
	if err != nil {
		return nil, MapRepoError(err, "listing positions")
	}
	return positions, nil
}

func (s *positionService) Create(ctx context.Context, req *dto.CreateReferenceItemRequest) (*models.Position, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: position name is required", ErrValidation)
	}
	position, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, MapRepoError(err, "creating position")
	}
	return position, nil
}

func (s *positionService) Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.Position, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: position name is required", ErrValidation)
	}
	position, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, MapRepoError(err, "renaming position")
	}
	return position, nil
}

// Delete removes a position. Remaining rows keep their display_order values;
// ordering stays correct because only relative order matters.
func (s *positionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting position")
	}
	return nil
}

// MoveUp swaps the position's display_order with its closest predecessor.
// Moving the first item is a no-op. The swap is two sequential updates, not a
// transaction; a crash between them can leave the orders half-swapped, which
// a second move repairs.
func (s *positionService) MoveUp(ctx context.Context, id int64) error {
	position, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "moving position up")
	}
	prev, err := s.repo.FindPrevByOrder(ctx, position.DisplayOrder)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "moving position up")
	}
	if err := s.repo.UpdateOrder(ctx, prev.ID, position.DisplayOrder); err != nil {
		return MapRepoError(err, "moving position up")
	}
	if err := s.repo.UpdateOrder(ctx, position.ID, prev.DisplayOrder); err != nil {
		return MapRepoError(err, "moving position up")
	}
	return nil
}

// MoveDown mirrors MoveUp against the closest successor. Moving the last
// item is a no-op.
func (s *positionService) MoveDown(ctx context.Context, id int64) error {
	position, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "moving position down")
	}
	next, err := s.repo.FindNextByOrder(ctx, position.DisplayOrder)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "moving position down")
	}
	if err := s.repo.UpdateOrder(ctx, next.ID, position.DisplayOrder); err != nil {
		return MapRepoError(err, "moving position down")
	}
	if err := s.repo.UpdateOrder(ctx, position.ID, next.DisplayOrder); err != nil {
		return MapRepoError(err, "moving position down")
	}
	return nil
}
