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

// skillCategoryService implements the SkillCategoryService interface.
type skillCategoryService struct {
	repo storage.SkillCategoryRepository
}

// NewSkillCategoryService creates a new skill category service instance.
func NewSkillCategoryService(repo storage.SkillCategoryRepository) SkillCategoryService {
	return &skillCategoryService{repo: repo}
}

func (s *skillCategoryService) List(ctx context.Context) ([]models.SkillCategory, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, MapRepoError(err, "listing skill categories")
	}
	return categories, nil
}

func (s *skillCategoryService) Create(ctx context.Context, req *dto.CreateReferenceItemRequest) (*models.SkillCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	category, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, MapRepoError(err, "creating skill category")
	}
	return category, nil
}

func (s *skillCategoryService) Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.SkillCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	category, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, MapRepoError(err, "renaming skill category")
	}
	return category, nil
}

// Delete removes a category and, through the schema's cascade, every skill
// under it.
func (s *skillCategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting skill category")
	}
	return nil
}

// MoveUp swaps display_order with the closest predecessor; first item is a
// no-op.
func (s *skillCategoryService) MoveUp(ctx context.Context, id int64) error {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "moving skill category up")
	}
	prev, err := s.repo.FindPrevByOrder(ctx, category.DisplayOrder)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "moving skill category up")
	}
	if err := s.repo.UpdateOrder(ctx, prev.ID, category.DisplayOrder); err != nil {
		return MapRepoError(err, "moving skill category up")
	}
	if err := s.repo.UpdateOrder(ctx, category.ID, prev.DisplayOrder); err != nil {
		return MapRepoError(err, "moving skill category up")
	}
	return nil
}

// MoveDown swaps display_order with the closest successor; last item is a
// no-op.
func (s *skillCategoryService) MoveDown(ctx context.Context, id int64) error {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MapRepoError(err, "moving skill category down")
	}
	next, err := s.repo.FindNextByOrder(ctx, category.DisplayOrder)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "moving skill category down")
	}
	if err := s.repo.UpdateOrder(ctx, next.ID, category.DisplayOrder); err != nil {
		return MapRepoError(err, "moving skill category down")
	}
	if err := s.repo.UpdateOrder(ctx, category.ID, next.DisplayOrder); err != nil {
		return MapRepoError(err, "moving skill category down")
	}
	return nil
}
