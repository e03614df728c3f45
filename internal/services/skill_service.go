package services

import (
	"context"
	"fmt"
	"strings"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"
	"candidate-intake-api/internal/transport/dto"
)

// skillService implements the SkillService interface.
type skillService struct {
	repo storage.SkillRepository
}

// NewSkillService creates a new skill service instance.
func NewSkillService(repo storage.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, MapRepoError(err, "listing skills")
	}
	return skills, nil
}

func (s *skillService) Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: skill name is required", ErrValidation)
	}
	skill, err := s.repo.Create(ctx, name, req.CategoryID)
	if err != nil {
		return nil, MapRepoError(err, "creating skill")
	}
	return skill, nil
}

func (s *skillService) Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: skill name is required", ErrValidation)
	}
	skill, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, MapRepoError(err, "renaming skill")
	}
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting skill")
	}
	return nil
}
