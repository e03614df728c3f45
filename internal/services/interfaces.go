package services

import (
	"context"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/transport/dto"
	"candidate-intake-api/internal/wizard"
)

// PositionService defines the interface for position dashboard logic.
type PositionService interface {
	List(ctx context.Context) ([]models.Position, error)
	Create(ctx context.Context, req *dto.CreateReferenceItemRequest) (*models.Position, error)
	Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
	MoveUp(ctx context.Context, id int64) error
	MoveDown(ctx context.Context, id int64) error
}

// SkillCategoryService defines the interface for skill category dashboard logic.
type SkillCategoryService interface {
	List(ctx context.Context) ([]models.SkillCategory, error)
	Create(ctx context.Context, req *dto.CreateReferenceItemRequest) (*models.SkillCategory, error)
	Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.SkillCategory, error)
	Delete(ctx context.Context, id int64) error
	MoveUp(ctx context.Context, id int64) error
	MoveDown(ctx context.Context, id int64) error
}

// SkillService defines the interface for skill dashboard logic.
type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error)
	Rename(ctx context.Context, id int64, req *dto.RenameReferenceItemRequest) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionnaireService defines the interface for draft sessions and the final
// multi-table submission.
type QuestionnaireService interface {
	CreateSession(ctx context.Context) (*wizard.Draft, error)
	GetSession(ctx context.Context, sessionID string) (*wizard.Draft, error)
	UpdateSession(ctx context.Context, sessionID string, upd *wizard.Update) (*wizard.Draft, error)
	Next(ctx context.Context, sessionID string) (*wizard.Draft, []wizard.FieldError, error)
	Back(ctx context.Context, sessionID string) (*wizard.Draft, error)
	SelectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error)
	DeselectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error)
	AddInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error)
	RemoveInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error)
	Submit(ctx context.Context, sessionID string) (*models.Candidate, error)
}
