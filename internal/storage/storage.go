package storage

import (
	"context"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/wizard"
)

// PositionRepository defines data operations on the positions reference table.
type PositionRepository interface {
	List(ctx context.Context) ([]models.Position, error)
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	Create(ctx context.Context, name string) (*models.Position, error)
	Rename(ctx context.Context, id int64, name string) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
	// FindPrevByOrder returns the row with the greatest display_order
	// strictly less than the given order, or ErrNotFound when the item is
	// already first. FindNextByOrder is symmetric.
	FindPrevByOrder(ctx context.Context, order int) (*models.Position, error)
	FindNextByOrder(ctx context.Context, order int) (*models.Position, error)
	UpdateOrder(ctx context.Context, id int64, order int) error
}

// SkillCategoryRepository mirrors PositionRepository for skill categories.
type SkillCategoryRepository interface {
	List(ctx context.Context) ([]models.SkillCategory, error)
	GetByID(ctx context.Context, id int64) (*models.SkillCategory, error)
	Create(ctx context.Context, name string) (*models.SkillCategory, error)
	Rename(ctx context.Context, id int64, name string) (*models.SkillCategory, error)
	Delete(ctx context.Context, id int64) error
	FindPrevByOrder(ctx context.Context, order int) (*models.SkillCategory, error)
	FindNextByOrder(ctx context.Context, order int) (*models.SkillCategory, error)
	UpdateOrder(ctx context.Context, id int64, order int) error
}

// SkillRepository defines data operations on skills. Skills carry no display
// order; List returns them sorted by name with the category name joined in.
type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, name string, categoryID int64) (*models.Skill, error)
	Rename(ctx context.Context, id int64, name string) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
	// ExistingNames filters the given names down to those present in the
	// skills table, preserving input order.
	ExistingNames(ctx context.Context, names []string) ([]string, error)
}

// CandidateRepository covers the four insert statements of the submission
// sequence. Each insert is an independent statement; the saga in the service
// layer sequences them and owns the failure semantics.
type CandidateRepository interface {
	Insert(ctx context.Context, c *models.Candidate) (*models.Candidate, error)
	InsertShifts(ctx context.Context, s *models.CandidateShifts) error
	InsertAvailability(ctx context.Context, a *models.CandidateAvailability) error
	InsertExperience(ctx context.Context, e *models.CandidateExperience) error
}

// DraftStore persists in-progress questionnaire drafts keyed by session id.
type DraftStore interface {
	Create(ctx context.Context, d *wizard.Draft) error
	Get(ctx context.Context, sessionID string) (*wizard.Draft, error)
	Save(ctx context.Context, d *wizard.Draft) error
	Delete(ctx context.Context, sessionID string) error
}
