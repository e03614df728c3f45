package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SkillRepo implements storage.SkillRepository using PostgreSQL.
type SkillRepo struct {
	db Querier
}

// NewSkillRepo creates a new SkillRepo.
func NewSkillRepo(db *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{db: db}
}

var _ storage.SkillRepository = (*SkillRepo)(nil)

// List returns all skills sorted by name with their category name joined in.
func (r *SkillRepo) List(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT s.id, s.name, s.category_id, c.name AS category_name, s.created_at
		FROM skills s
		JOIN skill_categories c ON c.id = s.category_id
		ORDER BY s.name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying skills: %v\n", err)
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Skill])
	if err != nil {
		log.Printf("Error scanning skills: %v\n", err)
		return nil, fmt.Errorf("failed to scan skills: %w", err)
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// Create inserts a skill under an existing category. A missing category
// surfaces as ErrConflict via the foreign key violation.
func (r *SkillRepo) Create(ctx context.Context, name string, categoryID int64) (*models.Skill, error) {
	query := `
		INSERT INTO skills (name, category_id)
		VALUES ($1, $2)
		RETURNING id, name, category_id, created_at`
	var s models.Skill
	err := r.db.QueryRow(ctx, query, name, categoryID).Scan(&s.ID, &s.Name, &s.CategoryID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error creating skill %q: unknown category %d\n", name, categoryID)
			return nil, fmt.Errorf("failed to create skill: invalid category: %w", storage.ErrConflict)
		}
		log.Printf("Error creating skill %q: %v\n", name, err)
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &s, nil
}

// Rename updates a skill's display name.
func (r *SkillRepo) Rename(ctx context.Context, id int64, name string) (*models.Skill, error) {
	query := `UPDATE skills SET name = $2 WHERE id = $1 RETURNING id, name, category_id, created_at`
	var s models.Skill
	err := r.db.QueryRow(ctx, query, id, name).Scan(&s.ID, &s.Name, &s.CategoryID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error renaming skill %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to rename skill %d: %w", id, err)
	}
	return &s, nil
}

// Delete removes a skill.
func (r *SkillRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting skill %d: %v\n", id, err)
		return fmt.Errorf("failed to delete skill %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ExistingNames returns the subset of names that exist in the skills table,
// preserving the caller's order. Used to enforce that a candidate's skill
// slots reference real skills.
func (r *SkillRepo) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT name FROM skills WHERE name = ANY($1)`, names)
	if err != nil {
		log.Printf("Error querying skill names: %v\n", err)
		return nil, fmt.Errorf("failed to query skill names: %w", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(names))
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan skill name: %w", err)
		}
		found[n] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill names: %w", err)
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if found[n] {
			out = append(out, n)
		}
	}
	return out, nil
}
