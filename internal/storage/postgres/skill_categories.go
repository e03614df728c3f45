package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SkillCategoryRepo implements storage.SkillCategoryRepository using
// PostgreSQL. It mirrors PositionRepo; the two tables share their shape and
// their ordering contract.
type SkillCategoryRepo struct {
	db Querier
}

// NewSkillCategoryRepo creates a new SkillCategoryRepo.
func NewSkillCategoryRepo(db *pgxpool.Pool) *SkillCategoryRepo {
	return &SkillCategoryRepo{db: db}
}

var _ storage.SkillCategoryRepository = (*SkillCategoryRepo)(nil)

const skillCategoryColumns = "id, name, display_order, created_at"

func scanSkillCategory(row pgx.Row) (*models.SkillCategory, error) {
	var c models.SkillCategory
	err := row.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all skill categories ordered by display_order.
func (r *SkillCategoryRepo) List(ctx context.Context) ([]models.SkillCategory, error) {
	query := `SELECT ` + skillCategoryColumns + ` FROM skill_categories ORDER BY display_order`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying skill categories: %v\n", err)
		return nil, fmt.Errorf("failed to query skill categories: %w", err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SkillCategory])
	if err != nil {
		log.Printf("Error scanning skill categories: %v\n", err)
		return nil, fmt.Errorf("failed to scan skill categories: %w", err)
	}
	if categories == nil {
		categories = []models.SkillCategory{}
	}
	return categories, nil
}

// GetByID retrieves a single skill category.
func (r *SkillCategoryRepo) GetByID(ctx context.Context, id int64) (*models.SkillCategory, error) {
	query := `SELECT ` + skillCategoryColumns + ` FROM skill_categories WHERE id = $1`
	c, err := scanSkillCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning skill category %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get skill category %d: %w", id, err)
	}
	return c, nil
}

// Create inserts a category with display_order = max(existing)+1 (1 when
// the table is empty).
func (r *SkillCategoryRepo) Create(ctx context.Context, name string) (*models.SkillCategory, error) {
	query := `
		INSERT INTO skill_categories (name, display_order)
		VALUES ($1, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM skill_categories))
		RETURNING ` + skillCategoryColumns
	c, err := scanSkillCategory(r.db.QueryRow(ctx, query, name))
	if err != nil {
		log.Printf("Error creating skill category %q: %v\n", name, err)
		return nil, fmt.Errorf("failed to create skill category: %w", err)
	}
	log.Printf("Skill category created with ID %d at order %d", c.ID, c.DisplayOrder)
	return c, nil
}

// Rename updates a category's display name.
func (r *SkillCategoryRepo) Rename(ctx context.Context, id int64, name string) (*models.SkillCategory, error) {
	query := `UPDATE skill_categories SET name = $2 WHERE id = $1 RETURNING ` + skillCategoryColumns
	c, err := scanSkillCategory(r.db.QueryRow(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error renaming skill category %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to rename skill category %d: %w", id, err)
	}
	return c, nil
}

// Delete removes a category; its skills go with it (FK cascade). Remaining
// display_order values keep their gaps.
func (r *SkillCategoryRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting skill category %d: %v\n", id, err)
		return fmt.Errorf("failed to delete skill category %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindPrevByOrder returns the category with the greatest display_order
// strictly below the given order.
func (r *SkillCategoryRepo) FindPrevByOrder(ctx context.Context, order int) (*models.SkillCategory, error) {
	query := `SELECT ` + skillCategoryColumns + ` FROM skill_categories
		WHERE display_order < $1 ORDER BY display_order DESC LIMIT 1`
	c, err := scanSkillCategory(r.db.QueryRow(ctx, query, order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category before order %d: %w", order, err)
	}
	return c, nil
}

// FindNextByOrder returns the category with the smallest display_order
// strictly above the given order.
func (r *SkillCategoryRepo) FindNextByOrder(ctx context.Context, order int) (*models.SkillCategory, error) {
	query := `SELECT ` + skillCategoryColumns + ` FROM skill_categories
		WHERE display_order > $1 ORDER BY display_order ASC LIMIT 1`
	c, err := scanSkillCategory(r.db.QueryRow(ctx, query, order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category after order %d: %w", order, err)
	}
	return c, nil
}

// UpdateOrder sets a category's display_order.
func (r *SkillCategoryRepo) UpdateOrder(ctx context.Context, id int64, order int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE skill_categories SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		log.Printf("Error updating skill category %d order to %d: %v\n", id, order, err)
		return fmt.Errorf("failed to update skill category order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
