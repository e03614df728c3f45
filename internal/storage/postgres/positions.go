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

// PositionRepo implements storage.PositionRepository using PostgreSQL.
type PositionRepo struct {
	db Querier
}

// NewPositionRepo creates a new PositionRepo.
func NewPositionRepo(db *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{db: db}
}

var _ storage.PositionRepository = (*PositionRepo)(nil)

const positionColumns = "id, name, display_order, created_at"

func scanPosition(row pgx.Row) (*models.Position, error) {
	var p models.Position
	err := row.Scan(&p.ID, &p.Name, &p.DisplayOrder, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all positions ordered by display_order.
func (r *PositionRepo) List(ctx context.Context) ([]models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions ORDER BY display_order`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying positions: %v\n", err)
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Position])
	if err != nil {
		log.Printf("Error scanning positions: %v\n", err)
		return nil, fmt.Errorf("failed to scan positions: %w", err)
	}
	if positions == nil {
		positions = []models.Position{}
	}
	return positions, nil
}

// GetByID retrieves a single position.
func (r *PositionRepo) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`
	p, err := scanPosition(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning position %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get position %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a position at the end of the order: display_order becomes
// max(existing)+1, or 1 for an empty table. Duplicate names are allowed.
func (r *PositionRepo) Create(ctx context.Context, name string) (*models.Position, error) {
	query := `
		INSERT INTO positions (name, display_order)
		VALUES ($1, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM positions))
		RETURNING ` + positionColumns
	p, err := scanPosition(r.db.QueryRow(ctx, query, name))
	if err != nil {
		log.Printf("Error creating position %q: %v\n", name, err)
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	log.Printf("Position created with ID %d at order %d", p.ID, p.DisplayOrder)
	return p, nil
}

// Rename updates a position's display name.
func (r *PositionRepo) Rename(ctx context.Context, id int64, name string) (*models.Position, error) {
	query := `UPDATE positions SET name = $2 WHERE id = $1 RETURNING ` + positionColumns
	p, err := scanPosition(r.db.QueryRow(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error renaming position %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to rename position %d: %w", id, err)
	}
	return p, nil
}

// Delete removes a position. Remaining display_order values are not
// renumbered; the ordering logic tolerates gaps.
func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting position %d: %v\n", id, err)
		return fmt.Errorf("failed to delete position %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindPrevByOrder returns the position with the greatest display_order
// strictly below the given order.
func (r *PositionRepo) FindPrevByOrder(ctx context.Context, order int) (*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions
		WHERE display_order < $1 ORDER BY display_order DESC LIMIT 1`
	p, err := scanPosition(r.db.QueryRow(ctx, query, order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find position before order %d: %w", order, err)
	}
	return p, nil
}

// FindNextByOrder returns the position with the smallest display_order
// strictly above the given order.
func (r *PositionRepo) FindNextByOrder(ctx context.Context, order int) (*models.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions
		WHERE display_order > $1 ORDER BY display_order ASC LIMIT 1`
	p, err := scanPosition(r.db.QueryRow(ctx, query, order))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find position after order %d: %w", order, err)
	}
	return p, nil
}

// UpdateOrder sets a position's display_order. Reordering issues two of
// these sequentially; the pair is intentionally not transactional.
func (r *PositionRepo) UpdateOrder(ctx context.Context, id int64, order int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE positions SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		log.Printf("Error updating position %d order to %d: %v\n", id, order, err)
		return fmt.Errorf("failed to update position order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
