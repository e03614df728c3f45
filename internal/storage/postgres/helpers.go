package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx used by the repositories, satisfied by both
// *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const pgForeignKeyViolation = "23503"

// padStrings returns a fixed-size slice of nullable column values, populated
// from src in order. Used for the skill_1..8 and interview_slot_1..8 column
// families.
func padStrings(src []string, size int) []*string {
	out := make([]*string, size)
	for i := 0; i < size && i < len(src); i++ {
		v := src[i]
		out[i] = &v
	}
	return out
}
