package stash_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository needs. Declared as
// an interface so driver tests can substitute pgxmock.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// StashDBRepository provides read access to bookmarks, tags and open
// events. The search core never writes through it.
type StashDBRepository struct {
	pool DBPool
}

func NewStashDBRepository(pool DBPool) *StashDBRepository {
	return &StashDBRepository{pool: pool}
}
