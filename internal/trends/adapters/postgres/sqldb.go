package postgres

import (
	"context"
	"database/sql"
)

// RowScanner is the read side of *sql.Rows the repository needs.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is read-only: trends never write.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type readOnlyDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return readOnlyDB{db: db}
}

func (r readOnlyDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		// never hand a typed nil *sql.Rows to the caller
		return nil, err
	}
	return rows, nil
}
