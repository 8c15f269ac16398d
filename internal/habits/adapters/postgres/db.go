package postgres

import (
	"context"
	"database/sql"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier is satisfied by both the pool and an open transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type DB interface {
	Querier
	// InTx runs fn in a transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(q Querier) error) error
}
