package querybuilder

import (
	"context"
)

// Executor is the sole boundary the query builder depends on for execution.
//
// Implementations own connections, pooling, transactions and driver-specific
// error handling; the builder only forwards rendered SQL and its ordered
// parameters. Driver errors are passed through unmodified.
type Executor interface {
	Query(ctx context.Context, sql SQLString, params ...any) (Rows, error)
	Exec(ctx context.Context, sql SQLString, params ...any) (Result, error)
}

// Rows defines the interface for query result rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// Result defines the interface for execution results.
type Result interface {
	RowsAffected() (int64, error)
}
