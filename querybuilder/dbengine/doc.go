// Package dbengine provides executor implementations for the query builder.
//
// An Engine implements querybuilder.Executor over a database adapter,
// supporting multiple database libraries (pgx, sql.DB, sqlx) behind a common
// interface, with structured logging, metrics, and tracing around each
// statement execution.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - Optional read-replica routing for read statements (PGX)
//   - Dual-logger support (level-based and context-aware)
//   - Metrics and tracing collector hooks
//
// Usage examples:
//
//	// Basic usage
//	pool, _ := pgxpool.New(context.Background(), dsn)
//	engine, _ := dbengine.NewEngineFromPGXPool(pool)
//
//	// With operational logging and metrics
//	engine, _ := dbengine.NewEngineFromPGXPool(
//		pool,
//		dbengine.WithLogger(logger),
//		dbengine.WithMetrics(collector),
//	)
//
//	query := querybuilder.NewSelect("id", "name").
//		From("users").
//		UsingDialect(querybuilder.DialectPostgres).
//		UsingExecutor(engine)
//	rows, err := query.Fetch(ctx)
package dbengine
