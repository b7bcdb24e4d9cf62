package dbengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/domainblocks/ddd-blocks-go/querybuilder"
	"github.com/domainblocks/ddd-blocks-go/querybuilder/dbengine/internal/adapters"
)

var ErrNilDatabaseConnection = errors.New("nil database connection supplied")

const (
	logMsgSQLExecuted  = "executed sql for: "
	logMsgOperation    = "engine operation: "
	logMsgQueryFailed  = "database query execution failed"
	logMsgExecFailed   = "database execution failed"
	logMsgRowsAffected = "failed to get rows affected count"
	logMsgQueryDone    = "query completed"
	logMsgExecDone     = "statement executed"
	logAttrError       = "error"
	logAttrQuery       = "query"
	logAttrDurationMS  = "duration_ms"
	logAttrParamCount  = "param_count"
	logAttrRows        = "rows_affected"
	opQuery            = "query"
	opExec             = "exec"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// Engine executes rendered statements against a real database connection.
//
// It implements querybuilder.Executor over a database adapter (pgx, sql.DB,
// or sqlx) and adds structured logging, metrics, and tracing around each
// execution. The engine owns no query state; connection pooling, transactions
// and retries remain the caller's concern.
type Engine struct {
	db               adapters.DBAdapter
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewEngineFromPGXPool creates a new Engine using a pgx Pool with optional configuration.
func NewEngineFromPGXPool(db *pgxpool.Pool, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapter(db), options...)
}

// NewEngineFromPGXPoolWithReplica creates a new Engine using a primary pgx Pool
// and a replica pool used for read statements.
func NewEngineFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Engine, error) {
	if db == nil || replica == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewEngineFromSQLDB creates a new Engine using a sql.DB with optional configuration.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), options...)
}

// NewEngineFromSQLX creates a new Engine using a sqlx.DB with optional configuration.
func NewEngineFromSQLX(db *sqlx.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLXAdapter(db), options...)
}

func newEngine(db adapters.DBAdapter, options ...Option) (*Engine, error) {
	engine := &Engine{db: db}

	for _, option := range options {
		if err := option(engine); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

// Query executes a read statement with its parameters and returns the result rows.
// Driver errors pass through unmodified.
func (e *Engine) Query(ctx context.Context, sqlQuery sqlQueryString, params ...any) (querybuilder.Rows, error) {
	spanCtx, span := e.startTraceSpan(ctx, opQuery, map[string]string{spanAttrOperation: opQuery})

	start := time.Now()
	rows, queryErr := e.db.Query(spanCtx, sqlQuery, params...)
	duration := time.Since(start)

	e.logQueryWithDuration(spanCtx, sqlQuery, opQuery, duration, len(params))
	e.recordDurationMetricsContext(spanCtx, metricQueryDuration, duration, opQuery, statusFromError(queryErr))

	if queryErr != nil {
		e.logError(spanCtx, logMsgQueryFailed, queryErr, logAttrQuery, sqlQuery)
		e.recordErrorMetricsContext(spanCtx, opQuery, errorTypeDatabase)
		e.finishTraceSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeDatabase})

		return nil, queryErr
	}

	e.logOperation(spanCtx, logMsgQueryDone, logAttrDurationMS, toMilliseconds(duration))
	e.finishTraceSpan(span, statusOK, nil)

	return rows, nil
}

// Exec executes a write statement with its parameters and returns the execution result.
// Driver errors pass through unmodified.
func (e *Engine) Exec(ctx context.Context, sqlQuery sqlQueryString, params ...any) (querybuilder.Result, error) {
	spanCtx, span := e.startTraceSpan(ctx, opExec, map[string]string{spanAttrOperation: opExec})

	start := time.Now()
	result, execErr := e.db.Exec(spanCtx, sqlQuery, params...)
	duration := time.Since(start)

	e.logQueryWithDuration(spanCtx, sqlQuery, opExec, duration, len(params))
	e.recordDurationMetricsContext(spanCtx, metricExecDuration, duration, opExec, statusFromError(execErr))

	if execErr != nil {
		e.logError(spanCtx, logMsgExecFailed, execErr, logAttrQuery, sqlQuery)
		e.recordErrorMetricsContext(spanCtx, opExec, errorTypeDatabase)
		e.finishTraceSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeDatabase})

		return nil, execErr
	}

	e.logExecCompleted(spanCtx, result, duration)
	e.finishTraceSpan(span, statusOK, nil)

	return result, nil
}

// logExecCompleted logs the outcome of a write statement at info level.
func (e *Engine) logExecCompleted(ctx context.Context, result querybuilder.Result, duration queryDuration) {
	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		e.logWarn(ctx, logMsgRowsAffected, rowsAffectedErr)
		return
	}

	e.logOperation(ctx, logMsgExecDone, logAttrRows, rowsAffected, logAttrDurationMS, toMilliseconds(duration))
}

func statusFromError(err error) string {
	if err != nil {
		return statusError
	}

	return statusOK
}

// Ensure Engine implements querybuilder.Executor.
var _ querybuilder.Executor = (*Engine)(nil)
