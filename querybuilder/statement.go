package querybuilder

import (
	"context"
)

// statement carries the state shared by all query kinds: the rendering cache
// guarded by the built flag, the dialect, and the injected executor.
//
// The executor is not owned by the query; it may be nil until execution is
// attempted, at which point a missing executor is a configuration error.
//
// The built flag must never serve SQL reflecting stale clause state: every
// mutating method calls invalidate, forcing a re-render on the next build.
type statement struct {
	dialect      Dialect
	executor     Executor
	built        bool
	cachedSQL    SQLString
	cachedParams ParamsList
}

func (s *statement) invalidate() {
	s.built = false
}

// cache stores the assembled render, applying the dialect placeholder
// rebinding exactly once, on the fully concatenated SQL text.
func (s *statement) cache(rendered Expression) {
	s.cachedSQL = s.dialect.rebind(rendered.sql)
	s.cachedParams = rendered.params
	s.built = true
}

// execute forwards the rendered statement to the attached executor and
// returns the affected row count. Executor errors pass through unmodified.
func (s *statement) execute(ctx context.Context, sql SQLString, params ParamsList) (int64, error) {
	if s.executor == nil {
		return 0, ErrMissingExecutor
	}

	result, execErr := s.executor.Exec(ctx, sql, params...)
	if execErr != nil {
		return 0, execErr
	}

	return result.RowsAffected()
}

// fetch forwards the rendered statement to the attached executor and returns
// the result rows. Executor errors pass through unmodified.
func (s *statement) fetch(ctx context.Context, sql SQLString, params ParamsList) (Rows, error) {
	if s.executor == nil {
		return nil, ErrMissingExecutor
	}

	return s.executor.Query(ctx, sql, params...)
}
