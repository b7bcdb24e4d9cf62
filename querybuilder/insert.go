package querybuilder

import (
	"context"
	"strings"
)

/***** InsertQuery *****/

// InsertQuery composes clause builders into one INSERT statement.
//
// Clauses render in fixed order: WITH, INSERT INTO target (columns),
// VALUES rows, RETURNING.
type InsertQuery struct {
	statement
	with      withClause
	table     string
	columns   []string
	rows      []ParamsList
	returning returningClause
}

// NewInsert creates an INSERT query targeting the given table.
func NewInsert(table string) *InsertQuery {
	return &InsertQuery{table: table}
}

// UsingDialect sets the placeholder dialect for the rendered SQL.
func (q *InsertQuery) UsingDialect(dialect Dialect) *InsertQuery {
	q.dialect = dialect
	q.invalidate()

	return q
}

// UsingExecutor attaches the executor used by Exec.
func (q *InsertQuery) UsingExecutor(executor Executor) *InsertQuery {
	q.executor = executor

	return q
}

// With adds a common table expression backed by a sub-select.
func (q *InsertQuery) With(name string, subquery *SelectQuery) *InsertQuery {
	q.with.addQuery(name, subquery)
	q.invalidate()

	return q
}

// WithExpression adds a common table expression from a raw expression.
func (q *InsertQuery) WithExpression(name string, expr Expression) *InsertQuery {
	q.with.addExpression(name, expr)
	q.invalidate()

	return q
}

// Into sets the target table.
func (q *InsertQuery) Into(table string) *InsertQuery {
	q.table = table
	q.invalidate()

	return q
}

// Columns sets the insert column list.
func (q *InsertQuery) Columns(columns ...string) *InsertQuery {
	q.columns = append(q.columns, columns...)
	q.invalidate()

	return q
}

// Values appends one VALUES row; the row length must match the column count,
// validated at build time.
func (q *InsertQuery) Values(values ...any) *InsertQuery {
	q.rows = append(q.rows, values)
	q.invalidate()

	return q
}

// Returning appends columns to the RETURNING clause.
func (q *InsertQuery) Returning(columns ...string) *InsertQuery {
	q.returning.add(columns...)
	q.invalidate()

	return q
}

// Build renders the statement and caches the result.
func (q *InsertQuery) Build() error {
	if q.built {
		return nil
	}

	rendered, err := q.toExpression()
	if err != nil {
		return err
	}

	q.cache(rendered)

	return nil
}

// ToSQL builds the query if needed and returns the SQL text.
func (q *InsertQuery) ToSQL() (SQLString, error) {
	if err := q.Build(); err != nil {
		return "", err
	}

	return q.cachedSQL, nil
}

// Params builds the query if needed and returns the flattened parameter list.
func (q *InsertQuery) Params() (ParamsList, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.cachedParams, nil
}

// Exec builds the query, forwards it to the attached executor and returns
// the affected row count.
func (q *InsertQuery) Exec(ctx context.Context) (int64, error) {
	if err := q.Build(); err != nil {
		return 0, err
	}

	return q.execute(ctx, q.cachedSQL, q.cachedParams)
}

// Fetch builds the query and forwards it to the attached executor as a read,
// for INSERT ... RETURNING statements that produce rows.
func (q *InsertQuery) Fetch(ctx context.Context) (Rows, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.fetch(ctx, q.cachedSQL, q.cachedParams)
}

func (q *InsertQuery) toExpression() (Expression, error) {
	if q.table == "" {
		return Expression{}, ErrNoTableSupplied
	}

	if len(q.columns) == 0 {
		return Expression{}, ErrNoColumnsSupplied
	}

	if len(q.rows) == 0 {
		return Expression{}, ErrNoValuesSupplied
	}

	withExpr, err := q.with.toExpression()
	if err != nil {
		return Expression{}, err
	}

	rendered := withExpr.append(
		Expression{sql: "INSERT INTO " + q.table + " (" + strings.Join(q.columns, ", ") + ")"},
		" ",
	)

	rowPlaceholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(q.columns)), ", ") + ")"
	valueRows := make([]string, 0, len(q.rows))
	params := make(ParamsList, 0, len(q.rows)*len(q.columns))

	for _, row := range q.rows {
		if len(row) != len(q.columns) {
			return Expression{}, ErrValueCountMismatch
		}

		valueRows = append(valueRows, rowPlaceholders)
		params = append(params, row...)
	}

	rendered = rendered.append(
		Expression{sql: "VALUES " + strings.Join(valueRows, ", "), params: params},
		" ",
	)

	returningExpr, err := q.returning.toExpression()
	if err != nil {
		return Expression{}, err
	}

	return rendered.append(returningExpr, " "), nil
}
