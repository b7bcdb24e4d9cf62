package querybuilder

import (
	"context"
)

/***** DeleteQuery *****/

// DeleteQuery composes clause builders into one DELETE statement.
//
// Clauses render in fixed order: WITH, DELETE FROM target, WHERE, ORDER BY,
// LIMIT, RETURNING.
type DeleteQuery struct {
	statement
	with      withClause
	table     string
	where     whereClause
	order     orderClause
	limits    limitClause
	returning returningClause
}

// NewDelete creates a DELETE query targeting the given table.
func NewDelete(table string) *DeleteQuery {
	return &DeleteQuery{table: table}
}

// UsingDialect sets the placeholder dialect for the rendered SQL.
func (q *DeleteQuery) UsingDialect(dialect Dialect) *DeleteQuery {
	q.dialect = dialect
	q.invalidate()

	return q
}

// UsingExecutor attaches the executor used by Exec.
func (q *DeleteQuery) UsingExecutor(executor Executor) *DeleteQuery {
	q.executor = executor

	return q
}

// With adds a common table expression backed by a sub-select.
func (q *DeleteQuery) With(name string, subquery *SelectQuery) *DeleteQuery {
	q.with.addQuery(name, subquery)
	q.invalidate()

	return q
}

// WithExpression adds a common table expression from a raw expression.
func (q *DeleteQuery) WithExpression(name string, expr Expression) *DeleteQuery {
	q.with.addExpression(name, expr)
	q.invalidate()

	return q
}

// From sets the target table.
func (q *DeleteQuery) From(table string) *DeleteQuery {
	q.table = table
	q.invalidate()

	return q
}

// Where appends a condition; the first call establishes the root predicate,
// later calls combine with AND.
func (q *DeleteQuery) Where(condition SQLString, params ...any) *DeleteQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// WhereExpr appends a condition expression, combining with AND.
func (q *DeleteQuery) WhereExpr(condition Expression) *DeleteQuery {
	q.where.and(condition)
	q.invalidate()

	return q
}

// AndWhere appends a condition, combining with AND.
func (q *DeleteQuery) AndWhere(condition SQLString, params ...any) *DeleteQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// OrWhere appends a condition, combining with OR.
func (q *DeleteQuery) OrWhere(condition SQLString, params ...any) *DeleteQuery {
	return q.OrWhereExpr(NewExpression(condition, params...))
}

// OrWhereExpr appends a condition expression, combining with OR.
func (q *DeleteQuery) OrWhereExpr(condition Expression) *DeleteQuery {
	q.where.or(condition)
	q.invalidate()

	return q
}

// OrderBy appends a column ordering; direction must be ASC or DESC.
func (q *DeleteQuery) OrderBy(column string, direction string) *DeleteQuery {
	q.order.add(column, direction)
	q.invalidate()

	return q
}

// Limit sets the maximum number of rows to delete.
func (q *DeleteQuery) Limit(limit int64) *DeleteQuery {
	q.limits.setLimit(limit)
	q.invalidate()

	return q
}

// Returning appends columns to the RETURNING clause.
func (q *DeleteQuery) Returning(columns ...string) *DeleteQuery {
	q.returning.add(columns...)
	q.invalidate()

	return q
}

// Build renders the statement and caches the result.
func (q *DeleteQuery) Build() error {
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
func (q *DeleteQuery) ToSQL() (SQLString, error) {
	if err := q.Build(); err != nil {
		return "", err
	}

	return q.cachedSQL, nil
}

// Params builds the query if needed and returns the flattened parameter list.
func (q *DeleteQuery) Params() (ParamsList, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.cachedParams, nil
}

// Exec builds the query, forwards it to the attached executor and returns
// the affected row count.
func (q *DeleteQuery) Exec(ctx context.Context) (int64, error) {
	if err := q.Build(); err != nil {
		return 0, err
	}

	return q.execute(ctx, q.cachedSQL, q.cachedParams)
}

func (q *DeleteQuery) toExpression() (Expression, error) {
	if q.table == "" {
		return Expression{}, ErrNoTableSupplied
	}

	if err := q.limits.validate(); err != nil {
		return Expression{}, err
	}

	withExpr, err := q.with.toExpression()
	if err != nil {
		return Expression{}, err
	}

	rendered := withExpr.append(Expression{sql: "DELETE FROM " + q.table}, " ")

	whereExpr, err := q.where.toExpression("WHERE")
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(whereExpr, " ")

	orderExpr, err := q.order.toExpression()
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(orderExpr, " ")

	limitExpr, err := q.limits.toExpression()
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(limitExpr, " ")

	returningExpr, err := q.returning.toExpression()
	if err != nil {
		return Expression{}, err
	}

	return rendered.append(returningExpr, " "), nil
}
