package querybuilder

import (
	"context"
)

/***** UpdateQuery *****/

// UpdateQuery composes clause builders into one UPDATE statement.
//
// Clauses render in fixed order: WITH, UPDATE target, JOIN, SET, WHERE,
// ORDER BY, LIMIT, RETURNING. A missing target table or empty SET list is a
// build-time error; validation is deferred to build, not performed by each
// mutating call.
type UpdateQuery struct {
	statement
	with        withClause
	table       string
	joins       joinClause
	assignments assignmentClause
	where       whereClause
	order       orderClause
	limits      limitClause
	returning   returningClause
}

// NewUpdate creates an UPDATE query targeting the given table.
func NewUpdate(table string) *UpdateQuery {
	return &UpdateQuery{table: table}
}

// UsingDialect sets the placeholder dialect for the rendered SQL.
func (q *UpdateQuery) UsingDialect(dialect Dialect) *UpdateQuery {
	q.dialect = dialect
	q.invalidate()

	return q
}

// UsingExecutor attaches the executor used by Exec.
func (q *UpdateQuery) UsingExecutor(executor Executor) *UpdateQuery {
	q.executor = executor

	return q
}

// With adds a common table expression backed by a sub-select.
func (q *UpdateQuery) With(name string, subquery *SelectQuery) *UpdateQuery {
	q.with.addQuery(name, subquery)
	q.invalidate()

	return q
}

// WithExpression adds a common table expression from a raw expression.
func (q *UpdateQuery) WithExpression(name string, expr Expression) *UpdateQuery {
	q.with.addExpression(name, expr)
	q.invalidate()

	return q
}

// Table sets the target table.
func (q *UpdateQuery) Table(table string) *UpdateQuery {
	q.table = table
	q.invalidate()

	return q
}

// Join adds a join specification; joins render exactly in call order.
func (q *UpdateQuery) Join(joinType string, table string, on Expression) *UpdateQuery {
	q.joins.add(joinType, table, on)
	q.invalidate()

	return q
}

// Assign sets a column to a bound value. Assigning the same column again
// overwrites the value but keeps the column's original position.
func (q *UpdateQuery) Assign(column string, value any) *UpdateQuery {
	q.assignments.assign(column, value)
	q.invalidate()

	return q
}

// AssignRaw sets a column to a verbatim SQL fragment with bound parameters,
// e.g. AssignRaw("counter", "counter + ?", 1).
func (q *UpdateQuery) AssignRaw(column string, sql SQLString, params ...any) *UpdateQuery {
	q.assignments.assignRaw(column, sql, params...)
	q.invalidate()

	return q
}

// Where appends a condition; the first call establishes the root predicate,
// later calls combine with AND.
func (q *UpdateQuery) Where(condition SQLString, params ...any) *UpdateQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// WhereExpr appends a condition expression, combining with AND.
func (q *UpdateQuery) WhereExpr(condition Expression) *UpdateQuery {
	q.where.and(condition)
	q.invalidate()

	return q
}

// AndWhere appends a condition, combining with AND.
func (q *UpdateQuery) AndWhere(condition SQLString, params ...any) *UpdateQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// OrWhere appends a condition, combining with OR.
func (q *UpdateQuery) OrWhere(condition SQLString, params ...any) *UpdateQuery {
	return q.OrWhereExpr(NewExpression(condition, params...))
}

// OrWhereExpr appends a condition expression, combining with OR.
func (q *UpdateQuery) OrWhereExpr(condition Expression) *UpdateQuery {
	q.where.or(condition)
	q.invalidate()

	return q
}

// OrderBy appends a column ordering; direction must be ASC or DESC.
func (q *UpdateQuery) OrderBy(column string, direction string) *UpdateQuery {
	q.order.add(column, direction)
	q.invalidate()

	return q
}

// Limit sets the maximum number of rows to update.
func (q *UpdateQuery) Limit(limit int64) *UpdateQuery {
	q.limits.setLimit(limit)
	q.invalidate()

	return q
}

// Returning appends columns to the RETURNING clause.
func (q *UpdateQuery) Returning(columns ...string) *UpdateQuery {
	q.returning.add(columns...)
	q.invalidate()

	return q
}

// Build renders the statement and caches the result.
func (q *UpdateQuery) Build() error {
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
func (q *UpdateQuery) ToSQL() (SQLString, error) {
	if err := q.Build(); err != nil {
		return "", err
	}

	return q.cachedSQL, nil
}

// Params builds the query if needed and returns the flattened parameter list.
func (q *UpdateQuery) Params() (ParamsList, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.cachedParams, nil
}

// Exec builds the query, forwards it to the attached executor and returns
// the affected row count.
func (q *UpdateQuery) Exec(ctx context.Context) (int64, error) {
	if err := q.Build(); err != nil {
		return 0, err
	}

	return q.execute(ctx, q.cachedSQL, q.cachedParams)
}

func (q *UpdateQuery) toExpression() (Expression, error) {
	if q.table == "" {
		return Expression{}, ErrNoTableSupplied
	}

	if q.assignments.isEmpty() {
		return Expression{}, ErrNoAssignmentsSupplied
	}

	if err := q.limits.validate(); err != nil {
		return Expression{}, err
	}

	withExpr, err := q.with.toExpression()
	if err != nil {
		return Expression{}, err
	}

	rendered := withExpr.append(Expression{sql: "UPDATE " + q.table}, " ")

	joinExpr, err := q.joins.toExpression()
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(joinExpr, " ")

	setExpr, err := q.assignments.toExpression()
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(setExpr, " ")

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
