package querybuilder

import (
	"context"
	"strings"
)

/***** SelectQuery *****/

// SelectQuery composes clause builders into one SELECT statement.
//
// Clauses render in fixed order: WITH, SELECT columns FROM target, JOIN,
// WHERE, GROUP BY, HAVING, ORDER BY, LIMIT/OFFSET. Any clause left
// unpopulated contributes nothing to the rendered SQL.
type SelectQuery struct {
	statement
	with     withClause
	columns  []string
	distinct bool
	table    string
	joins    joinClause
	where    whereClause
	groupBy  []string
	having   whereClause
	order    orderClause
	limits   limitClause
}

// NewSelect creates a SELECT query for the given projection columns.
// Without columns, the query selects `*`.
func NewSelect(columns ...string) *SelectQuery {
	return &SelectQuery{columns: columns}
}

// UsingDialect sets the placeholder dialect for the rendered SQL.
func (q *SelectQuery) UsingDialect(dialect Dialect) *SelectQuery {
	q.dialect = dialect
	q.invalidate()

	return q
}

// UsingExecutor attaches the executor used by Fetch.
func (q *SelectQuery) UsingExecutor(executor Executor) *SelectQuery {
	q.executor = executor

	return q
}

// With adds a common table expression backed by a sub-select.
// The subquery is rendered when this query is built.
func (q *SelectQuery) With(name string, subquery *SelectQuery) *SelectQuery {
	q.with.addQuery(name, subquery)
	q.invalidate()

	return q
}

// WithExpression adds a common table expression from a raw expression.
func (q *SelectQuery) WithExpression(name string, expr Expression) *SelectQuery {
	q.with.addExpression(name, expr)
	q.invalidate()

	return q
}

// Distinct switches the projection to SELECT DISTINCT.
func (q *SelectQuery) Distinct() *SelectQuery {
	q.distinct = true
	q.invalidate()

	return q
}

// From sets the target table.
func (q *SelectQuery) From(table string) *SelectQuery {
	q.table = table
	q.invalidate()

	return q
}

// Join adds a join specification; joins render exactly in call order.
func (q *SelectQuery) Join(joinType string, table string, on Expression) *SelectQuery {
	q.joins.add(joinType, table, on)
	q.invalidate()

	return q
}

// InnerJoin adds an INNER JOIN.
func (q *SelectQuery) InnerJoin(table string, on Expression) *SelectQuery {
	return q.Join("INNER", table, on)
}

// LeftJoin adds a LEFT JOIN.
func (q *SelectQuery) LeftJoin(table string, on Expression) *SelectQuery {
	return q.Join("LEFT", table, on)
}

// CrossJoin adds a CROSS JOIN without an ON condition.
func (q *SelectQuery) CrossJoin(table string) *SelectQuery {
	return q.Join("CROSS", table, Expression{})
}

// Where appends a condition from raw SQL with bound parameters.
// The first condition establishes the root predicate; later calls combine
// with AND.
func (q *SelectQuery) Where(condition SQLString, params ...any) *SelectQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// WhereExpr appends a condition expression, combining with AND.
func (q *SelectQuery) WhereExpr(condition Expression) *SelectQuery {
	q.where.and(condition)
	q.invalidate()

	return q
}

// AndWhere appends a condition, combining with AND.
func (q *SelectQuery) AndWhere(condition SQLString, params ...any) *SelectQuery {
	return q.WhereExpr(NewExpression(condition, params...))
}

// OrWhere appends a condition, combining with OR: the accumulated predicate
// and the new condition are both parenthesized.
func (q *SelectQuery) OrWhere(condition SQLString, params ...any) *SelectQuery {
	return q.OrWhereExpr(NewExpression(condition, params...))
}

// OrWhereExpr appends a condition expression, combining with OR.
func (q *SelectQuery) OrWhereExpr(condition Expression) *SelectQuery {
	q.where.or(condition)
	q.invalidate()

	return q
}

// GroupBy appends grouping columns.
func (q *SelectQuery) GroupBy(columns ...string) *SelectQuery {
	q.groupBy = append(q.groupBy, columns...)
	q.invalidate()

	return q
}

// Having appends a HAVING condition, combining with AND.
func (q *SelectQuery) Having(condition SQLString, params ...any) *SelectQuery {
	return q.HavingExpr(NewExpression(condition, params...))
}

// HavingExpr appends a HAVING condition expression, combining with AND.
func (q *SelectQuery) HavingExpr(condition Expression) *SelectQuery {
	q.having.and(condition)
	q.invalidate()

	return q
}

// OrderBy appends a column ordering; direction must be ASC or DESC.
func (q *SelectQuery) OrderBy(column string, direction string) *SelectQuery {
	q.order.add(column, direction)
	q.invalidate()

	return q
}

// Limit sets the maximum number of rows; negative values error at build.
func (q *SelectQuery) Limit(limit int64) *SelectQuery {
	q.limits.setLimit(limit)
	q.invalidate()

	return q
}

// Offset sets the number of rows to skip; negative values error at build.
func (q *SelectQuery) Offset(offset int64) *SelectQuery {
	q.limits.setOffset(offset)
	q.invalidate()

	return q
}

// Build renders the statement and caches the result. It is idempotent given
// unchanged clause state; any mutation after a build forces a re-render.
func (q *SelectQuery) Build() error {
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
func (q *SelectQuery) ToSQL() (SQLString, error) {
	if err := q.Build(); err != nil {
		return "", err
	}

	return q.cachedSQL, nil
}

// Params builds the query if needed and returns the flattened parameter list
// in the exact order their placeholders appear in the SQL text.
func (q *SelectQuery) Params() (ParamsList, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.cachedParams, nil
}

// Fetch builds the query and forwards it to the attached executor.
func (q *SelectQuery) Fetch(ctx context.Context) (Rows, error) {
	if err := q.Build(); err != nil {
		return nil, err
	}

	return q.fetch(ctx, q.cachedSQL, q.cachedParams)
}

// AsExpression renders the query as an embeddable sub-expression, keeping
// `?` placeholders so the embedding query can apply its own dialect.
func (q *SelectQuery) AsExpression() (Expression, error) {
	return q.toExpression()
}

func (q *SelectQuery) toExpression() (Expression, error) {
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

	columns := "*"
	if len(q.columns) > 0 {
		columns = strings.Join(q.columns, ", ")
	}

	keyword := "SELECT "
	if q.distinct {
		keyword = "SELECT DISTINCT "
	}

	rendered := withExpr.append(Expression{sql: keyword + columns + " FROM " + q.table}, " ")

	joinExpr, err := q.joins.toExpression()
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(joinExpr, " ")

	whereExpr, err := q.where.toExpression("WHERE")
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(whereExpr, " ")

	if len(q.groupBy) > 0 {
		rendered = rendered.append(Expression{sql: "GROUP BY " + strings.Join(q.groupBy, ", ")}, " ")
	}

	havingExpr, err := q.having.toExpression("HAVING")
	if err != nil {
		return Expression{}, err
	}
	rendered = rendered.append(havingExpr, " ")

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

	return rendered, nil
}
