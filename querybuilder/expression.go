package querybuilder

import (
	"strings"
)

/***** Expression *****/

// Expression is a renderable SQL fragment paired with its bound parameters.
//
// The parameter list order matches the positional `?` placeholders in the SQL
// text exactly. Combining two expressions concatenates their SQL text and
// their parameter lists in the same order, so the ordering invariant holds
// transitively through nesting (e.g. a WHERE clause embedding a subquery).
//
// An Expression is immutable once produced; all combinators return new values.
type Expression struct {
	sql    string
	params ParamsList
	err    error
}

// NewExpression creates an Expression from raw SQL text and its bound parameters.
// The caller is responsible for matching the placeholder count to the parameters.
func NewExpression(sql string, params ...any) Expression {
	return Expression{sql: sql, params: params}
}

// SQL returns the rendered SQL text of the expression.
func (e Expression) SQL() SQLString {
	return e.sql
}

// Params returns the bound parameters in placeholder order.
func (e Expression) Params() ParamsList {
	return e.params
}

// IsEmpty reports whether the expression renders to nothing.
func (e Expression) IsEmpty() bool {
	return e.sql == "" && e.err == nil
}

// Err returns the deferred construction error, if any.
// Errors are surfaced when the owning query is built.
func (e Expression) Err() error {
	return e.err
}

// append concatenates another expression onto this one using the given
// separator, keeping both parameter lists in concatenation order.
func (e Expression) append(other Expression, separator string) Expression {
	if e.err != nil {
		return e
	}

	if other.err != nil {
		return other
	}

	if e.IsEmpty() {
		return other
	}

	if other.IsEmpty() {
		return e
	}

	return Expression{
		sql:    e.sql + separator + other.sql,
		params: append(append(ParamsList{}, e.params...), other.params...),
	}
}

/***** Predicate constructors *****/

// C builds a single comparison predicate, e.g. C("id", "=", 5) -> "id = ?".
// The value is always bound as a positional parameter.
func C(column string, operator string, value any) Expression {
	return Expression{
		sql:    column + " " + operator + " ?",
		params: ParamsList{value},
	}
}

// In builds an IN predicate with one placeholder per value.
func In(column string, values ...any) Expression {
	if len(values) == 0 {
		return Expression{}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")

	return Expression{
		sql:    column + " IN (" + placeholders + ")",
		params: append(ParamsList{}, values...),
	}
}

// Raw builds an expression from a verbatim SQL fragment with bound parameters.
func Raw(sql string, params ...any) Expression {
	return Expression{sql: sql, params: params}
}

// And combines the given expressions with AND, wrapping the result in
// parentheses when more than one expression contributes. Empty expressions
// contribute nothing; parameter order follows argument order.
func And(expressions ...Expression) Expression {
	return combine(expressions, " AND ")
}

// Or combines the given expressions with OR, wrapping the result in
// parentheses when more than one expression contributes.
func Or(expressions ...Expression) Expression {
	return combine(expressions, " OR ")
}

func combine(expressions []Expression, operator string) Expression {
	combined := Expression{}
	contributing := 0

	for _, expr := range expressions {
		if expr.err != nil {
			return expr
		}

		if expr.IsEmpty() {
			continue
		}

		combined = combined.append(expr, operator)
		contributing++
	}

	if contributing > 1 {
		combined.sql = "(" + combined.sql + ")"
	}

	return combined
}
