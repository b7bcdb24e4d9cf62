package querybuilder

import (
	"strings"
)

/***** Returning clause *****/

// returningClause holds the ordered column list of a RETURNING clause.
type returningClause struct {
	columns []string
}

func (r *returningClause) add(columns ...string) {
	r.columns = append(r.columns, columns...)
}

func (r *returningClause) isEmpty() bool {
	return len(r.columns) == 0
}

func (r *returningClause) toExpression() (Expression, error) {
	if len(r.columns) == 0 {
		return Expression{}, nil
	}

	return Expression{sql: "RETURNING " + strings.Join(r.columns, ", ")}, nil
}
