package querybuilder

import (
	"errors"
	"strings"
)

/***** Order clause *****/

const (
	// Asc sorts ascending.
	Asc = "ASC"
	// Desc sorts descending.
	Desc = "DESC"
)

// ordering is one column ordering of an ORDER BY clause.
type ordering struct {
	column    string
	direction string
}

// orderClause holds the ordered (column, direction) pairs of an ORDER BY clause.
type orderClause struct {
	orderings []ordering
}

func (o *orderClause) add(column string, direction string) {
	o.orderings = append(o.orderings, ordering{
		column:    column,
		direction: strings.ToUpper(direction),
	})
}

func (o *orderClause) isEmpty() bool {
	return len(o.orderings) == 0
}

func (o *orderClause) toExpression() (Expression, error) {
	if len(o.orderings) == 0 {
		return Expression{}, nil
	}

	parts := make([]string, 0, len(o.orderings))

	for _, ord := range o.orderings {
		if ord.direction != Asc && ord.direction != Desc {
			return Expression{}, errors.Join(ErrInvalidOrderDirection, errors.New(ord.direction))
		}

		parts = append(parts, ord.column+" "+ord.direction)
	}

	return Expression{sql: "ORDER BY " + strings.Join(parts, ", ")}, nil
}
