package querybuilder

import (
	"errors"
	"strings"
)

/***** Join clause *****/

var allowedJoinTypes = map[string]bool{
	"INNER": true,
	"LEFT":  true,
	"RIGHT": true,
	"FULL":  true,
	"CROSS": true,
}

// joinSpec is one join specification: type, target table, and ON condition.
type joinSpec struct {
	joinType string
	table    string
	on       Expression
}

// joinClause holds an ordered sequence of join specifications.
// Join order is semantically significant and rendered exactly in call order.
type joinClause struct {
	joins []joinSpec
}

func (j *joinClause) add(joinType string, table string, on Expression) {
	j.joins = append(j.joins, joinSpec{
		joinType: strings.ToUpper(joinType),
		table:    table,
		on:       on,
	})
}

func (j *joinClause) isEmpty() bool {
	return len(j.joins) == 0
}

func (j *joinClause) toExpression() (Expression, error) {
	rendered := Expression{}

	for _, join := range j.joins {
		if !allowedJoinTypes[join.joinType] {
			return Expression{}, errors.Join(ErrInvalidJoinType, errors.New(join.joinType))
		}

		if join.on.err != nil {
			return Expression{}, join.on.err
		}

		part := Expression{
			sql:    join.joinType + " JOIN " + join.table,
			params: nil,
		}

		if !join.on.IsEmpty() {
			part = Expression{
				sql:    part.sql + " ON " + join.on.sql,
				params: join.on.params,
			}
		}

		rendered = rendered.append(part, " ")
	}

	return rendered, nil
}
