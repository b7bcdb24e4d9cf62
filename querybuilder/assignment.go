package querybuilder

/***** Assignment (SET) clause *****/

// assignment is one column assignment of an UPDATE's SET list.
type assignment struct {
	column string
	expr   Expression
}

// assignmentClause holds the ordered column assignments of a SET list.
//
// Assigning a column that was already assigned overwrites the earlier value
// (and its bound parameter) but keeps the column's original position in the
// rendered list.
type assignmentClause struct {
	assignments []assignment
}

func (a *assignmentClause) assign(column string, value any) {
	a.set(column, Expression{sql: "?", params: ParamsList{value}})
}

// assignRaw assigns a verbatim SQL fragment, e.g. "counter + 1" or "now()".
func (a *assignmentClause) assignRaw(column string, sql SQLString, params ...any) {
	a.set(column, Expression{sql: sql, params: params})
}

func (a *assignmentClause) set(column string, expr Expression) {
	for i := range a.assignments {
		if a.assignments[i].column == column {
			a.assignments[i].expr = expr
			return
		}
	}

	a.assignments = append(a.assignments, assignment{column: column, expr: expr})
}

func (a *assignmentClause) isEmpty() bool {
	return len(a.assignments) == 0
}

func (a *assignmentClause) toExpression() (Expression, error) {
	rendered := Expression{}

	for _, asgn := range a.assignments {
		if asgn.expr.err != nil {
			return Expression{}, asgn.expr.err
		}

		rendered = rendered.append(
			Expression{sql: asgn.column + " = " + asgn.expr.sql, params: asgn.expr.params},
			", ",
		)
	}

	if rendered.IsEmpty() {
		return Expression{}, nil
	}

	return Expression{sql: "SET " + rendered.sql, params: rendered.params}, nil
}
