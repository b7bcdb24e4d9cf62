package querybuilder

/***** With (CTE) clause *****/

// cte is one common table expression: a name bound to a sub-select.
type cte struct {
	name     string
	subquery *SelectQuery
	expr     Expression
}

// withClause holds the ordered common table expressions of a WITH clause.
//
// Subqueries are rendered lazily when the owning query is built, so a CTE
// always reflects the subquery's latest clause state. CTE parameters come
// first in the owning query's flattened parameter list.
type withClause struct {
	ctes []cte
}

func (w *withClause) addQuery(name string, subquery *SelectQuery) {
	w.ctes = append(w.ctes, cte{name: name, subquery: subquery})
}

func (w *withClause) addExpression(name string, expr Expression) {
	w.ctes = append(w.ctes, cte{name: name, expr: expr})
}

func (w *withClause) isEmpty() bool {
	return len(w.ctes) == 0
}

func (w *withClause) toExpression() (Expression, error) {
	if len(w.ctes) == 0 {
		return Expression{}, nil
	}

	rendered := Expression{}

	for _, c := range w.ctes {
		if c.name == "" {
			return Expression{}, ErrEmptyCTEName
		}

		body := c.expr

		if c.subquery != nil {
			subExpr, err := c.subquery.AsExpression()
			if err != nil {
				return Expression{}, err
			}

			body = subExpr
		}

		if body.err != nil {
			return Expression{}, body.err
		}

		rendered = rendered.append(
			Expression{sql: c.name + " AS (" + body.sql + ")", params: body.params},
			", ",
		)
	}

	return Expression{sql: "WITH " + rendered.sql, params: rendered.params}, nil
}
