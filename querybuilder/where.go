package querybuilder

/***** Where clause *****/

// whereClause accumulates the predicate of a WHERE (or HAVING) clause.
//
// The first appended condition establishes the root predicate; subsequent
// conditions combine with the existing predicate using AND or OR. OR wraps
// both sides in parentheses so precedence follows call order. Parameters are
// always flattened in append order, regardless of AND/OR grouping.
//
// A whereClause is never shared across queries; each query owns its clauses
// exclusively and mutates them only through its own fluent methods.
type whereClause struct {
	root Expression
}

func (w *whereClause) and(condition Expression) {
	if w.root.IsEmpty() || w.root.err != nil {
		if w.root.err == nil {
			w.root = condition
		}
		return
	}

	w.root = w.root.append(condition, " AND ")
}

func (w *whereClause) or(condition Expression) {
	if w.root.IsEmpty() || w.root.err != nil {
		if w.root.err == nil {
			w.root = condition
		}
		return
	}

	if condition.err != nil {
		w.root = condition
		return
	}

	if condition.IsEmpty() {
		return
	}

	w.root = Expression{
		sql:    "(" + w.root.sql + ") OR (" + condition.sql + ")",
		params: append(append(ParamsList{}, w.root.params...), condition.params...),
	}
}

func (w *whereClause) isEmpty() bool {
	return w.root.IsEmpty()
}

// toExpression renders the clause with the given keyword (WHERE or HAVING).
// An empty clause renders to an empty expression, emitting no keyword at all.
func (w *whereClause) toExpression(keyword string) (Expression, error) {
	if w.root.err != nil {
		return Expression{}, w.root.err
	}

	if w.root.IsEmpty() {
		return Expression{}, nil
	}

	return Expression{
		sql:    keyword + " " + w.root.sql,
		params: w.root.params,
	}, nil
}
