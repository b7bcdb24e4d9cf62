package querybuilder

/***** Limit / Offset clause *****/

// limitClause holds the optional LIMIT and OFFSET bounds.
//
// Bounds are validated at build time, before any SQL is generated; a negative
// value is an invalid-argument error.
type limitClause struct {
	limit  *int64
	offset *int64
}

func (l *limitClause) setLimit(limit int64) {
	l.limit = &limit
}

func (l *limitClause) setOffset(offset int64) {
	l.offset = &offset
}

func (l *limitClause) isEmpty() bool {
	return l.limit == nil && l.offset == nil
}

func (l *limitClause) validate() error {
	if l.limit != nil && *l.limit < 0 {
		return ErrNegativeLimit
	}

	if l.offset != nil && *l.offset < 0 {
		return ErrNegativeOffset
	}

	return nil
}

func (l *limitClause) toExpression() (Expression, error) {
	if err := l.validate(); err != nil {
		return Expression{}, err
	}

	rendered := Expression{}

	if l.limit != nil {
		rendered = rendered.append(Expression{sql: "LIMIT ?", params: ParamsList{*l.limit}}, " ")
	}

	if l.offset != nil {
		rendered = rendered.append(Expression{sql: "OFFSET ?", params: ParamsList{*l.offset}}, " ")
	}

	return rendered, nil
}
