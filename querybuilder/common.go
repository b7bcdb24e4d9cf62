package querybuilder

import (
	"errors"
)

var ErrNoTableSupplied = errors.New("no target table supplied")
var ErrNoValuesSupplied = errors.New("insert statement has no values")
var ErrNoColumnsSupplied = errors.New("insert statement has no columns")
var ErrNoAssignmentsSupplied = errors.New("update statement has no assignments")
var ErrValueCountMismatch = errors.New("values row length does not match column count")
var ErrNegativeLimit = errors.New("limit must not be negative")
var ErrNegativeOffset = errors.New("offset must not be negative")
var ErrInvalidOrderDirection = errors.New("order direction must be ASC or DESC")
var ErrInvalidJoinType = errors.New("invalid join type")
var ErrEmptyCTEName = errors.New("empty CTE name supplied")
var ErrMissingExecutor = errors.New("no query executor attached")
var ErrBuildingQueryFailed = errors.New("building query failed")

// SQLString is a type alias for string, representing rendered SQL text.
type SQLString = string

// ParamsList is a type alias for a slice of bound parameter values, ordered
// to match the positional placeholders in the SQL text they belong to.
type ParamsList = []any
