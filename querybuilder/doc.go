// Package querybuilder provides a fluent SQL query builder composing
// expressions and clause builders into parameterized statements.
//
// The core abstractions:
//   - Expression: a renderable SQL fragment paired with its bound parameters,
//     with the invariant that the parameter order matches the positional
//     placeholders in the SQL text exactly, transitively through nesting
//   - Clause builders (From, Join, Where, Order, Limit, Returning,
//     Assignment, With): additive accumulators, one per logical SQL clause
//   - SelectQuery, InsertQuery, UpdateQuery, DeleteQuery: compose clauses in
//     a fixed rendering order, cache the render behind a built flag, and
//     delegate execution to an injected Executor
//
// Validation is deferred: malformed clause combinations (UPDATE without a
// target table, a negative LIMIT) surface at build or execution time, never
// at the mutating call.
//
// Common usage pattern:
//
//	query := querybuilder.NewUpdate("users").
//		Assign("name", "Bob").
//		WhereExpr(querybuilder.C("id", "=", 5)).
//		UsingExecutor(engine)
//
//	rowsAffected, err := query.Exec(ctx)
//	if err != nil {
//		// handle error
//	}
//
// Query and clause objects are single-owner mutable builders: a Query must
// not be mutated concurrently from multiple goroutines.
package querybuilder
