package querybuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

func Test_DeleteQuery_Rendering(t *testing.T) {
	tests := []struct {
		name           string
		build          func() *querybuilder.DeleteQuery
		expectedSQL    string
		expectedParams []any
	}{
		{
			name: "delete_with_single_condition",
			build: func() *querybuilder.DeleteQuery {
				return querybuilder.NewDelete("users").Where("id = ?", 5)
			},
			expectedSQL:    "DELETE FROM users WHERE id = ?",
			expectedParams: []any{5},
		},
		{
			name: "delete_without_conditions_renders_no_where",
			build: func() *querybuilder.DeleteQuery {
				return querybuilder.NewDelete("sessions")
			},
			expectedSQL: "DELETE FROM sessions",
		},
		{
			name: "or_where_parenthesizes_both_sides",
			build: func() *querybuilder.DeleteQuery {
				return querybuilder.NewDelete("users").
					Where("blocked = ?", true).
					OrWhere("deleted_at < ?", "2024-01-01")
			},
			expectedSQL:    "DELETE FROM users WHERE (blocked = ?) OR (deleted_at < ?)",
			expectedParams: []any{true, "2024-01-01"},
		},
		{
			name: "delete_with_order_limit_and_returning",
			build: func() *querybuilder.DeleteQuery {
				return querybuilder.NewDelete("events").
					Where("processed = ?", true).
					OrderBy("occurred_at", querybuilder.Asc).
					Limit(100).
					Returning("id")
			},
			expectedSQL:    "DELETE FROM events WHERE processed = ? ORDER BY occurred_at ASC LIMIT ? RETURNING id",
			expectedParams: []any{true, int64(100)},
		},
		{
			name: "from_overrides_constructor_table",
			build: func() *querybuilder.DeleteQuery {
				return querybuilder.NewDelete("users").From("archived_users").Where("id = ?", 1)
			},
			expectedSQL:    "DELETE FROM archived_users WHERE id = ?",
			expectedParams: []any{1},
		},
		{
			name: "delete_with_cte_puts_cte_parameters_first",
			build: func() *querybuilder.DeleteQuery {
				expired := querybuilder.NewSelect("id").From("tokens").Where("expires_at < ?", "2024-01-01")

				return querybuilder.NewDelete("sessions").
					With("expired_tokens", expired).
					Where("token_id IN (SELECT id FROM expired_tokens)")
			},
			expectedSQL: "WITH expired_tokens AS (SELECT id FROM tokens WHERE expires_at < ?) " +
				"DELETE FROM sessions WHERE token_id IN (SELECT id FROM expired_tokens)",
			expectedParams: []any{"2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.build()

			sql, err := query.ToSQL()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sql)

			params, err := query.Params()
			require.NoError(t, err)

			if tt.expectedParams == nil {
				assert.Empty(t, params)
			} else {
				assert.Equal(t, tt.expectedParams, params)
			}
		})
	}
}

func Test_DeleteQuery_BuildErrors(t *testing.T) {
	err := querybuilder.NewDelete("").Where("id = ?", 1).Build()
	assert.ErrorIs(t, err, querybuilder.ErrNoTableSupplied)

	err = querybuilder.NewDelete("users").Limit(-1).Build()
	assert.ErrorIs(t, err, querybuilder.ErrNegativeLimit)
}

func Test_DeleteQuery_DialectRebinding(t *testing.T) {
	query := querybuilder.NewDelete("users").
		UsingDialect(querybuilder.DialectPostgres).
		Where("id = ?", 5).
		AndWhere("active = ?", false)

	sql, err := query.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = $1 AND active = $2", sql)
}
