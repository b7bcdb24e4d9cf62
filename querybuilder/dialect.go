package querybuilder

import (
	"github.com/jmoiron/sqlx"
)

// Dialect controls how positional placeholders are rendered in the final SQL.
//
// Clauses always render `?` placeholders internally; the dialect rebinding is
// applied once, at build time, so the parameter ordering invariant of
// Expression is untouched by dialect-specific rendering.
type Dialect struct {
	name     string
	bindType int
}

var (
	// DialectDefault keeps `?` placeholders (MySQL, SQLite, sqlmock).
	DialectDefault = Dialect{name: "default", bindType: sqlx.QUESTION}

	// DialectPostgres rewrites placeholders to `$1, $2, ...`.
	DialectPostgres = Dialect{name: "postgres", bindType: sqlx.DOLLAR}

	// DialectMySQL keeps `?` placeholders.
	DialectMySQL = Dialect{name: "mysql", bindType: sqlx.QUESTION}
)

// Name returns the dialect identifier.
func (d Dialect) Name() string {
	return d.name
}

// rebind rewrites `?` placeholders into the dialect's bindvar style.
func (d Dialect) rebind(sql SQLString) SQLString {
	if d.bindType == sqlx.QUESTION || d.bindType == sqlx.UNKNOWN {
		return sql
	}

	return sqlx.Rebind(d.bindType, sql)
}
