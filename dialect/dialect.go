package dialect

import (
	"context"
	"strconv"
	"strings"
)

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// PGX is the database/sql driver name registered by pgx. It speaks Postgres.
const PGX = "pgx"

// ExecQuerier wraps the two methods for executing statements.
//
// args is always a []any holding the bound values of the statement.
// For Exec, v is nil or a *sql.Result; for Query, v is a *sql.Rows.
type ExecQuerier interface {
	Exec(ctx context.Context, query string, args, v any) error
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for the
// statement builder to reach a storage engine.
type Driver interface {
	ExecQuerier
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Placeholder returns the bind parameter marker for the n'th (1-based)
// argument of a statement in the given dialect.
func Placeholder(name string, n int) string {
	if name == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Supported reports whether name is one of the known dialects.
func Supported(name string) bool {
	switch name {
	case MySQL, SQLite, Postgres:
		return true
	}
	return false
}

// Of returns the dialect spoken by the database/sql driver registered under
// driverName. Names such as "sqlite3" or "postgres-otel" map by prefix;
// unknown names are returned unchanged.
func Of(driverName string) string {
	if strings.HasPrefix(driverName, PGX) {
		return Postgres
	}
	for _, name := range []string{MySQL, SQLite, Postgres} {
		if strings.HasPrefix(driverName, name) {
			return name
		}
	}
	return driverName
}
