// Package dialect provides the storage dialect abstraction for reloader.
//
// This package defines the interfaces used to hand rendered statements to a
// storage engine, allowing the statement builder to target SQLite (the
// default logbook store), PostgreSQL and MySQL.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// The dialect decides the bind parameter syntax of a built statement:
// "?" for SQLite and MySQL, "$1", "$2", ... for PostgreSQL.
//
// # Driver Interface
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Close() error
//	    Dialect() string
//	}
//
// # Usage
//
//	import (
//	    "github.com/syssam/reloader/dialect"
//	    "github.com/syssam/reloader/dialect/sql"
//	)
//
//	db, err := sql.Open(dialect.SQLite, "reloading.db")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
// # Sub-packages
//
//   - dialect/sql: statement builder, Database facade and driver implementation
package dialect
