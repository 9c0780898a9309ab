// Command reloader keeps a cartridge reloading logbook.
//
// The CLI supports:
//   - init: create the logbook tables
//   - list: print the records of one kind
//   - delete: remove one record
//   - import: load a YAML, JSON or MessagePack dataset
//   - export: write every record as a dataset
//   - render: show the SELECT statement a filter produces
//
// Usage:
//
//	reloader [flags] <command>
//
// The storage engine is chosen with --driver (sqlite, postgres or mysql) and
// --database, or with reloader.yaml and RELOADER_* environment variables.
// PostgreSQL is reachable through either lib/pq ("postgres") or pgx ("pgx").
package main

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/reloader/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
