package sql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL SQLSTATE codes for constraint violations (Class 23).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// MySQL error numbers for constraint violations.
const (
	mysqlDuplicateEntry         = 1062
	mysqlForeignKeyParent       = 1451 // Cannot delete or update a parent row
	mysqlForeignKeyChild        = 1452 // Cannot add or update a child row
	mysqlCheckConstraintViolate = 3819
)

// IsConstraintError reports whether err resulted from a storage constraint
// violation (unique, primary key, foreign key, check or not-null) in any of
// the supported engines.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended result codes keep the primary code in the low byte.
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		switch pe.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return true
		}
		return false
	}
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return true
		}
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlDuplicateEntry, mysqlForeignKeyParent, mysqlForeignKeyChild, mysqlCheckConstraintViolate:
			return true
		}
		return false
	}
	// Fallback to string matching for drivers that don't expose typed errors.
	msg := err.Error()
	for _, s := range []string{"constraint failed", "violates", "Duplicate entry"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
