package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("disk I/O error"), false},
		{"pq_unique", &pq.Error{Code: "23505"}, true},
		{"pq_foreign_key", &pq.Error{Code: "23503"}, true},
		{"pq_syntax", &pq.Error{Code: "42601"}, false},
		{"pgx_unique", &pgconn.PgError{Code: "23505"}, true},
		{"pgx_not_null", &pgconn.PgError{Code: "23502"}, true},
		{"pgx_undefined_table", &pgconn.PgError{Code: "42P01"}, false},
		{"mysql_duplicate", &mysql.MySQLError{Number: 1062}, true},
		{"mysql_parent_row", &mysql.MySQLError{Number: 1451}, true},
		{"mysql_other", &mysql.MySQLError{Number: 1146}, false},
		{"wrapped_pq", fmt.Errorf("dialect/sql: exec: %w", &pq.Error{Code: "23514"}), true},
		{"sqlite_message", errors.New("UNIQUE constraint failed: casing.casing_id"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConstraintError(tt.err))
		})
	}
}
