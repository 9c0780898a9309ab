package store

import (
	_ "embed"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements returns the statements of the embedded schema.
func schemaStatements() []string {
	var stmts []string
	for _, s := range strings.Split(schemaSQL, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
