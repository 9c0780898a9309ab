package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/reloader/dialect/sql"
)

// comparison symbols, two-character forms first.
var comparisons = []struct {
	sym string
	op  sql.Op
}{
	{"<>", sql.OpNEQ},
	{"!=", sql.OpNEQ},
	{">=", sql.OpGTE},
	{"<=", sql.OpLTE},
	{"=", sql.OpEQ},
	{">", sql.OpGT},
	{"<", sql.OpLT},
}

// ParseCondition parses a "field<op>value" filter such as "max_psi>=35000"
// or "name='.357 Magnum'".
func ParseCondition(expr string) (sql.Condition, error) {
	at := strings.IndexAny(expr, "<>=!")
	if at <= 0 {
		return sql.Condition{}, fmt.Errorf("invalid condition %q: want field<op>value", expr)
	}
	field := strings.TrimSpace(expr[:at])
	rest := expr[at:]
	for _, c := range comparisons {
		if strings.HasPrefix(rest, c.sym) {
			return sql.Cond(field, c.op, ParseValue(strings.TrimSpace(rest[len(c.sym):]))), nil
		}
	}
	return sql.Condition{}, fmt.Errorf("invalid condition %q: unknown operator", expr)
}

// ParseValue types a literal: integers and reals are numeric, quoted or
// other input is text.
func ParseValue(s string) sql.Value {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return sql.Text(strings.ReplaceAll(s[1:len(s)-1], "''", "'"))
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sql.Integer(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return sql.Real(f)
	}
	return sql.Text(s)
}

// ParseLogical parses "and", "or" or "not".
func ParseLogical(s string) (sql.Op, error) {
	switch strings.ToLower(s) {
	case "and":
		return sql.OpAnd, nil
	case "or":
		return sql.OpOr, nil
	case "not":
		return sql.OpNot, nil
	}
	return 0, fmt.Errorf("invalid logical operator %q: want and, or or not", s)
}
