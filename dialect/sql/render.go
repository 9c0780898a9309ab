package sql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/reloader"
	"github.com/syssam/reloader/dialect"
)

// renderer writes one statement. With bind set, values become placeholders of
// the dialect and are collected in args; otherwise they are written as literals.
type renderer struct {
	strings.Builder
	bind    bool
	dialect string
	args    []any
}

func (r *renderer) render(b *Builder) error {
	switch b.cmd {
	case CommandSelect:
		return renderSelect(r, b)
	case CommandInsert:
		return renderInsert(r, b)
	case CommandUpdate:
		return renderUpdate(r, b)
	case CommandDelete:
		return renderDelete(r, b)
	default:
		return reloader.NewValidationError("command", reloader.ErrUnknownCommand)
	}
}

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores, dots for schema.name)
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// identifier writes name after checking it. "*" is accepted in the SELECT
// projection only.
func (r *renderer) identifier(clause, name string) error {
	if !isValidIdentifier(name) && (name != "*" || clause != "columns") {
		return reloader.NewValidationError(clause, fmt.Errorf("%w: %q", reloader.ErrInvalidIdentifier, name))
	}
	r.WriteString(name)
	return nil
}

// value writes v, either as a literal or as the next placeholder.
func (r *renderer) value(clause string, v Value) error {
	if !v.Valid() {
		return reloader.NewValidationError(clause, reloader.ErrInvalidValue)
	}
	if !r.bind {
		r.WriteString(v.String())
		return nil
	}
	r.args = append(r.args, v.Arg())
	r.WriteString(dialect.Placeholder(r.dialect, len(r.args)))
	return nil
}

// list writes identifiers joined by ",". An empty list is a validation error.
func (r *renderer) list(clause string, items []string) error {
	if _, err := joinList(items); err != nil {
		return reloader.NewValidationError(clause, err)
	}
	for i, item := range items {
		if i > 0 {
			r.WriteByte(',')
		}
		if err := r.identifier(clause, item); err != nil {
			return err
		}
	}
	return nil
}

// joinList joins items with ",". A single item is returned as is.
func joinList(items []string) (string, error) {
	switch len(items) {
	case 0:
		return "", reloader.ErrNoListItems
	case 1:
		return items[0], nil
	default:
		return strings.Join(items, ","), nil
	}
}

// singleTable writes the only table of an INSERT, UPDATE or DELETE.
func (r *renderer) singleTable(b *Builder) error {
	if len(b.tables) != 1 {
		return reloader.NewValidationError("table", reloader.ErrTableCount)
	}
	return r.identifier("table", b.tables[0])
}

// where writes " WHERE <chain>" when conditions are present.
func (r *renderer) where(b *Builder) error {
	if len(b.conds) == 0 {
		if len(b.logical) > 0 {
			return reloader.NewValidationError("where", reloader.ErrOperatorCount)
		}
		return nil
	}
	r.WriteString(" WHERE ")
	return renderConditions(r, b.conds, b.logical)
}

// renderConditions writes "f0 op0 v0 L0 f1 op1 v1 ..." with the logical
// operators interleaved in order.
func renderConditions(r *renderer, conds []Condition, logical []Op) error {
	if len(logical) != max(len(conds)-1, 0) {
		return reloader.NewValidationError("where", reloader.ErrOperatorCount)
	}
	for i, c := range conds {
		if i > 0 {
			op := logical[i-1]
			if !op.IsLogical() {
				return reloader.NewValidationError("where", reloader.ErrOperatorFamily)
			}
			r.WriteByte(' ')
			r.WriteString(op.String())
			r.WriteByte(' ')
		}
		if !c.Op.IsComparison() {
			return reloader.NewValidationError("where", reloader.ErrOperatorFamily)
		}
		if c.Field == "" {
			return reloader.NewValidationError("where", reloader.ErrNoListItems)
		}
		if err := r.identifier("where", c.Field); err != nil {
			return err
		}
		r.WriteString(c.Op.String())
		if err := r.value("where", c.Value); err != nil {
			return err
		}
	}
	return nil
}

// renderSelect writes SELECT <columns> FROM <tables>[ WHERE ...].
func renderSelect(r *renderer, b *Builder) error {
	r.WriteString("SELECT ")
	if err := r.list("columns", b.columns); err != nil {
		return err
	}
	r.WriteString(" FROM ")
	if err := r.list("tables", b.tables); err != nil {
		return err
	}
	return r.where(b)
}

// renderInsert writes INSERT INTO <table>[ (<fields>)] VALUES (<row>),...
func renderInsert(r *renderer, b *Builder) error {
	r.WriteString("INSERT INTO ")
	if err := r.singleTable(b); err != nil {
		return err
	}
	if len(b.fields) > 0 {
		r.WriteString(" (")
		if err := r.list("fields", b.fields); err != nil {
			return err
		}
		r.WriteByte(')')
	}
	if len(b.rows) == 0 {
		return reloader.NewValidationError("values", reloader.ErrNoListItems)
	}
	width := len(b.fields)
	if width == 0 {
		width = len(b.rows[0])
	}
	r.WriteString(" VALUES ")
	for i, row := range b.rows {
		if len(row) == 0 {
			return reloader.NewValidationError("values", reloader.ErrNoListItems)
		}
		if len(row) != width {
			return reloader.NewValidationError("values", reloader.ErrValueCount)
		}
		if i > 0 {
			r.WriteByte(',')
		}
		r.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				r.WriteByte(',')
			}
			if err := r.value("values", v); err != nil {
				return err
			}
		}
		r.WriteByte(')')
	}
	return nil
}

// renderUpdate writes UPDATE <table> SET f0=v0,...[ WHERE ...].
func renderUpdate(r *renderer, b *Builder) error {
	r.WriteString("UPDATE ")
	if err := r.singleTable(b); err != nil {
		return err
	}
	if len(b.fields) == 0 {
		return reloader.NewValidationError("fields", reloader.ErrNoListItems)
	}
	if len(b.rows) != 1 {
		return reloader.NewValidationError("values", reloader.ErrRowCount)
	}
	row := b.rows[0]
	if len(row) != len(b.fields) {
		return reloader.NewValidationError("values", reloader.ErrValueCount)
	}
	r.WriteString(" SET ")
	for i, f := range b.fields {
		if i > 0 {
			r.WriteByte(',')
		}
		if err := r.identifier("fields", f); err != nil {
			return err
		}
		r.WriteByte('=')
		if err := r.value("values", row[i]); err != nil {
			return err
		}
	}
	return r.where(b)
}

// renderDelete writes DELETE FROM <table>[ WHERE ...].
func renderDelete(r *renderer, b *Builder) error {
	r.WriteString("DELETE FROM ")
	if err := r.singleTable(b); err != nil {
		return err
	}
	return r.where(b)
}
