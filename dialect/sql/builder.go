package sql

import "fmt"

// Command is the kind of statement a Builder produces.
type Command uint8

// Commands.
const (
	CommandSelect Command = iota + 1
	CommandInsert
	CommandUpdate
	CommandDelete
)

// String returns the SQL keyword of the command.
func (c Command) String() string {
	switch c {
	case CommandSelect:
		return "SELECT"
	case CommandInsert:
		return "INSERT"
	case CommandUpdate:
		return "UPDATE"
	case CommandDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Builder accumulates the clauses of a single statement.
//
// Clause methods only append; nothing is validated until the statement is
// rendered, so a Builder may be filled in any order. Render and Query do not
// modify the Builder and may be called repeatedly.
type Builder struct {
	cmd     Command
	tables  []string
	columns []string
	fields  []string
	rows    [][]Value
	rowOpen bool
	conds   []Condition
	logical []Op
}

// NewBuilder returns an empty Builder for the given command.
func NewBuilder(cmd Command) *Builder {
	return &Builder{cmd: cmd}
}

// Select returns a Builder for a SELECT statement.
//
//	sql.Select().AddColumn("*").AddTable("projectile")
func Select() *Builder { return NewBuilder(CommandSelect) }

// Insert returns a Builder for an INSERT statement.
func Insert() *Builder { return NewBuilder(CommandInsert) }

// Update returns a Builder for an UPDATE statement.
func Update() *Builder { return NewBuilder(CommandUpdate) }

// Delete returns a Builder for a DELETE statement.
func Delete() *Builder { return NewBuilder(CommandDelete) }

// Command returns the command the Builder was created for.
func (b *Builder) Command() Command { return b.cmd }

// AddTable appends a table name.
func (b *Builder) AddTable(name string) *Builder {
	b.tables = append(b.tables, name)
	return b
}

// AddColumn appends a column to the SELECT projection.
func (b *Builder) AddColumn(name string) *Builder {
	b.columns = append(b.columns, name)
	return b
}

// AddField appends a target field for INSERT or UPDATE.
func (b *Builder) AddField(name string) *Builder {
	b.fields = append(b.fields, name)
	return b
}

// BeginValueRow starts a new value row. A row left open is closed implicitly.
func (b *Builder) BeginValueRow() *Builder {
	b.rows = append(b.rows, []Value{})
	b.rowOpen = true
	return b
}

// AddValue appends v to the open value row, starting a row if none is open.
func (b *Builder) AddValue(v Value) *Builder {
	if !b.rowOpen {
		b.BeginValueRow()
	}
	last := len(b.rows) - 1
	b.rows[last] = append(b.rows[last], v)
	return b
}

// AddValues appends each of vs to the open value row.
func (b *Builder) AddValues(vs ...Value) *Builder {
	for _, v := range vs {
		b.AddValue(v)
	}
	return b
}

// EndValueRow closes the open value row.
func (b *Builder) EndValueRow() *Builder {
	b.rowOpen = false
	return b
}

// AddCondition appends a WHERE condition.
func (b *Builder) AddCondition(c Condition) *Builder {
	b.conds = append(b.conds, c)
	return b
}

// AddLogicalOperator appends the operator joining the previous condition
// with the next one.
func (b *Builder) AddLogicalOperator(op Op) *Builder {
	b.logical = append(b.logical, op)
	return b
}

// Render returns the statement with every value written as a literal.
//
// The literal form is meant for logs and diagnostics. Use Query to obtain the
// placeholder form that is sent to the storage engine.
func (b *Builder) Render() (string, error) {
	r := &renderer{}
	if err := r.render(b); err != nil {
		return "", err
	}
	return r.String(), nil
}

// Query returns the statement in the placeholder syntax of the given dialect,
// along with the bound arguments in placeholder order.
func (b *Builder) Query(dialect string) (string, []any, error) {
	r := &renderer{bind: true, dialect: dialect}
	if err := r.render(b); err != nil {
		return "", nil, err
	}
	return r.String(), r.args, nil
}
