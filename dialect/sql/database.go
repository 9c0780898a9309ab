package sql

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/syssam/reloader"
	"github.com/syssam/reloader/dialect"
)

// Database owns a storage driver and at most one statement under construction.
//
// A Database is either empty or building one statement. Begin* moves it from
// empty to building, Reset moves it back. Clause methods are valid only while
// building. Misuse is recorded as a *reloader.StateError and the offending
// call has no effect. An error recorded while empty is reported by Err,
// Render and Build until the next successful Begin*. A Begin* refused while
// building is reported until Reset, since the open statement is no longer the
// one the chain asked for.
//
//	db.BeginSelect().
//	    AddColumn("name").
//	    AddTable("casing").
//	    AddCondition(sql.EQ("casing_id", sql.Integer(1)))
//	text, err := db.Render()
//	db.Reset()
//
// A Database is not safe for concurrent use. Callers must serialize the whole
// Begin…Reset cycle.
type Database struct {
	drv    dialect.Driver
	logger *slog.Logger
	stats  *Statistics

	b   *Builder // nil while empty
	id  string   // statement id, for logs
	err error
}

// Option configures a Database.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	debug     bool
	withStats bool
	stats     []StatsOption
}

// WithLogger sets the logger used by the Database and its debug driver.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebug logs every executed statement with its bound arguments.
func WithDebug() Option {
	return func(o *options) {
		o.debug = true
	}
}

// WithStats counts executed statements per command, readable through
// Database.Stats.
func WithStats(opts ...StatsOption) Option {
	return func(o *options) {
		o.withStats = true
		o.stats = append(o.stats, opts...)
	}
}

// Open opens the storage engine and returns a Database owning its connection.
// Failing to open or reach the engine is returned to the caller.
func Open(ctx context.Context, driverName, source string, opts ...Option) (*Database, error) {
	drv, err := OpenDriver(ctx, driverName, source)
	if err != nil {
		return nil, err
	}
	return NewDatabase(drv, opts...), nil
}

// NewDatabase returns an empty Database over the given driver.
func NewDatabase(drv dialect.Driver, opts ...Option) *Database {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	d := &Database{logger: o.logger}
	if o.withStats {
		sd := NewStatsDriver(drv, o.stats...)
		d.stats = sd.Statistics()
		drv = sd
	}
	if o.debug {
		drv = NewDebugDriver(drv, o.logger)
	}
	d.drv = drv
	return d
}

// Driver returns the driver statements are executed with.
func (d *Database) Driver() dialect.Driver { return d.drv }

// Dialect returns the dialect of the underlying driver.
func (d *Database) Dialect() string { return d.drv.Dialect() }

// Stats returns the execution statistics, or nil if WithStats was not given.
func (d *Database) Stats() *Statistics { return d.stats }

// Close closes the storage connection.
func (d *Database) Close() error { return d.drv.Close() }

// Building reports whether a statement is under construction, and its command.
func (d *Database) Building() (Command, bool) {
	if d.b == nil {
		return 0, false
	}
	return d.b.cmd, true
}

// Err returns the first protocol error recorded since the last successful
// Begin* or Reset.
func (d *Database) Err() error { return d.err }

func (d *Database) fail(op string, err error) {
	if d.err == nil {
		d.err = reloader.NewStateError(op, err)
	}
}

func (d *Database) begin(cmd Command) *Database {
	if d.b != nil {
		d.fail("begin "+cmd.String(), reloader.ErrBuilderOpen)
		return d
	}
	d.b = NewBuilder(cmd)
	d.id = uuid.NewString()
	d.err = nil
	d.logger.Debug("begin statement", "command", cmd.String(), "statement_id", d.id)
	return d
}

// BeginSelect starts a SELECT statement.
func (d *Database) BeginSelect() *Database { return d.begin(CommandSelect) }

// BeginInsert starts an INSERT statement.
func (d *Database) BeginInsert() *Database { return d.begin(CommandInsert) }

// BeginUpdate starts an UPDATE statement.
func (d *Database) BeginUpdate() *Database { return d.begin(CommandUpdate) }

// BeginDelete starts a DELETE statement.
func (d *Database) BeginDelete() *Database { return d.begin(CommandDelete) }

// with applies fn to the open builder, or records a StateError.
func (d *Database) with(op string, fn func(*Builder)) *Database {
	if d.b == nil {
		d.fail(op, reloader.ErrNoBuilder)
		return d
	}
	fn(d.b)
	return d
}

// AddTable appends a table name.
func (d *Database) AddTable(name string) *Database {
	return d.with("add table", func(b *Builder) { b.AddTable(name) })
}

// AddColumn appends a column to the SELECT projection.
func (d *Database) AddColumn(name string) *Database {
	return d.with("add column", func(b *Builder) { b.AddColumn(name) })
}

// AddField appends a target field for INSERT or UPDATE.
func (d *Database) AddField(name string) *Database {
	return d.with("add field", func(b *Builder) { b.AddField(name) })
}

// AddValue appends a value to the open value row.
func (d *Database) AddValue(v Value) *Database {
	return d.with("add value", func(b *Builder) { b.AddValue(v) })
}

// BeginValueRow starts a new value row.
func (d *Database) BeginValueRow() *Database {
	return d.with("begin value row", func(b *Builder) { b.BeginValueRow() })
}

// EndValueRow closes the open value row.
func (d *Database) EndValueRow() *Database {
	return d.with("end value row", func(b *Builder) { b.EndValueRow() })
}

// AddCondition appends a WHERE condition.
func (d *Database) AddCondition(c Condition) *Database {
	return d.with("add condition", func(b *Builder) { b.AddCondition(c) })
}

// AddLogicalOperator appends the operator joining two consecutive conditions.
func (d *Database) AddLogicalOperator(op Op) *Database {
	return d.with("add logical operator", func(b *Builder) { b.AddLogicalOperator(op) })
}

// Render returns the statement under construction with values written as
// literals. It is meant for display and logs only.
func (d *Database) Render() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if d.b == nil {
		return "", reloader.NewStateError("render", reloader.ErrNoBuilder)
	}
	return d.b.Render()
}

// Build returns the statement under construction in the placeholder syntax of
// the driver's dialect, with its arguments.
func (d *Database) Build() (string, []any, error) {
	if d.err != nil {
		return "", nil, d.err
	}
	if d.b == nil {
		return "", nil, reloader.NewStateError("build", reloader.ErrNoBuilder)
	}
	return d.b.Query(d.drv.Dialect())
}

// Reset discards the statement under construction and any recorded error.
func (d *Database) Reset() {
	if d.b != nil {
		d.logger.Debug("reset statement", "command", d.b.cmd.String(), "statement_id", d.id)
	}
	d.b, d.id, d.err = nil, "", nil
}

// Exec builds the statement and executes it. The statement stays open.
func (d *Database) Exec(ctx context.Context) (Result, error) {
	query, args, err := d.Build()
	if err != nil {
		return nil, err
	}
	var res Result
	if err := d.drv.Exec(withStatement(ctx, d.id, d.b.cmd), query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Query builds the statement and runs it, storing the result set in rows.
// The statement stays open.
func (d *Database) Query(ctx context.Context, rows *Rows) error {
	query, args, err := d.Build()
	if err != nil {
		return err
	}
	return d.drv.Query(withStatement(ctx, d.id, d.b.cmd), query, args, rows)
}
