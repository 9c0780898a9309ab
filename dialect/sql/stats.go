package sql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/syssam/reloader/dialect"
)

// statementKey carries the facade's statement through the driver chain.
type statementKey struct{}

// statement identifies a facade statement while it executes.
type statement struct {
	id  string
	cmd Command
}

func withStatement(ctx context.Context, id string, cmd Command) context.Context {
	return context.WithValue(ctx, statementKey{}, statement{id: id, cmd: cmd})
}

// statementFrom returns the facade statement being executed. Statements run
// directly on the driver (schema DDL) have none, and report command 0.
func statementFrom(ctx context.Context) statement {
	s, _ := ctx.Value(statementKey{}).(statement)
	return s
}

// commandLabel names a command in statistics and logs.
func commandLabel(c Command) string {
	if c < CommandSelect || c > CommandDelete {
		return "other"
	}
	return strings.ToLower(c.String())
}

type counters struct {
	count    atomic.Int64
	errors   atomic.Int64
	slow     atomic.Int64
	duration atomic.Int64 // nanoseconds
}

// Statistics counts executed statements per command. Index 0 collects
// statements that did not come from a facade statement.
type Statistics struct {
	by [CommandDelete + 1]counters
}

// CommandStats is a point-in-time view of one command's counters.
type CommandStats struct {
	Count    int64
	Errors   int64
	Slow     int64
	Duration time.Duration
}

// StatsSnapshot holds the counters of every command seen so far.
type StatsSnapshot map[Command]CommandStats

// Snapshot returns the current counters. Commands never executed are omitted.
func (s *Statistics) Snapshot() StatsSnapshot {
	out := make(StatsSnapshot)
	for i := range s.by {
		c := &s.by[i]
		n := c.count.Load()
		if n == 0 {
			continue
		}
		out[Command(i)] = CommandStats{
			Count:    n,
			Errors:   c.errors.Load(),
			Slow:     c.slow.Load(),
			Duration: time.Duration(c.duration.Load()),
		}
	}
	return out
}

// Total sums the counters of all commands.
func (s StatsSnapshot) Total() CommandStats {
	var t CommandStats
	for _, c := range s {
		t.Count += c.Count
		t.Errors += c.Errors
		t.Slow += c.Slow
		t.Duration += c.Duration
	}
	return t
}

// String returns e.g. "select=3 insert=1 other=5 errors=0 slow=0 duration=4ms".
func (s StatsSnapshot) String() string {
	var b strings.Builder
	for c := Command(0); c <= CommandDelete; c++ {
		if st, ok := s[c]; ok {
			fmt.Fprintf(&b, "%s=%d ", commandLabel(c), st.Count)
		}
	}
	t := s.Total()
	fmt.Fprintf(&b, "errors=%d slow=%d duration=%s", t.Errors, t.Slow, t.Duration)
	return b.String()
}

// SlowStatement describes a statement that ran longer than the threshold.
type SlowStatement struct {
	ID       string // facade statement id, empty for direct driver calls
	Command  Command
	Query    string
	Args     []any
	Duration time.Duration
}

// SlowStatementHook is called for every slow statement.
type SlowStatementHook func(ctx context.Context, s SlowStatement)

// StatsDriver wraps a Driver and counts the statements executed through it.
type StatsDriver struct {
	dialect.Driver
	stats     *Statistics
	threshold time.Duration
	slowHook  SlowStatementHook
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the duration above which a statement is slow.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.threshold = d
	}
}

// WithSlowStatementHook sets a callback for slow statements.
func WithSlowStatementHook(hook SlowStatementHook) StatsOption {
	return func(s *StatsDriver) {
		s.slowHook = hook
	}
}

// WithSlowStatementLog warns about slow statements on logger, or on
// slog.Default() when logger is nil.
func WithSlowStatementLog(logger *slog.Logger) StatsOption {
	return WithSlowStatementHook(func(ctx context.Context, s SlowStatement) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.WarnContext(ctx, "slow statement",
			"statement_id", s.ID,
			"command", commandLabel(s.Command),
			"duration", s.Duration,
			"sql", s.Query,
			"args", s.Args,
		)
	})
}

// NewStatsDriver wraps drv with per-command statistics.
//
//	drv, _ := sql.OpenDriver(ctx, "sqlite", "reloading.db")
//	sd := sql.NewStatsDriver(drv, sql.WithSlowStatementLog(nil))
//	db := sql.NewDatabase(sd)
func NewStatsDriver(drv dialect.Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		Driver:    drv,
		stats:     &Statistics{},
		threshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Statistics returns the counters collected so far.
func (d *StatsDriver) Statistics() *Statistics { return d.stats }

// Query runs a query and records it.
func (d *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.record(ctx, query, args, time.Since(start), err)
	return err
}

// Exec runs a statement and records it.
func (d *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.record(ctx, query, args, time.Since(start), err)
	return err
}

func (d *StatsDriver) record(ctx context.Context, query string, args any, took time.Duration, err error) {
	st := statementFrom(ctx)
	c := &d.stats.by[0]
	if st.cmd >= CommandSelect && st.cmd <= CommandDelete {
		c = &d.stats.by[st.cmd]
	}
	c.count.Add(1)
	c.duration.Add(int64(took))
	if err != nil {
		c.errors.Add(1)
	}
	if took <= d.threshold {
		return
	}
	c.slow.Add(1)
	if d.slowHook != nil {
		argv, _ := args.([]any)
		d.slowHook(ctx, SlowStatement{ID: st.id, Command: st.cmd, Query: query, Args: argv, Duration: took})
	}
}

// DebugDriver wraps a Driver and logs every statement with its arguments.
type DebugDriver struct {
	dialect.Driver
	logger *slog.Logger
}

// NewDebugDriver logs statements on logger, or on slog.Default() when nil.
func NewDebugDriver(drv dialect.Driver, logger *slog.Logger) *DebugDriver {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebugDriver{Driver: drv, logger: logger}
}

// Query logs and runs a query.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	d.log(ctx, "query", query, args)
	return d.Driver.Query(ctx, query, args, v)
}

// Exec logs and runs a statement.
func (d *DebugDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.log(ctx, "exec", query, args)
	return d.Driver.Exec(ctx, query, args, v)
}

func (d *DebugDriver) log(ctx context.Context, msg, query string, args any) {
	st := statementFrom(ctx)
	d.logger.DebugContext(ctx, msg,
		"statement_id", st.id,
		"command", commandLabel(st.cmd),
		"sql", query,
		"args", args,
	)
}

var (
	_ dialect.Driver = (*StatsDriver)(nil)
	_ dialect.Driver = (*DebugDriver)(nil)
)
