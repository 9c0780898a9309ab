// Package store maps logbook records to and from the storage engine.
//
// Every statement is built through a single sql.Database. The Store holds a
// mutex across each begin/build/reset cycle so it can be shared by goroutines.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/syssam/reloader"
	"github.com/syssam/reloader/dialect/sql"
	"github.com/syssam/reloader/reloading"
)

// Store reads and writes logbook records.
type Store struct {
	mu     sync.Mutex
	db     *sql.Database
	logger *slog.Logger
}

// New returns a Store over the given Database.
func New(db *sql.Database, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// Database returns the underlying Database.
func (s *Store) Database() *sql.Database { return s.db }

// Init creates the logbook tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stmt := range schemaStatements() {
		if err := s.db.Driver().Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	s.logger.Debug("schema ready", "tables", len(reloading.Tables))
	return nil
}

// run serializes one statement cycle on the Database.
func (s *Store) run(fn func(db *sql.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.db.Reset()
	return fn(s.db)
}

// recordPtr constrains a type parameter to pointers of record type T.
type recordPtr[T any] interface {
	*T
	reloading.Record
}

// where adds the conditions to the open statement, joined by AND.
func where(db *sql.Database, conds []sql.Condition) {
	for i, c := range conds {
		if i > 0 {
			db.AddLogicalOperator(sql.OpAnd)
		}
		db.AddCondition(c)
	}
}

// List returns the records of type T matching all conditions, in key order
// of the storage engine.
func List[T any, P recordPtr[T]](ctx context.Context, s *Store, conds ...sql.Condition) ([]T, error) {
	var out []T
	err := s.run(func(db *sql.Database) error {
		var zero T
		proto := P(&zero)
		db.BeginSelect().AddTable(proto.Table())
		for _, c := range proto.Columns() {
			db.AddColumn(c)
		}
		where(db, conds)
		rows := &sql.Rows{}
		if err := db.Query(ctx, rows); err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v T
			if err := rows.Scan(P(&v).Dest()...); err != nil {
				return fmt.Errorf("store: scan %s: %w", proto.Table(), err)
			}
			out = append(out, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Find returns the record of type T with the given key.
func Find[T any, P recordPtr[T]](ctx context.Context, s *Store, id int64) (T, error) {
	var zero T
	key := P(&zero).Columns()[0]
	recs, err := List[T, P](ctx, s, sql.EQ(key, sql.Integer(id)))
	if err != nil {
		return zero, err
	}
	if len(recs) == 0 {
		return zero, reloader.NewNotFoundError(P(&zero).Table(), id)
	}
	return recs[0], nil
}

// Insert stores recs with a single multi-row INSERT.
func Insert[T any, P recordPtr[T]](ctx context.Context, s *Store, recs ...T) error {
	if len(recs) == 0 {
		return nil
	}
	return s.run(func(db *sql.Database) error {
		proto := P(&recs[0])
		db.BeginInsert().AddTable(proto.Table())
		for _, c := range proto.Columns() {
			db.AddField(c)
		}
		for i := range recs {
			db.BeginValueRow()
			for _, v := range P(&recs[i]).Values() {
				sv, err := sql.ValueOf(v)
				if err != nil {
					return err
				}
				db.AddValue(sv)
			}
			db.EndValueRow()
		}
		if _, err := db.Exec(ctx); err != nil {
			return wrapExecError(proto.Table(), err)
		}
		return nil
	})
}

// Update rewrites every non-key column of rec.
func Update[T any, P recordPtr[T]](ctx context.Context, s *Store, rec T) error {
	return s.run(func(db *sql.Database) error {
		p := P(&rec)
		cols, vals := p.Columns(), p.Values()
		db.BeginUpdate().AddTable(p.Table())
		for i := 1; i < len(cols); i++ {
			sv, err := sql.ValueOf(vals[i])
			if err != nil {
				return err
			}
			db.AddField(cols[i]).AddValue(sv)
		}
		db.AddCondition(sql.EQ(cols[0], sql.Integer(p.ID())))
		res, err := db.Exec(ctx)
		if err != nil {
			return wrapExecError(p.Table(), err)
		}
		return expectAffected(res, p.Table(), p.ID())
	})
}

// Delete removes the record of type T with the given key.
func Delete[T any, P recordPtr[T]](ctx context.Context, s *Store, id int64) error {
	var zero T
	return DeleteKind(ctx, s, P(&zero).Table(), P(&zero).Columns()[0], id)
}

// DeleteKind removes the row of table whose key column equals id.
func DeleteKind(ctx context.Context, s *Store, table, key string, id int64) error {
	return s.run(func(db *sql.Database) error {
		res, err := db.BeginDelete().
			AddTable(table).
			AddCondition(sql.EQ(key, sql.Integer(id))).
			Exec(ctx)
		if err != nil {
			return wrapExecError(table, err)
		}
		return expectAffected(res, table, id)
	})
}

func expectAffected(res sql.Result, table string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: %s rows affected: %w", table, err)
	}
	if n == 0 {
		return reloader.NewNotFoundError(table, id)
	}
	return nil
}

func wrapExecError(table string, err error) error {
	if sql.IsConstraintError(err) {
		return reloader.NewConstraintError(table, err)
	}
	return err
}
