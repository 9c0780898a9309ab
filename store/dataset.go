package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/reloader/dialect/sql"
	"github.com/syssam/reloader/reloading"
)

// ErrUnknownKind is returned for a record kind that has no table.
var ErrUnknownKind = errors.New("store: unknown record kind")

// Dataset holds the full content of a logbook.
type Dataset struct {
	Casings        []reloading.Casing        `json:"casings,omitempty" yaml:"casings,omitempty" msgpack:"casings,omitempty"`
	Powders        []reloading.Powder        `json:"powders,omitempty" yaml:"powders,omitempty" msgpack:"powders,omitempty"`
	Projectiles    []reloading.Projectile    `json:"projectiles,omitempty" yaml:"projectiles,omitempty" msgpack:"projectiles,omitempty"`
	Loads          []reloading.Load          `json:"loads,omitempty" yaml:"loads,omitempty" msgpack:"loads,omitempty"`
	BallisticTests []reloading.BallisticTest `json:"ballistic_tests,omitempty" yaml:"ballistic_tests,omitempty" msgpack:"ballistic_tests,omitempty"`
}

// Counts returns the number of records per table.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		reloading.TableCasing:        len(d.Casings),
		reloading.TablePowder:        len(d.Powders),
		reloading.TableProjectile:    len(d.Projectiles),
		reloading.TableLoad:          len(d.Loads),
		reloading.TableBallisticTest: len(d.BallisticTests),
	}
}

// Export reads every record of the logbook.
func Export(ctx context.Context, s *Store) (*Dataset, error) {
	var (
		d   Dataset
		err error
	)
	if d.Casings, err = List[reloading.Casing](ctx, s); err != nil {
		return nil, err
	}
	if d.Powders, err = List[reloading.Powder](ctx, s); err != nil {
		return nil, err
	}
	if d.Projectiles, err = List[reloading.Projectile](ctx, s); err != nil {
		return nil, err
	}
	if d.Loads, err = List[reloading.Load](ctx, s); err != nil {
		return nil, err
	}
	if d.BallisticTests, err = List[reloading.BallisticTest](ctx, s); err != nil {
		return nil, err
	}
	return &d, nil
}

// Import inserts every record of d, referenced tables first.
func Import(ctx context.Context, s *Store, d *Dataset) error {
	steps := []struct {
		table string
		fn    func() error
	}{
		{reloading.TableCasing, func() error { return Insert(ctx, s, d.Casings...) }},
		{reloading.TablePowder, func() error { return Insert(ctx, s, d.Powders...) }},
		{reloading.TableProjectile, func() error { return Insert(ctx, s, d.Projectiles...) }},
		{reloading.TableLoad, func() error { return Insert(ctx, s, d.Loads...) }},
		{reloading.TableBallisticTest, func() error { return Insert(ctx, s, d.BallisticTests...) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("store: import %s: %w", step.table, err)
		}
	}
	return nil
}

// ListKind returns the records stored in table that match all conditions.
func ListKind(ctx context.Context, s *Store, table string, conds ...sql.Condition) ([]reloading.Record, error) {
	switch table {
	case reloading.TableCasing:
		return listRecords[reloading.Casing](ctx, s, conds)
	case reloading.TablePowder:
		return listRecords[reloading.Powder](ctx, s, conds)
	case reloading.TableProjectile:
		return listRecords[reloading.Projectile](ctx, s, conds)
	case reloading.TableLoad:
		return listRecords[reloading.Load](ctx, s, conds)
	case reloading.TableBallisticTest:
		return listRecords[reloading.BallisticTest](ctx, s, conds)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, table)
	}
}

func listRecords[T any, P recordPtr[T]](ctx context.Context, s *Store, conds []sql.Condition) ([]reloading.Record, error) {
	recs, err := List[T, P](ctx, s, conds...)
	if err != nil {
		return nil, err
	}
	out := make([]reloading.Record, len(recs))
	for i := range recs {
		out[i] = P(&recs[i])
	}
	return out, nil
}

// Columns returns the column names of table.
func Columns(table string) ([]string, error) {
	var r reloading.Record
	switch table {
	case reloading.TableCasing:
		r = &reloading.Casing{}
	case reloading.TablePowder:
		r = &reloading.Powder{}
	case reloading.TableProjectile:
		r = &reloading.Projectile{}
	case reloading.TableLoad:
		r = &reloading.Load{}
	case reloading.TableBallisticTest:
		r = &reloading.BallisticTest{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, table)
	}
	return r.Columns(), nil
}

// DeleteByKind removes the record of the given kind and key.
func DeleteByKind(ctx context.Context, s *Store, table string, id int64) error {
	cols, err := Columns(table)
	if err != nil {
		return err
	}
	return DeleteKind(ctx, s, table, cols[0], id)
}
