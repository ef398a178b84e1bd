package store

import (
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

// scanInto copies one row of values into Scan destinations. A nil
// value leaves the destination at its zero value, matching a SQL NULL
// scanned into a pointer.
func scanInto(vals []any) func(dest ...any) error {
	return func(dest ...any) error {
		for i, d := range dest {
			rv := reflect.ValueOf(d).Elem()
			if vals[i] == nil {
				rv.Set(reflect.Zero(rv.Type()))
				continue
			}
			rv.Set(reflect.ValueOf(vals[i]))
		}
		return nil
	}
}

type fakeRows struct {
	data    [][]any
	idx     int
	err     error
	scanErr error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx < len(r.data) {
		r.idx++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return scanInto(r.data[r.idx-1])(dest...)
}
