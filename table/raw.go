// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/ctable/base/bitslice"
	"cogentcore.org/ctable/column"
)

// RawView is a borrowed, typed view of one column's backing storage,
// stamped with the table version at the time it was taken. Values is
// row-major, Cells elements per row. The view stays usable only until
// the next structural change to the table: check [RawView.Err] (or
// [RawView.Usable]) before reading or writing through it.
type RawView[T column.Elem] struct {
	// Values is the column's backing slice; writing through it does
	// not update validity, use [RawView.SetValid] for that.
	Values []T

	// Valid holds the per-row validity bits.
	Valid *bitslice.Slice

	// Cells is the number of elements per row.
	Cells int

	dt      *Table
	version uint64
}

// Raw returns a typed view of the named column's backing storage.
// Returns [ErrColumnNotFound] for an unknown name and
// [column.ErrTypeMismatch] when T is not the column's element type.
func Raw[T column.Elem](dt *Table, name string) (*RawView[T], error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	dc, ok := cl.(*column.Data[T])
	if !ok {
		return nil, fmt.Errorf("table.Raw: column %q is %v: %w", name, cl.Kind(), column.ErrTypeMismatch)
	}
	return &RawView[T]{Values: dc.Values, Valid: dc.Valid, Cells: dc.Cells(), dt: dt, version: dt.version}, nil
}

// Usable reports whether the table is structurally unchanged since the
// view was taken.
func (rv *RawView[T]) Usable() bool {
	return rv.version == rv.dt.version
}

// Err returns [ErrInvalidated] if the table has structurally changed
// since the view was taken, nil otherwise.
func (rv *RawView[T]) Err() error {
	if !rv.Usable() {
		return ErrInvalidated
	}
	return nil
}

// SetValid sets the validity of the given row through the view.
func (rv *RawView[T]) SetValid(row int, valid bool) {
	rv.Valid.Set(row, valid)
}
