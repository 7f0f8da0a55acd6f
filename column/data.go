// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"

	"cogentcore.org/ctable/base/bitslice"
)

// Data is the generic column implementation for element type T.
// Values are stored row-major: Cells() contiguous values per row,
// with one validity bit per row in Valid.
// Direct access to Values and Valid is for performance-critical bulk
// code: any structural change made to a table invalidates raw views
// obtained before it (see [table.Table] raw access).
type Data[T Elem] struct {
	// Values is the backing storage, len = Rows * Cells.
	Values []T

	// Valid has one bit per row: on = valid.
	Valid *bitslice.Slice

	name   string
	unit   string
	format string
	depth  int
}

// New returns a new all-invalid column of element type T with the
// given name and number of rows. An optional depth makes it a
// fixed-size array column with that many cells per row.
func New[T Elem](name string, rows int, depth ...int) *Data[T] {
	dp := 0
	if len(depth) > 0 {
		dp = depth[0]
	}
	dc := &Data[T]{name: name, depth: dp}
	dc.Values = make([]T, rows*dc.Cells())
	dc.Valid = bitslice.New(rows)
	return dc
}

// Wrap returns a column that uses the given values slice directly as
// its backing storage, without copying, with every row valid.
// The caller regains ownership via [Data.Unwrap].
// An optional depth makes it an array column; len(values) must then be
// a multiple of depth.
func Wrap[T Elem](name string, values []T, depth ...int) (*Data[T], error) {
	dp := 0
	if len(depth) > 0 {
		dp = depth[0]
	}
	dc := &Data[T]{name: name, depth: dp}
	if dp < 0 || (dc.Cells() > 0 && len(values)%dc.Cells() != 0) {
		return nil, fmt.Errorf("column.Wrap: %d values do not fill rows of %d cells: %w", len(values), dc.Cells(), ErrIllegalArgument)
	}
	dc.Values = values
	dc.Valid = bitslice.New(len(values) / dc.Cells())
	dc.Valid.SetAll(true)
	return dc, nil
}

// Unwrap detaches and returns the backing values and validity mask,
// leaving the column empty. The caller owns the returned storage.
func (dc *Data[T]) Unwrap() ([]T, *bitslice.Slice) {
	vals, vd := dc.Values, dc.Valid
	dc.Values = nil
	dc.Valid = bitslice.New(0)
	return vals, vd
}

// OfKind returns a new all-invalid column of the given kind.
func OfKind(k Kind, name string, rows int, depth ...int) Column {
	switch k {
	case Bool:
		return New[bool](name, rows, depth...)
	case Int8:
		return New[int8](name, rows, depth...)
	case Uint8:
		return New[uint8](name, rows, depth...)
	case Int16:
		return New[int16](name, rows, depth...)
	case Int32:
		return New[int32](name, rows, depth...)
	case Int64:
		return New[int64](name, rows, depth...)
	case Float32:
		return New[float32](name, rows, depth...)
	case Float64:
		return New[float64](name, rows, depth...)
	case Complex64:
		return New[complex64](name, rows, depth...)
	case Complex128:
		return New[complex128](name, rows, depth...)
	case StringKind:
		return New[string](name, rows, depth...)
	default:
		panic(fmt.Sprintf("column.OfKind: kind not supported: %v", k))
	}
}

func (dc *Data[T]) Name() string            { return dc.name }
func (dc *Data[T]) SetName(name string)     { dc.name = name }
func (dc *Data[T]) Kind() Kind              { return kindFor[T]() }
func (dc *Data[T]) Depth() int              { return dc.depth }
func (dc *Data[T]) Unit() string            { return dc.unit }
func (dc *Data[T]) SetUnit(unit string)     { dc.unit = unit }
func (dc *Data[T]) Format() string          { return dc.format }
func (dc *Data[T]) SetFormat(format string) { dc.format = format }

// Cells returns the number of stored cells per row: max(1, Depth).
func (dc *Data[T]) Cells() int { return max(1, dc.depth) }

// Rows returns the number of rows.
func (dc *Data[T]) Rows() int { return len(dc.Values) / dc.Cells() }

// SetNumRows resizes the column; new rows are invalid.
func (dc *Data[T]) SetNumRows(rows int) {
	rows = max(0, rows)
	n := rows * dc.Cells()
	if n <= cap(dc.Values) {
		dc.Values = dc.Values[:n]
	} else {
		nv := make([]T, n)
		copy(nv, dc.Values)
		dc.Values = nv
	}
	dc.Valid.SetLen(rows)
}

func (dc *Data[T]) IsValid(row int) bool { return dc.Valid.Index(row) }

// SetValid sets the validity flag at given row. Setting invalid
// zeroes the row's cells, releasing any string or slice payload.
func (dc *Data[T]) SetValid(row int, valid bool) {
	dc.Valid.Set(row, valid)
	if !valid {
		var zero T
		cs := dc.Cells()
		for c := 0; c < cs; c++ {
			dc.Values[row*cs+c] = zero
		}
	}
}

func (dc *Data[T]) CountInvalid() int { return dc.Rows() - dc.Valid.Count() }
func (dc *Data[T]) HasInvalid() bool  { return dc.Valid.Count() < dc.Rows() }
func (dc *Data[T]) HasValid() bool    { return dc.Valid.Count() > 0 }

func (dc *Data[T]) index(row, cell int) int { return row*dc.Cells() + cell }

func (dc *Data[T]) Float(row, cell int) float64 {
	return elemToFloat(dc.Values[dc.index(row, cell)])
}

func (dc *Data[T]) SetFloat(val float64, row, cell int) {
	setElemFloat(&dc.Values[dc.index(row, cell)], val)
	dc.Valid.Set(row, true)
}

func (dc *Data[T]) Int(row, cell int) int64 {
	return elemToInt(dc.Values[dc.index(row, cell)])
}

func (dc *Data[T]) SetInt(val int64, row, cell int) {
	setElemInt(&dc.Values[dc.index(row, cell)], val)
	dc.Valid.Set(row, true)
}

func (dc *Data[T]) Complex(row, cell int) complex128 {
	return elemToComplex(dc.Values[dc.index(row, cell)])
}

func (dc *Data[T]) SetComplex(val complex128, row, cell int) {
	setElemComplex(&dc.Values[dc.index(row, cell)], val)
	dc.Valid.Set(row, true)
}

func (dc *Data[T]) StringValue(row, cell int) string {
	return elemToString(dc.Values[dc.index(row, cell)])
}

func (dc *Data[T]) SetString(val string, row, cell int) {
	setElemString(&dc.Values[dc.index(row, cell)], val)
	dc.Valid.Set(row, true)
}

// Value returns the native value at given row and cell.
func (dc *Data[T]) Value(row, cell int) T { return dc.Values[dc.index(row, cell)] }

// Set sets the native value at given row and cell, marking the row valid.
func (dc *Data[T]) Set(val T, row, cell int) {
	dc.Values[dc.index(row, cell)] = val
	dc.Valid.Set(row, true)
}

// Clone returns a deep copy, validity included.
func (dc *Data[T]) Clone() Column {
	cp := &Data[T]{name: dc.name, unit: dc.unit, format: dc.format, depth: dc.depth}
	cp.Values = make([]T, len(dc.Values))
	copy(cp.Values, dc.Values)
	cp.Valid = dc.Valid.Clone()
	return cp
}

// CloneStructure returns a fresh all-invalid column with the same
// name, kind, depth, unit and format, and the given number of rows.
func (dc *Data[T]) CloneStructure(rows int) Column {
	cp := New[T](dc.name, rows, dc.depth)
	cp.unit = dc.unit
	cp.format = dc.format
	return cp
}

// Label satisfies the core.Labeler interface for a summary description.
func (dc *Data[T]) Label() string {
	return fmt.Sprintf("%s %v[%d]", dc.name, dc.Kind(), dc.Rows())
}

// String satisfies the fmt.Stringer interface.
func (dc *Data[T]) String() string {
	return dc.Label()
}
