// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements an in-memory table of named [column.Column]
// data aligned by a common row count, for scientific data reduction
// pipelines. Every element can be explicitly invalid, and every table
// carries a per-row selection scope used by the bulk select, sort and
// structural operations. Columns are looked up by name; their order
// carries no meaning.
package table

import (
	"fmt"

	"cogentcore.org/ctable/column"
)

// Table is a set of equal-length columns with unique names, plus a
// per-row selection scope. A freshly created table has every row
// selected. Tables are not safe for concurrent mutation: callers must
// serialize access to a table across goroutines.
type Table struct {
	// Columns has the ordered list of column data for this table.
	// Treat as read-only: use the Table methods for all mutation,
	// which maintain the shared row count and selection invariants.
	Columns *Columns

	rows    int
	sel     selection
	version uint64
}

// NewTable returns a new empty table with the given declared number of
// rows and every row selected.
func NewTable(rows int) *Table {
	return &Table{Columns: NewColumns(), rows: max(0, rows)}
}

// Rows returns the number of rows shared by every column.
func (dt *Table) Rows() int { return dt.rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// structChanged records a structural mutation, invalidating any
// outstanding name cursors and raw views.
func (dt *Table) structChanged() { dt.version++ }

// Column returns the column with the given name, nil if not found.
// Lookup is a map access; iteration order is unconstrained.
func (dt *Table) Column(name string) column.Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that returns an error if
// the column name is not found, for cases when the error is needed.
func (dt *Table) ColumnTry(name string) (column.Column, error) {
	cl := dt.Columns.At(name)
	if cl == nil {
		return nil, fmt.Errorf("table: column %q: %w", name, ErrColumnNotFound)
	}
	return cl, nil
}

// AddColumn adds the given column to the table, returning an error and
// not adding if the name is not unique. The column is resized to the
// table's row count if it differs.
func (dt *Table) AddColumn(cl column.Column) error {
	if cl == nil {
		return fmt.Errorf("table.AddColumn: %w", ErrNullArgument)
	}
	if cl.Rows() != dt.rows {
		cl.SetNumRows(dt.rows)
	}
	if err := dt.Columns.Add(cl); err != nil {
		return err
	}
	dt.structChanged()
	return nil
}

// AddColumn adds a new all-invalid column of element type T and given
// name (which must be unique) to the table, returning it.
// An optional depth makes it a fixed-size array column.
func AddColumn[T column.Elem](dt *Table, name string, depth ...int) (*column.Data[T], error) {
	cl := column.New[T](name, dt.rows, depth...)
	if err := dt.AddColumn(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// AddColumnOfKind adds a new all-invalid column of the given kind and
// name (which must be unique) to the table, returning it.
func (dt *Table) AddColumnOfKind(k column.Kind, name string, depth ...int) (column.Column, error) {
	cl := column.OfKind(k, name, dt.rows, depth...)
	if err := dt.AddColumn(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// Extract removes the column with the given name from the table and
// returns it, transferring ownership to the caller. Removing the last
// column resets the selection to all rows selected, as any explicit
// mask no longer has a defined length.
func (dt *Table) Extract(name string) (column.Column, error) {
	cl := dt.Columns.Remove(name)
	if cl == nil {
		return nil, fmt.Errorf("table.Extract: column %q: %w", name, ErrColumnNotFound)
	}
	if dt.Columns.Len() == 0 {
		dt.sel.reset()
	}
	dt.structChanged()
	return cl, nil
}

// Erase removes and discards the column with the given name.
func (dt *Table) Erase(name string) error {
	_, err := dt.Extract(name)
	return err
}

// Rename changes the name of the column from old to new.
func (dt *Table) Rename(old, new string) error {
	if err := dt.Columns.Rename(old, new); err != nil {
		return err
	}
	dt.structChanged()
	return nil
}

// MoveTo transfers the named column to the destination table, which
// must have the same row count and not already have that name.
func (dt *Table) MoveTo(dst *Table, name string) error {
	if dst == nil {
		return fmt.Errorf("table.MoveTo: %w", ErrNullArgument)
	}
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	if dst.rows != dt.rows {
		return fmt.Errorf("table.MoveTo: %d vs %d rows: %w", dt.rows, dst.rows, ErrIncompatibleInput)
	}
	if dst.Columns.At(name) != nil {
		return fmt.Errorf("table.MoveTo: destination column %q: %w", name, ErrIllegalOutput)
	}
	if _, err := dt.Extract(name); err != nil {
		return err
	}
	return dst.AddColumn(cl)
}

// DuplicateColumn adds a deep copy of column from under the name to.
// An optional destination table receives the copy instead; it must
// have the same row count.
func (dt *Table) DuplicateColumn(from, to string, dst ...*Table) error {
	cl, err := dt.ColumnTry(from)
	if err != nil {
		return err
	}
	target := dt
	if len(dst) > 0 && dst[0] != nil {
		target = dst[0]
		if target.rows != dt.rows {
			return fmt.Errorf("table.DuplicateColumn: %d vs %d rows: %w", dt.rows, target.rows, ErrIncompatibleInput)
		}
	}
	cp := cl.Clone()
	cp.SetName(to)
	return target.AddColumn(cp)
}

// CopyStructure adds fresh all-invalid columns to this table
// replicating the model's names, kinds, depths, units and formats, at
// this table's row count. The table must not already own any columns.
func (dt *Table) CopyStructure(model *Table) error {
	if model == nil {
		return fmt.Errorf("table.CopyStructure: %w", ErrNullArgument)
	}
	if dt.Columns.Len() > 0 {
		return fmt.Errorf("table.CopyStructure: table already has %d columns: %w", dt.Columns.Len(), ErrIllegalOutput)
	}
	for _, cl := range model.Columns.List {
		if err := dt.AddColumn(cl.CloneStructure(dt.rows)); err != nil {
			return err
		}
	}
	return nil
}

// CompareStructure returns whether the two tables have the same number
// of columns and, for every column in a, a column in b with equal
// name, kind, depth and unit, irrespective of ordering.
func CompareStructure(a, b *Table) bool {
	if a == nil || b == nil || a.NumColumns() != b.NumColumns() {
		return false
	}
	for _, ac := range a.Columns.List {
		bc := b.Columns.At(ac.Name())
		if bc == nil || bc.Kind() != ac.Kind() || bc.Depth() != ac.Depth() || bc.Unit() != ac.Unit() {
			return false
		}
	}
	return true
}

// Clone returns a complete deep copy of this table, columns and
// selection state included; mutating the copy never affects this one.
func (dt *Table) Clone() *Table {
	cp := NewTable(dt.rows)
	cp.Columns = dt.Columns.Clone()
	cp.sel = dt.sel.clone()
	return cp
}

///////  Scalar element access

// Float returns the value at the named column and row as a float64,
// with an explicit validity flag, using cell 0 of array columns.
// On error the neutral value (0, false) is returned as well.
func (dt *Table) Float(name string, row int) (val float64, valid bool, err error) {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return 0, false, err
	}
	return cl.Float(row, 0), cl.IsValid(row), nil
}

// SetFloat sets the value at the named column and row as a float64,
// marking the row valid.
func (dt *Table) SetFloat(name string, row int, val float64) error {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return err
	}
	cl.SetFloat(val, row, 0)
	return nil
}

// Int returns the value at the named column and row as an int64, with
// an explicit validity flag, using cell 0 of array columns.
func (dt *Table) Int(name string, row int) (val int64, valid bool, err error) {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return 0, false, err
	}
	return cl.Int(row, 0), cl.IsValid(row), nil
}

// SetInt sets the value at the named column and row as an int64,
// marking the row valid.
func (dt *Table) SetInt(name string, row int, val int64) error {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return err
	}
	cl.SetInt(val, row, 0)
	return nil
}

// StringValue returns the value at the named column and row as a
// string, with an explicit validity flag, using cell 0 of array
// columns.
func (dt *Table) StringValue(name string, row int) (val string, valid bool, err error) {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return "", false, err
	}
	return cl.StringValue(row, 0), cl.IsValid(row), nil
}

// SetString sets the value at the named column and row from a string,
// marking the row valid.
func (dt *Table) SetString(name string, row int, val string) error {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return err
	}
	cl.SetString(val, row, 0)
	return nil
}

// Complex returns the value at the named column and row as a
// complex128, with an explicit validity flag, using cell 0 of array
// columns.
func (dt *Table) Complex(name string, row int) (val complex128, valid bool, err error) {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return 0, false, err
	}
	return cl.Complex(row, 0), cl.IsValid(row), nil
}

// SetComplex sets the value at the named column and row as a
// complex128, marking the row valid.
func (dt *Table) SetComplex(name string, row int, val complex128) error {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return err
	}
	cl.SetComplex(val, row, 0)
	return nil
}

// SetInvalid marks the element at the named column and row invalid.
func (dt *Table) SetInvalid(name string, row int) error {
	cl, err := dt.cellCheck(name, row)
	if err != nil {
		return err
	}
	cl.SetValid(row, false)
	return nil
}

func (dt *Table) cellCheck(name string, row int) (column.Column, error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= dt.rows {
		return nil, fmt.Errorf("table: row %d outside [0, %d): %w", row, dt.rows, ErrOutOfRange)
	}
	return cl, nil
}

// FillWindow sets every cell of the named column in the given row
// window to one constant, marking the rows valid. The literal is
// routed through the column's class: numbers for numeric columns,
// strings for string columns.
func (dt *Table) FillWindow(name string, start, n int, val any) error {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("table.FillWindow: negative count %d: %w", n, ErrIllegalArgument)
	}
	if start < 0 || start+n > dt.rows {
		return fmt.Errorf("table.FillWindow: window [%d,%d) outside %d rows: %w", start, start+n, dt.rows, ErrOutOfRange)
	}
	cs := cl.Cells()
	for row := start; row < start+n; row++ {
		for cell := 0; cell < cs; cell++ {
			switch v := val.(type) {
			case string:
				cl.SetString(v, row, cell)
			case complex128:
				cl.SetComplex(v, row, cell)
			case complex64:
				cl.SetComplex(complex128(v), row, cell)
			case bool:
				iv := int64(0)
				if v {
					iv = 1
				}
				cl.SetInt(iv, row, cell)
			default:
				fv, ok := toFloat64(val)
				if !ok {
					return fmt.Errorf("table.FillWindow: literal %T: %w", val, ErrTypeMismatch)
				}
				if cl.Kind().Class() == column.IntClass {
					cl.SetInt(int64(fv), row, cell)
				} else {
					cl.SetFloat(fv, row, cell)
				}
			}
		}
	}
	return nil
}

// toFloat64 converts the supported numeric literal types to float64;
// bools map to 1 and 0, matching the bool column funnel.
func toFloat64(val any) (float64, bool) {
	switch v := val.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
