// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/ctable/column"
)

// The structural operations mutate every column in lock-step and
// validate all preconditions before touching any column, so a failure
// leaves the table unchanged. Any operation that changes the row
// count resets the selection to all rows selected.

// SetNumRows resizes every column to the given number of rows:
// growing appends invalid rows, shrinking truncates.
func (dt *Table) SetNumRows(rows int) error {
	if rows < 0 {
		return fmt.Errorf("table.SetNumRows: %d: %w", rows, ErrIllegalArgument)
	}
	for _, cl := range dt.Columns.List {
		cl.SetNumRows(rows)
	}
	dt.rows = rows
	dt.sel.reset()
	dt.structChanged()
	return nil
}

// EraseWindow removes the given row window from every column.
func (dt *Table) EraseWindow(start, n int) error {
	if n < 0 {
		return fmt.Errorf("table.EraseWindow: negative count %d: %w", n, ErrIllegalArgument)
	}
	if start < 0 || start+n > dt.rows {
		return fmt.Errorf("table.EraseWindow: window [%d,%d) outside %d rows: %w", start, start+n, dt.rows, ErrOutOfRange)
	}
	for _, cl := range dt.Columns.List {
		if err := cl.EraseRange(start, n); err != nil {
			return err // unreachable after the window check above
		}
	}
	dt.rows -= n
	dt.sel.reset()
	dt.structChanged()
	return nil
}

// InsertWindow inserts n invalid rows at the given row in every
// column; at == Rows appends.
func (dt *Table) InsertWindow(at, n int) error {
	if n < 0 {
		return fmt.Errorf("table.InsertWindow: negative count %d: %w", n, ErrIllegalArgument)
	}
	if at < 0 || at > dt.rows {
		return fmt.Errorf("table.InsertWindow: at %d outside %d rows: %w", at, dt.rows, ErrOutOfRange)
	}
	for _, cl := range dt.Columns.List {
		if err := cl.InsertRange(at, n); err != nil {
			return err // unreachable after the window check above
		}
	}
	dt.rows += n
	dt.sel.reset()
	dt.structChanged()
	return nil
}

// EraseSelected removes exactly the currently selected rows from every
// column, resetting the selection to all (remaining) rows selected.
// Returns the number of rows removed.
func (dt *Table) EraseSelected() int {
	removed := dt.SelectedCount()
	if removed == 0 {
		dt.sel.reset()
		return 0
	}
	sel := dt.sel // columns shrink during the pass; test against the saved state
	for _, cl := range dt.Columns.List {
		cl.EraseRows(func(row int) bool { return sel.isSelected(row) })
	}
	dt.rows -= removed
	dt.sel.reset()
	dt.structChanged()
	return removed
}

// Merge splices a deep copy of the source table's rows into this table
// at the given row; row >= Rows appends. The two tables must have the
// same structure (names, kinds, depths, units; order irrelevant).
func (dt *Table) Merge(src *Table, row int) error {
	if src == nil {
		return fmt.Errorf("table.Merge: %w", ErrNullArgument)
	}
	if !CompareStructure(dt, src) {
		return fmt.Errorf("table.Merge: %w", ErrIncompatibleInput)
	}
	if row < 0 {
		return fmt.Errorf("table.Merge: row %d: %w", row, ErrOutOfRange)
	}
	row = min(row, dt.rows)
	for _, cl := range dt.Columns.List {
		if err := cl.MergeAt(src.Columns.At(cl.Name()), row); err != nil {
			return err // unreachable after the structure check above
		}
	}
	dt.rows += src.rows
	dt.sel.reset()
	dt.structChanged()
	return nil
}

// Append adds a deep copy of the source table's rows to the end of
// this table. See [Table.Merge].
func (dt *Table) Append(src *Table) error {
	if src == nil {
		return fmt.Errorf("table.Append: %w", ErrNullArgument)
	}
	return dt.Merge(src, dt.rows)
}

// ExtractRows returns a new, fully selected table holding a deep copy
// of the given row window.
func (dt *Table) ExtractRows(start, n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("table.ExtractRows: negative count %d: %w", n, ErrIllegalArgument)
	}
	if start < 0 || start+n > dt.rows {
		return nil, fmt.Errorf("table.ExtractRows: window [%d,%d) outside %d rows: %w", start, start+n, dt.rows, ErrOutOfRange)
	}
	nt := NewTable(n)
	for _, cl := range dt.Columns.List {
		ec, err := cl.Extract(start, n)
		if err != nil {
			return nil, err
		}
		if err := nt.AddColumn(ec); err != nil {
			return nil, err
		}
	}
	return nt, nil
}

// ExtractSelected returns a new, fully selected table holding a deep
// copy of exactly the currently selected rows. With every row
// selected this is a plain full duplicate.
func (dt *Table) ExtractSelected() *Table {
	if dt.SelectedCount() == dt.rows {
		cp := dt.Clone()
		cp.sel.reset()
		return cp
	}
	nt := NewTable(dt.SelectedCount())
	for _, cl := range dt.Columns.List {
		cp := cl.Clone()
		cp.EraseRows(func(row int) bool { return !dt.sel.isSelected(row) })
		_ = nt.Columns.Add(cp) // source names are unique, cannot collide
	}
	return nt
}

// CastColumn adds a column named to with the values of column from
// converted to the given kind and the same validity pattern.
// With to empty or equal to from, the column is replaced in place,
// which is a no-op if the kind (and depth, if given) already match.
// An optional depth requests a different array-ness: only depth 0
// scalar and depth 1 single-element array are interchangeable; deeper
// arrays cast their element kind only, remaining arrays.
func (dt *Table) CastColumn(from, to string, k column.Kind, depth ...int) error {
	cl, err := dt.ColumnTry(from)
	if err != nil {
		return err
	}
	dp := cl.Depth()
	if len(depth) > 0 {
		if depth[0] < 0 {
			return fmt.Errorf("table.CastColumn: depth %d: %w", depth[0], ErrIllegalArgument)
		}
		dp = depth[0]
	}
	inPlace := to == "" || to == from
	if inPlace && cl.Kind() == k && cl.Depth() == dp {
		return nil
	}
	nc, err := column.CastDepth(cl, k, dp)
	if err != nil {
		return fmt.Errorf("table.CastColumn: column %q to %v depth %d: %w", from, k, dp, err)
	}
	if inPlace {
		dt.Columns.List[dt.Columns.IndexOf(from)] = nc
		dt.structChanged()
		return nil
	}
	nc.SetName(to)
	return dt.AddColumn(nc)
}
