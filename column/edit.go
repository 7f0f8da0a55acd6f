// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"slices"
)

// checkWindow validates a row window against the current row count.
func (dc *Data[T]) checkWindow(start, n int) error {
	if n < 0 {
		return fmt.Errorf("column %q: negative count %d: %w", dc.name, n, ErrIllegalArgument)
	}
	if start < 0 || start+n > dc.Rows() {
		return fmt.Errorf("column %q: window [%d,%d) outside %d rows: %w", dc.name, start, start+n, dc.Rows(), ErrOutOfRange)
	}
	return nil
}

// Extract returns a deep copy of the given row range.
func (dc *Data[T]) Extract(start, n int) (Column, error) {
	if err := dc.checkWindow(start, n); err != nil {
		return nil, err
	}
	cp := New[T](dc.name, n, dc.depth)
	cp.unit = dc.unit
	cp.format = dc.format
	cs := dc.Cells()
	copy(cp.Values, dc.Values[start*cs:(start+n)*cs])
	for i := 0; i < n; i++ {
		cp.Valid.Set(i, dc.Valid.Index(start+i))
	}
	return cp, nil
}

// EraseRange removes the given row window.
func (dc *Data[T]) EraseRange(start, n int) error {
	if err := dc.checkWindow(start, n); err != nil {
		return err
	}
	cs := dc.Cells()
	dc.Values = slices.Delete(dc.Values, start*cs, (start+n)*cs)
	dc.Valid.Delete(start, n)
	return nil
}

// EraseRows removes every row for which remove returns true,
// in a single backward pass.
func (dc *Data[T]) EraseRows(remove func(row int) bool) {
	cs := dc.Cells()
	for i := dc.Rows() - 1; i >= 0; i-- {
		if remove(i) {
			dc.Values = slices.Delete(dc.Values, i*cs, (i+1)*cs)
			dc.Valid.Delete(i, 1)
		}
	}
}

// InsertRange inserts n invalid rows at the given row.
// at == Rows appends.
func (dc *Data[T]) InsertRange(at, n int) error {
	if n < 0 {
		return fmt.Errorf("column %q: negative count %d: %w", dc.name, n, ErrIllegalArgument)
	}
	if at < 0 || at > dc.Rows() {
		return fmt.Errorf("column %q: insert at %d outside %d rows: %w", dc.name, at, dc.Rows(), ErrOutOfRange)
	}
	cs := dc.Cells()
	dc.Values = slices.Insert(dc.Values, at*cs, make([]T, n*cs)...)
	dc.Valid.Insert(at, n)
	return nil
}

// MergeAt splices a deep copy of the other column's rows into this
// column at the given row; row >= Rows appends. The other column must
// have the same kind and depth.
func (dc *Data[T]) MergeAt(other Column, row int) error {
	if other == nil {
		return fmt.Errorf("column %q: MergeAt: %w", dc.name, ErrNullArgument)
	}
	oc, ok := other.(*Data[T])
	if !ok || oc.depth != dc.depth {
		return fmt.Errorf("column %q: cannot merge %v depth %d into %v depth %d: %w",
			dc.name, other.Kind(), other.Depth(), dc.Kind(), dc.depth, ErrTypeMismatch)
	}
	if row < 0 {
		return fmt.Errorf("column %q: merge at %d: %w", dc.name, row, ErrOutOfRange)
	}
	row = min(row, dc.Rows())
	n := oc.Rows()
	if err := dc.InsertRange(row, n); err != nil {
		return err
	}
	cs := dc.Cells()
	copy(dc.Values[row*cs:(row+n)*cs], oc.Values)
	for i := 0; i < n; i++ {
		dc.Valid.Set(row+i, oc.Valid.Index(i))
	}
	return nil
}

// Permute reorders rows by the given permutation: row i of the result
// is the row previously at perm[i]. len(perm) must equal Rows.
func (dc *Data[T]) Permute(perm []int) {
	cs := dc.Cells()
	nv := make([]T, len(dc.Values))
	for i, pi := range perm {
		copy(nv[i*cs:(i+1)*cs], dc.Values[pi*cs:(pi+1)*cs])
	}
	dc.Values = nv
	dc.Valid.Permute(perm)
}
