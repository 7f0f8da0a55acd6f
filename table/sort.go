// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/ctable/column"
)

const (
	// Ascending specifies an ascending sort direction.
	Ascending = false

	// Descending specifies a descending sort direction.
	Descending = true
)

// SortKey is one key of a multi-key sort: a column name and direction.
type SortKey struct {
	// Column is the name of the key column.
	Column string

	// Descending sorts this key in descending order.
	Descending bool
}

// SortColumns physically sorts the rows of the whole table by the
// given keys, first key most significant. Each key is applied as one
// stable pass over a row permutation, from the last key to the first,
// so ties under earlier keys preserve the order established by later
// keys. Rows whose value in the key column is invalid always sort to
// the front, independent of the direction flag. The final permutation
// is gathered into every column, and into any explicit selection
// mask, so selection flags stay attached to their rows.
// Array (depth > 0) columns are rejected as keys.
// O(rows log rows) per key, O(rows) extra space.
func (dt *Table) SortColumns(keys ...SortKey) error {
	if len(keys) == 0 {
		return fmt.Errorf("table.SortColumns: no keys: %w", ErrNullArgument)
	}
	cmps := make([]func(a, b int) int, len(keys))
	for i, key := range keys {
		cl := dt.Columns.At(key.Column)
		if cl == nil {
			return fmt.Errorf("table.SortColumns: key column %q: %w", key.Column, ErrColumnNotFound)
		}
		if cl.Depth() > 0 {
			return fmt.Errorf("table.SortColumns: array key column %q: %w", key.Column, ErrUnsupportedMode)
		}
		cmps[i] = keyCompare(cl, key.Descending)
	}
	if dt.rows < 2 {
		return nil
	}
	perm := make([]int, dt.rows)
	for i := range perm {
		perm[i] = i
	}
	for i := len(keys) - 1; i >= 0; i-- {
		slices.SortStableFunc(perm, cmps[i])
	}
	for _, cl := range dt.Columns.List {
		cl.Permute(perm)
	}
	dt.sel.permute(perm)
	dt.structChanged()
	return nil
}

// Sort is a convenience single-key version of [Table.SortColumns].
func (dt *Table) Sort(name string, descending bool) error {
	return dt.SortColumns(SortKey{Column: name, Descending: descending})
}

// keyCompare returns a comparison function over row indexes for one
// key column. Invalid rows compare before every valid row regardless
// of direction; equal rows compare as 0, which the stable sort relies
// on to preserve prior ordering.
func keyCompare(cl column.Column, descending bool) func(a, b int) int {
	sign := 1
	if descending {
		sign = -1
	}
	valCmp := valueCompare(cl)
	return func(a, b int) int {
		av, bv := cl.IsValid(a), cl.IsValid(b)
		switch {
		case !av && !bv:
			return 0
		case !av:
			return -1
		case !bv:
			return 1
		}
		return sign * valCmp(a, b)
	}
}

// valueCompare returns an ascending value comparison for the column's
// class. Complex values order by real part, then imaginary part, for
// a deterministic total order.
func valueCompare(cl column.Column) func(a, b int) int {
	switch cl.Kind().Class() {
	case column.StringClass:
		return func(a, b int) int {
			return cmp.Compare(cl.StringValue(a, 0), cl.StringValue(b, 0))
		}
	case column.IntClass:
		return func(a, b int) int {
			return cmp.Compare(cl.Int(a, 0), cl.Int(b, 0))
		}
	case column.ComplexClass:
		return func(a, b int) int {
			av, bv := cl.Complex(a, 0), cl.Complex(b, 0)
			if c := cmp.Compare(real(av), real(bv)); c != 0 {
				return c
			}
			return cmp.Compare(imag(av), imag(bv))
		}
	default:
		return func(a, b int) int {
			return cmp.Compare(cl.Float(a, 0), cl.Float(b, 0))
		}
	}
}
