// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/ctable/column"
)

// Columns is an ordered list of columns with a name-to-index map for
// fast lookup. The order carries no semantics: lookup is by name, and
// iteration order is merely the insertion order. The name of each
// column lives on the column itself; Rename keeps the map current.
type Columns struct {
	// List is the ordered slice of columns.
	List []column.Column

	// indexes is the name-to-index mapping.
	indexes map[string]int
}

// NewColumns returns a new empty Columns list.
func NewColumns() *Columns {
	return &Columns{indexes: make(map[string]int)}
}

// Len returns the number of columns.
func (cs *Columns) Len() int { return len(cs.List) }

// At returns the column with the given name, nil if not found.
func (cs *Columns) At(name string) column.Column {
	if idx, ok := cs.indexes[name]; ok {
		return cs.List[idx]
	}
	return nil
}

// IndexOf returns the position of the column with the given name,
// -1 if not found.
func (cs *Columns) IndexOf(name string) int {
	if idx, ok := cs.indexes[name]; ok {
		return idx
	}
	return -1
}

// Add appends the given column; an error is returned if a column with
// its name already exists.
func (cs *Columns) Add(cl column.Column) error {
	if cs.indexes == nil {
		cs.indexes = make(map[string]int)
	}
	if _, ok := cs.indexes[cl.Name()]; ok {
		return fmt.Errorf("columns: %q: %w", cl.Name(), ErrIllegalOutput)
	}
	cs.indexes[cl.Name()] = len(cs.List)
	cs.List = append(cs.List, cl)
	return nil
}

// Remove removes and returns the column with the given name,
// nil if not found.
func (cs *Columns) Remove(name string) column.Column {
	idx, ok := cs.indexes[name]
	if !ok {
		return nil
	}
	cl := cs.List[idx]
	cs.List = slices.Delete(cs.List, idx, idx+1)
	delete(cs.indexes, name)
	for nm, i := range cs.indexes {
		if i > idx {
			cs.indexes[nm] = i - 1
		}
	}
	return cl
}

// Rename changes the name of the column from old to new, keeping the
// lookup map current.
func (cs *Columns) Rename(old, new string) error {
	idx, ok := cs.indexes[old]
	if !ok {
		return fmt.Errorf("columns: %q: %w", old, ErrColumnNotFound)
	}
	if _, ok := cs.indexes[new]; ok && new != old {
		return fmt.Errorf("columns: %q: %w", new, ErrIllegalOutput)
	}
	delete(cs.indexes, old)
	cs.indexes[new] = idx
	cs.List[idx].SetName(new)
	return nil
}

// Names returns the column names in order, as a new slice.
func (cs *Columns) Names() []string {
	nms := make([]string, len(cs.List))
	for i, cl := range cs.List {
		nms[i] = cl.Name()
	}
	return nms
}

// Clone returns a deep copy of the columns.
func (cs *Columns) Clone() *Columns {
	cp := NewColumns()
	for _, cl := range cs.List {
		_ = cp.Add(cl.Clone()) // names stay unique across a clone
	}
	return cp
}
