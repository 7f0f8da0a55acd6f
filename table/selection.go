// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "cogentcore.org/ctable/base/bitslice"

// selState is the tag of the internal selection representation.
type selState int32

const (
	// allSelected is the sentinel for every row selected; no mask is
	// allocated. This is the initial state of every table.
	allSelected selState = iota

	// allUnselected is the sentinel for no row selected.
	allUnselected

	// explicit holds a per-row mask; it exists only while
	// 0 < count < rows, collapsing back to a sentinel at the
	// boundaries. A memory optimization, not an observable contract.
	explicit
)

// selection is the per-table row selection scope. The tagged
// sentinel-vs-mask representation is internal: the public surface is
// the Table selection methods.
type selection struct {
	state selState
	mask  *bitslice.Slice
	count int
}

// isSelected returns whether the given row is selected.
func (sl *selection) isSelected(row int) bool {
	switch sl.state {
	case allSelected:
		return true
	case allUnselected:
		return false
	}
	return sl.mask.Index(row)
}

// selCount returns the number of selected rows out of n.
func (sl *selection) selCount(n int) int {
	switch sl.state {
	case allSelected:
		return n
	case allUnselected:
		return 0
	}
	return sl.count
}

// reset returns to the initial all-selected sentinel.
func (sl *selection) reset() {
	sl.state = allSelected
	sl.mask = nil
	sl.count = 0
}

// maskNeeded materializes the explicit mask for n rows, so individual
// bits can be written. Call normalize after writing.
func (sl *selection) maskNeeded(n int) {
	if sl.state == explicit && sl.mask.Len() == n {
		return
	}
	mask := bitslice.New(n)
	if sl.state == allSelected {
		mask.SetAll(true)
	}
	sl.count = sl.selCount(n)
	sl.mask = mask
	sl.state = explicit
}

// set sets the selection flag of one row; the mask must have been
// materialized with maskNeeded.
func (sl *selection) set(row int, selected bool) {
	if sl.mask.Index(row) == selected {
		return
	}
	sl.mask.Set(row, selected)
	if selected {
		sl.count++
	} else {
		sl.count--
	}
}

// normalize collapses an explicit mask at the 0 and n boundaries back
// to the sentinel states.
func (sl *selection) normalize(n int) {
	if sl.state != explicit {
		return
	}
	switch sl.count {
	case 0:
		sl.state = allUnselected
		sl.mask = nil
	case n:
		sl.reset()
	}
}

// complement flips every row's selection flag.
func (sl *selection) complement(n int) {
	switch sl.state {
	case allSelected:
		sl.state = allUnselected
	case allUnselected:
		sl.state = allSelected
	default:
		sl.mask.Not()
		sl.count = n - sl.count
		sl.normalize(n)
	}
}

// clone returns a deep copy of the selection.
func (sl *selection) clone() selection {
	cp := selection{state: sl.state, count: sl.count}
	if sl.mask != nil {
		cp.mask = sl.mask.Clone()
	}
	return cp
}

// permute reorders an explicit mask by the given row permutation.
func (sl *selection) permute(perm []int) {
	if sl.state == explicit {
		sl.mask.Permute(perm)
	}
}
