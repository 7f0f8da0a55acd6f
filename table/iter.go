// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// NameCursor iterates over the column names of one table.
// Any structural change to the table (columns added, removed, renamed,
// cast, rows resized) invalidates the cursor: [NameCursor.Next]
// then stops and [NameCursor.Err] reports [ErrInvalidated].
type NameCursor struct {
	dt      *Table
	version uint64
	idx     int
}

// ColumnNames returns a cursor over the column names, in column order.
func (dt *Table) ColumnNames() *NameCursor {
	return &NameCursor{dt: dt, version: dt.version}
}

// Next returns the next column name, or "", false when the cursor is
// exhausted or the table has structurally changed since the cursor
// was created.
func (nc *NameCursor) Next() (string, bool) {
	if nc.version != nc.dt.version || nc.idx >= nc.dt.NumColumns() {
		return "", false
	}
	name := nc.dt.Columns.List[nc.idx].Name()
	nc.idx++
	return name, true
}

// Err returns [ErrInvalidated] if the table has structurally changed
// since the cursor was created, nil otherwise.
func (nc *NameCursor) Err() error {
	if nc.version != nc.dt.version {
		return ErrInvalidated
	}
	return nil
}
