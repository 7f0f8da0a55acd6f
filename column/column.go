// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column implements the typed, named, fixed-length column of
// possibly-invalid elements that [table.Table] is built on.
// A single generic [Data] implementation covers all element kinds,
// with values funneled through Float / Int / Complex / String
// accessors for cross-kind operations, in the manner of the tensor
// access interface. Every element carries an explicit validity flag,
// distinct from zero or empty: a freshly created column is all-invalid.
package column

// Elem is the constraint for the supported column element types.
type Elem interface {
	bool | int8 | uint8 | int16 | int32 | int64 |
		float32 | float64 | complex64 | complex128 | string
}

// Column is the contract required of a column by the table layer.
// It is implemented by the generic [Data] type for all element kinds.
// Rows are the outermost unit: an array (depth > 0) column stores
// depth cells per row, with one validity flag for the whole row.
type Column interface {
	// Name returns the column name, unique within its owning table.
	Name() string

	// SetName sets the column name. Use [table.Table.Rename] for
	// columns owned by a table, which keeps the lookup index current.
	SetName(name string)

	// Kind returns the element kind.
	Kind() Kind

	// Depth returns the fixed per-row array size: 0 = scalar.
	Depth() int

	// Cells returns the number of stored cells per row: max(1, Depth).
	Cells() int

	// Unit returns the optional physical unit string.
	Unit() string

	// SetUnit sets the unit string.
	SetUnit(unit string)

	// Format returns the optional display format string.
	Format() string

	// SetFormat sets the display format string.
	SetFormat(format string)

	// Rows returns the number of rows.
	Rows() int

	// SetNumRows resizes the column: new rows are invalid,
	// truncated rows are discarded.
	SetNumRows(rows int)

	// IsValid returns whether the element at given row is valid.
	IsValid(row int) bool

	// SetValid sets the validity flag at given row. Setting invalid
	// zeroes the row's cells, releasing any owned payload.
	SetValid(row int, valid bool)

	// CountInvalid returns the number of invalid rows.
	CountInvalid() int

	// HasInvalid returns whether any row is invalid.
	HasInvalid() bool

	// HasValid returns whether any row is valid.
	HasValid() bool

	// Float returns the value at given row and cell as a float64.
	Float(row, cell int) float64

	// SetFloat sets the value at given row and cell as a float64,
	// marking the row valid.
	SetFloat(val float64, row, cell int)

	// Int returns the value at given row and cell as an int64.
	Int(row, cell int) int64

	// SetInt sets the value at given row and cell as an int64,
	// marking the row valid.
	SetInt(val int64, row, cell int)

	// Complex returns the value at given row and cell as a complex128.
	Complex(row, cell int) complex128

	// SetComplex sets the value at given row and cell as a complex128,
	// marking the row valid.
	SetComplex(val complex128, row, cell int)

	// StringValue returns the value at given row and cell as a string.
	// 'String' conflicts with [fmt.Stringer], so StringValue is used.
	StringValue(row, cell int) string

	// SetString sets the value at given row and cell from a string,
	// parsing it for numeric kinds, marking the row valid.
	SetString(val string, row, cell int)

	// Clone returns a deep copy, validity included.
	Clone() Column

	// CloneStructure returns a fresh all-invalid column with the same
	// name, kind, depth, unit and format, and the given number of rows.
	CloneStructure(rows int) Column

	// CastTo returns a new column of the given kind with natively
	// converted values and the same validity pattern.
	CastTo(k Kind) (Column, error)

	// Extract returns a deep copy of the given row range.
	Extract(start, n int) (Column, error)

	// EraseRange removes the given row window.
	EraseRange(start, n int) error

	// EraseRows removes every row for which remove returns true.
	EraseRows(remove func(row int) bool)

	// InsertRange inserts n invalid rows at the given row.
	InsertRange(at, n int) error

	// MergeAt splices a deep copy of the other column's rows into this
	// column at the given row; row >= Rows appends. The other column
	// must have the same kind and depth.
	MergeAt(other Column, row int) error

	// Permute reorders rows by the given permutation: row i of the
	// result is the row previously at perm[i]. len(perm) must be Rows.
	Permute(perm []int)
}
