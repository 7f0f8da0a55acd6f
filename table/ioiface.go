// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// SaveMode selects how a [Saver] writes a table to a destination.
type SaveMode int32 //enums:enum

const (
	// NewFile creates the destination, replacing any existing file.
	NewFile SaveMode = iota

	// AppendExtension adds the table as a new extension (segment) of
	// an existing destination, for formats with that notion.
	AppendExtension

	// AppendRows appends the table's rows to an existing destination
	// with the same column structure.
	AppendRows
)

// LoadOptions narrows what a [Loader] reads from a source.
// The zero value reads everything.
type LoadOptions struct {
	// Extension selects which extension (segment) of a multi-table
	// source to read, for formats with that notion. 0 is the first.
	Extension int

	// Columns restricts loading to the named columns; nil loads all.
	Columns []string

	// StartRow and NumRows restrict loading to a row window;
	// NumRows 0 loads through the end.
	StartRow int
	NumRows  int

	// CheckNulls enables per-value null detection for formats that
	// mark nulls out of band; loaded null values become invalid rows.
	CheckNulls bool
}

// Loader reads tables from an external format. Implementations return
// [ErrFileNotFound] when the source does not exist and
// [ErrBadFileFormat] when it cannot be parsed.
type Loader interface {
	Load(source string, opts LoadOptions) (*Table, error)
}

// Saver writes tables to an external format. Implementations return
// [ErrFileNotCreated] when the destination cannot be created and
// [ErrUnsupportedMode] for a [SaveMode] the format cannot express.
//
// Formats without native null support represent invalid integer rows
// with a sentinel value; such columns must reserve that value.
type Saver interface {
	Save(dt *Table, destination string, mode SaveMode, meta map[string]string) error
}
