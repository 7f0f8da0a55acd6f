// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"

	"cogentcore.org/ctable/column"
)

// Sentinel errors for table operations, extending the column-level
// taxonomy re-exported below. Callers test with [errors.Is]; returned
// errors wrap these with context. Failed queries also return a neutral
// value (0, "", a -1 count, or a nil column) so callers that ignore
// errors degrade predictably.
var (
	// ErrColumnNotFound indicates no column with the given name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIllegalOutput indicates a duplicate column name on creation.
	ErrIllegalOutput = errors.New("output name already exists")

	// ErrIncompatibleInput indicates a structural mismatch between two
	// tables for merge or append.
	ErrIncompatibleInput = errors.New("incompatible table structure")

	// ErrInvalidated indicates a cursor or raw view used after a
	// structural change to its table.
	ErrInvalidated = errors.New("invalidated by structural change")
)

// Column-level sentinels, re-exported so table callers can match the
// whole taxonomy from one package.
var (
	ErrNullArgument    = column.ErrNullArgument
	ErrTypeMismatch    = column.ErrTypeMismatch
	ErrInvalidType     = column.ErrInvalidType
	ErrIllegalArgument = column.ErrIllegalArgument
	ErrOutOfRange      = column.ErrOutOfRange
	ErrUnsupportedMode = column.ErrUnsupportedMode
	ErrDivisionByZero  = column.ErrDivisionByZero
)

// Serialization boundary errors. The engine itself never returns
// these; they are for [Loader] and [Saver] implementations.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrBadFileFormat  = errors.New("bad file format")
	ErrFileNotCreated = errors.New("file not created")
	ErrFileIO         = errors.New("file i/o error")
)
