// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "errors"

// Sentinel errors for column operations. Callers test with
// [errors.Is]; returned errors wrap these with context.
var (
	// ErrNullArgument indicates a required argument was nil.
	ErrNullArgument = errors.New("null argument")

	// ErrTypeMismatch indicates two columns (or a column and a literal)
	// have kinds that cannot be combined for the requested operation.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidType indicates the operation requires a different class
	// of column, e.g. numeric where the column is string.
	ErrInvalidType = errors.New("invalid type for operation")

	// ErrIllegalArgument indicates a negative length, count or depth,
	// or an argument value outside the operation's domain.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrOutOfRange indicates a row index or window outside [0, Rows).
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupportedMode indicates an array (depth > 0) column was used
	// where only scalar columns are supported.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrDivisionByZero indicates a scalar division by exact zero.
	// Elementwise division yields invalid elements instead.
	ErrDivisionByZero = errors.New("division by zero")
)
