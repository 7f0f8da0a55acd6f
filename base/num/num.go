// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the type constraints used by the generic
// column implementations.
package num

// Signed is the constraint for the signed integer element types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for the unsigned integer element types.
type Unsigned interface {
	~uint8
}

// Integer is the constraint for all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the constraint for the floating point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint for the complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the constraint for all real-valued numeric element types.
type Number interface {
	Integer | Float
}
