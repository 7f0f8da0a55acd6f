// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "fmt"

// Kind is the element kind of a column.
type Kind int32

const (
	// Bool is a boolean element, stored as a full value but compared as 0 / 1.
	Bool Kind = iota

	// Int8 is a signed 8-bit integer element.
	Int8

	// Uint8 is an unsigned 8-bit integer element.
	Uint8

	// Int16 is a signed 16-bit integer element.
	Int16

	// Int32 is a signed 32-bit integer element.
	Int32

	// Int64 is a signed 64-bit integer element.
	Int64

	// Float32 is a 32-bit floating point element.
	Float32

	// Float64 is a 64-bit floating point element.
	Float64

	// Complex64 is a complex element with float32 components.
	Complex64

	// Complex128 is a complex element with float64 components.
	Complex128

	// StringKind is a variable-length UTF-8 string element.
	StringKind
)

var kindNames = map[Kind]string{
	Bool:       "Bool",
	Int8:       "Int8",
	Uint8:      "Uint8",
	Int16:      "Int16",
	Int32:      "Int32",
	Int64:      "Int64",
	Float32:    "Float32",
	Float64:    "Float64",
	Complex64:  "Complex64",
	Complex128: "Complex128",
	StringKind: "String",
}

func (k Kind) String() string {
	if nm, ok := kindNames[k]; ok {
		return nm
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// KindByName returns the Kind with the given name, false if not found.
func KindByName(name string) (Kind, bool) {
	for k, nm := range kindNames {
		if nm == name {
			return k, true
		}
	}
	return 0, false
}

// Class is the comparison / arithmetic class of a Kind, determining
// which funnel accessor carries its values without loss.
type Class int32

const (
	// IntClass kinds compare and combine exactly through int64.
	IntClass Class = iota

	// FloatClass kinds go through float64.
	FloatClass

	// ComplexClass kinds go through complex128, and support
	// equality but not ordering.
	ComplexClass

	// StringClass is the string kind.
	StringClass
)

// Class returns the comparison / arithmetic class for this kind.
// Bool is in IntClass, comparing false < true.
func (k Kind) Class() Class {
	switch k {
	case Float32, Float64:
		return FloatClass
	case Complex64, Complex128:
		return ComplexClass
	case StringKind:
		return StringClass
	}
	return IntClass
}

// IsNumeric returns true for integer and floating point kinds,
// excluding complex kinds, which only support a subset of operations.
func (k Kind) IsNumeric() bool {
	c := k.Class()
	return c == IntClass || c == FloatClass
}

// IsComplex returns true for the complex kinds.
func (k Kind) IsComplex() bool { return k.Class() == ComplexClass }

// kindRank orders kinds by width for promotion. Uint8 and Int8 share a
// rank: mixing them promotes to Int16, the narrowest kind holding both.
var kindRank = map[Kind]int{
	Bool:       0,
	Int8:       1,
	Uint8:      1,
	Int16:      2,
	Int32:      3,
	Int64:      4,
	Float32:    5,
	Float64:    6,
	Complex64:  7,
	Complex128: 8,
}

// Promote returns the combining kind for two kinds, for cross-column
// comparison and elementwise arithmetic: the wider of the two by rank,
// widened further where the narrower operand would not fit its funnel
// (Int8 with Uint8 gives Int16; Complex64 with a 64-bit real kind
// gives Complex128). Integer-to-float mixes follow native conversion
// rules. Strings do not promote: both kinds must be string, yielding
// string.
func Promote(a, b Kind) (Kind, error) {
	if a == StringKind || b == StringKind {
		if a != b {
			return 0, fmt.Errorf("column.Promote: cannot combine %v with %v: %w", a, b, ErrTypeMismatch)
		}
		return StringKind, nil
	}
	if a == b {
		return a, nil
	}
	ra, rb := kindRank[a], kindRank[b]
	k := a
	switch {
	case ra == rb: // Int8 vs Uint8
		return Int16, nil
	case rb > ra:
		k = b
	}
	if k == Complex64 && (a == Float64 || b == Float64 || a == Int64 || b == Int64) {
		return Complex128, nil
	}
	return k, nil
}
