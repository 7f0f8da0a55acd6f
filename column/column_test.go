// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAllInvalid(t *testing.T) {
	dc := New[float64]("v", 5)
	assert.Equal(t, 5, dc.Rows())
	assert.Equal(t, 0, dc.Depth())
	assert.Equal(t, 1, dc.Cells())
	assert.Equal(t, Float64, dc.Kind())
	assert.Equal(t, 5, dc.CountInvalid())
	assert.True(t, dc.HasInvalid())
	assert.False(t, dc.HasValid())

	dc.SetFloat(3.14, 2, 0)
	assert.True(t, dc.IsValid(2))
	assert.Equal(t, 3.14, dc.Float(2, 0))
	assert.Equal(t, 4, dc.CountInvalid())
	assert.True(t, dc.HasValid())

	dc.SetValid(2, false)
	assert.False(t, dc.IsValid(2))
	assert.Equal(t, 0.0, dc.Float(2, 0)) // payload zeroed
}

func TestAccessorFunnel(t *testing.T) {
	ic := New[int32]("i", 3)
	ic.SetFloat(7.9, 0, 0) // truncating conversion
	assert.Equal(t, int64(7), ic.Int(0, 0))
	ic.SetString("42", 1, 0)
	assert.Equal(t, int64(42), ic.Int(1, 0))
	assert.Equal(t, "42", ic.StringValue(1, 0))

	sc := New[string]("s", 2)
	sc.SetFloat(2.5, 0, 0)
	assert.Equal(t, "2.5", sc.StringValue(0, 0))
	assert.Equal(t, 2.5, sc.Float(0, 0))

	cc := New[complex128]("c", 2)
	cc.SetComplex(complex(1, -2), 0, 0)
	assert.Equal(t, complex(1, -2), cc.Complex(0, 0))
	assert.Equal(t, 1.0, cc.Float(0, 0))

	bc := New[bool]("b", 2)
	bc.SetInt(1, 0, 0)
	assert.True(t, bc.Value(0, 0))
	assert.Equal(t, 1.0, bc.Float(0, 0))
}

func TestArrayColumn(t *testing.T) {
	dc := New[float32]("a", 4, 3)
	assert.Equal(t, 3, dc.Depth())
	assert.Equal(t, 3, dc.Cells())
	assert.Equal(t, 4, dc.Rows())
	assert.Equal(t, 12, len(dc.Values))

	for c := 0; c < 3; c++ {
		dc.SetFloat(float64(c), 1, c)
	}
	assert.True(t, dc.IsValid(1))
	assert.Equal(t, 2.0, dc.Float(1, 2))

	dc.SetNumRows(6)
	assert.Equal(t, 6, dc.Rows())
	assert.False(t, dc.IsValid(5))
	assert.True(t, dc.IsValid(1))
}

func TestCloneIndependence(t *testing.T) {
	dc := New[string]("s", 3)
	dc.SetString("a", 0, 0)
	dc.SetUnit("Jy")
	cp := dc.Clone()
	cp.SetString("b", 0, 0)
	cp.SetString("c", 1, 0)
	assert.Equal(t, "a", dc.StringValue(0, 0))
	assert.False(t, dc.IsValid(1))
	assert.Equal(t, "Jy", cp.Unit())
}

func TestWrapUnwrap(t *testing.T) {
	vals := []int64{5, -2, 7}
	dc, err := Wrap("w", vals)
	assert.NoError(t, err)
	assert.Equal(t, 3, dc.Rows())
	assert.Equal(t, 0, dc.CountInvalid()) // wrapped rows are valid

	dc.SetInt(9, 0, 0)
	assert.Equal(t, int64(9), vals[0]) // same backing storage

	out, valid := dc.Unwrap()
	assert.Equal(t, []int64{9, -2, 7}, out)
	assert.Equal(t, 3, valid.Len())
	assert.Equal(t, 0, dc.Rows())

	_, err = Wrap("bad", []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrIllegalArgument)
}

func TestEditOps(t *testing.T) {
	dc := New[int64]("e", 5)
	for i := 0; i < 5; i++ {
		dc.SetInt(int64(i*10), i, 0)
	}
	dc.SetValid(3, false)

	ex, err := dc.Extract(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, ex.Rows())
	assert.Equal(t, int64(10), ex.Int(0, 0))
	assert.False(t, ex.IsValid(2))

	_, err = dc.Extract(4, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.NoError(t, dc.EraseRange(1, 2))
	assert.Equal(t, 3, dc.Rows())
	assert.Equal(t, int64(0), dc.Int(1, 0))
	assert.False(t, dc.IsValid(1))

	assert.NoError(t, dc.InsertRange(1, 2))
	assert.Equal(t, 5, dc.Rows())
	assert.False(t, dc.IsValid(1))
	assert.False(t, dc.IsValid(2))
	assert.Equal(t, int64(40), dc.Int(4, 0))

	dc.EraseRows(func(row int) bool { return !dc.IsValid(row) })
	assert.Equal(t, 2, dc.Rows())
	assert.Equal(t, int64(0), dc.Int(0, 0))
	assert.Equal(t, int64(40), dc.Int(1, 0))
}

func TestMergeAt(t *testing.T) {
	a := New[float64]("m", 3)
	for i := 0; i < 3; i++ {
		a.SetFloat(float64(i), i, 0)
	}
	b := New[float64]("m", 2)
	b.SetFloat(10, 0, 0) // row 1 stays invalid

	assert.NoError(t, a.MergeAt(b, 1))
	assert.Equal(t, 5, a.Rows())
	assert.Equal(t, 0.0, a.Float(0, 0))
	assert.Equal(t, 10.0, a.Float(1, 0))
	assert.False(t, a.IsValid(2))
	assert.Equal(t, 1.0, a.Float(3, 0))

	// append past end
	assert.NoError(t, a.MergeAt(b, 99))
	assert.Equal(t, 7, a.Rows())
	assert.Equal(t, 10.0, a.Float(5, 0))

	ic := New[int32]("m", 2)
	assert.ErrorIs(t, a.MergeAt(ic, 0), ErrTypeMismatch)
}

func TestPermute(t *testing.T) {
	dc := New[string]("p", 3)
	dc.SetString("x", 0, 0)
	dc.SetString("y", 2, 0) // row 1 invalid
	dc.Permute([]int{2, 1, 0})
	assert.Equal(t, "y", dc.StringValue(0, 0))
	assert.False(t, dc.IsValid(1))
	assert.Equal(t, "x", dc.StringValue(2, 0))
}

func TestCast(t *testing.T) {
	ic := New[int32]("x", 3)
	ic.SetInt(5, 0, 0)
	ic.SetInt(-2, 2, 0) // row 1 invalid
	fc, err := ic.CastTo(Float64)
	assert.NoError(t, err)
	assert.Equal(t, Float64, fc.Kind())
	assert.Equal(t, 0, fc.Depth())
	assert.Equal(t, 5.0, fc.Float(0, 0))
	assert.False(t, fc.IsValid(1))
	assert.Equal(t, -2.0, fc.Float(2, 0))

	// scalar <-> single-element array by explicit request
	ac, err := CastDepth(ic, Int32, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, ac.Depth())
	assert.Equal(t, int64(5), ac.Int(0, 0))

	_, err = CastDepth(ic, Int32, 4)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestPromote(t *testing.T) {
	k, err := Promote(Int16, Float32)
	assert.NoError(t, err)
	assert.Equal(t, Float32, k)

	k, err = Promote(Int8, Uint8)
	assert.NoError(t, err)
	assert.Equal(t, Int16, k)

	// Complex64 components are float32: 64-bit real operands widen
	// the result to Complex128
	k, err = Promote(Float64, Complex64)
	assert.NoError(t, err)
	assert.Equal(t, Complex128, k)

	k, err = Promote(Complex64, Int64)
	assert.NoError(t, err)
	assert.Equal(t, Complex128, k)

	k, err = Promote(Float32, Complex64)
	assert.NoError(t, err)
	assert.Equal(t, Complex64, k)

	_, err = Promote(StringKind, Int32)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
