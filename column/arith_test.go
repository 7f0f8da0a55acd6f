// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithPromotion(t *testing.T) {
	a := New[int32]("a", 3)
	b := New[float64]("b", 3)
	for i := 0; i < 3; i++ {
		a.SetInt(int64(i+1), i, 0)
		b.SetFloat(0.5, i, 0)
	}
	r, err := Add(a, b)
	assert.NoError(t, err)
	assert.Equal(t, Float64, r.Kind())
	assert.Equal(t, 1.5, r.Float(0, 0))
	assert.Equal(t, 3.5, r.Float(2, 0))
	assert.Equal(t, "a", r.Name())
}

func TestArithInvalidPropagation(t *testing.T) {
	a := New[float64]("a", 3)
	b := New[float64]("b", 3)
	a.SetFloat(1, 0, 0)
	a.SetFloat(2, 1, 0) // a row 2 invalid
	b.SetFloat(10, 0, 0)
	b.SetFloat(20, 2, 0) // b row 1 invalid

	r, err := Mul(a, b)
	assert.NoError(t, err)
	assert.True(t, r.IsValid(0))
	assert.Equal(t, 10.0, r.Float(0, 0))
	assert.False(t, r.IsValid(1))
	assert.False(t, r.IsValid(2))
}

func TestDivByZeroInvalid(t *testing.T) {
	a := New[int64]("a", 2)
	b := New[int64]("b", 2)
	a.SetInt(10, 0, 0)
	a.SetInt(20, 1, 0)
	b.SetInt(0, 0, 0)
	b.SetInt(5, 1, 0)

	r, err := Div(a, b)
	assert.NoError(t, err)
	assert.False(t, r.IsValid(0)) // zero divisor, not a fault
	assert.Equal(t, int64(4), r.Int(1, 0))
}

func TestArithErrors(t *testing.T) {
	a := New[string]("a", 2)
	b := New[int64]("b", 2)
	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrInvalidType)

	c := New[int64]("c", 3)
	_, err = Add(b, c)
	assert.ErrorIs(t, err, ErrIllegalArgument)

	_, err = Add(nil, b)
	assert.ErrorIs(t, err, ErrNullArgument)
}

func TestArithValue(t *testing.T) {
	fc := New[float64]("f", 3)
	fc.SetFloat(4, 0, 0)
	fc.SetFloat(6, 2, 0) // row 1 invalid
	r, err := DivValue(fc, 2)
	assert.NoError(t, err)
	assert.Equal(t, Float64, r.Kind())
	assert.Equal(t, 2.0, r.Float(0, 0))
	assert.Equal(t, 3.0, r.Float(2, 0))
	assert.False(t, r.IsValid(1))

	r, err = AddValue(fc, 1)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, r.Float(0, 0))

	// a literal zero divisor fails the whole operation
	_, err = DivValue(fc, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// an integer column truncates the divisor; zero after truncation
	// is rejected the same way
	ic := New[int32]("i", 1)
	ic.SetInt(8, 0, 0)
	_, err = DivValue(ic, 0.5)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	r, err = MulValue(ic, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(24), r.Int(0, 0))

	bc := New[bool]("b", 1)
	_, err = AddValue(bc, 1)
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = AddValue(nil, 1)
	assert.ErrorIs(t, err, ErrNullArgument)
}

func TestAbs(t *testing.T) {
	ic := New[int32]("i", 2)
	ic.SetInt(-5, 0, 0)
	ic.SetInt(3, 1, 0)
	r, err := Abs(ic)
	assert.NoError(t, err)
	assert.Equal(t, Int32, r.Kind())
	assert.Equal(t, int64(5), r.Int(0, 0))

	cc := New[complex128]("c", 1)
	cc.SetComplex(complex(3, 4), 0, 0)
	r, err = Abs(cc)
	assert.NoError(t, err)
	assert.Equal(t, Float64, r.Kind()) // complex in, real out
	assert.Equal(t, 5.0, r.Float(0, 0))

	c32 := New[complex64]("c32", 1)
	c32.SetComplex(complex(3, 4), 0, 0)
	r, err = Abs(c32)
	assert.NoError(t, err)
	assert.Equal(t, Float32, r.Kind())
	assert.Equal(t, 5.0, r.Float(0, 0))
}

func TestLogExp(t *testing.T) {
	fc := New[float64]("f", 3)
	fc.SetFloat(100, 0, 0)
	fc.SetFloat(-1, 1, 0)
	fc.SetFloat(1000, 2, 0)

	r, err := Log(fc, 10)
	assert.NoError(t, err)
	assert.InDelta(t, 2, r.Float(0, 0), 1e-12)
	assert.False(t, r.IsValid(1)) // out of domain
	assert.InDelta(t, 3, r.Float(2, 0), 1e-12)

	_, err = Log(fc, -2)
	assert.ErrorIs(t, err, ErrIllegalArgument)

	ic := New[int64]("i", 1)
	ic.SetInt(3, 0, 0)
	r, err = Exp(ic, 2)
	assert.NoError(t, err)
	assert.Equal(t, Float64, r.Kind())
	assert.InDelta(t, 8, r.Float(0, 0), 1e-12)
}

func TestComplexTransforms(t *testing.T) {
	cc := New[complex128]("c", 2)
	cc.SetComplex(complex(1, 2), 0, 0) // row 1 invalid

	r, err := Conjugate(cc)
	assert.NoError(t, err)
	assert.Equal(t, complex(1, -2), r.Complex(0, 0))
	assert.False(t, r.IsValid(1))

	r, err = RealPart(cc)
	assert.NoError(t, err)
	assert.Equal(t, Float64, r.Kind())
	assert.Equal(t, 1.0, r.Float(0, 0))

	r, err = ImagPart(cc)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, r.Float(0, 0))

	r, err = Arg(cc)
	assert.NoError(t, err)
	assert.InDelta(t, math.Atan2(2, 1), r.Float(0, 0), 1e-12)

	fc := New[float64]("f", 1)
	_, err = Conjugate(fc)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestPowerFloat32(t *testing.T) {
	fc := New[float32]("f", 1)
	fc.SetFloat(2, 0, 0)
	r, err := Power(fc, 10)
	assert.NoError(t, err)
	assert.Equal(t, Float32, r.Kind())
	assert.InDelta(t, 1024, r.Float(0, 0), 1e-3)
}
