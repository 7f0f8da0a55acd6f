// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
)

// The unary transforms return a replacement column rather than
// mutating in place, because several of them change the element kind
// (complex in, real out). Rows that are invalid in the input, or whose
// value is outside the function's domain, are invalid in the result.

// floatKindFor maps a kind to the float kind carrying its transform
// results: Float32 stays in 32 bits (computed with math32), everything
// else goes through float64.
func floatKindFor(k Kind) Kind {
	if k == Float32 || k == Complex64 {
		return Float32
	}
	return Float64
}

// complexKindFor maps a complex kind onto itself and promotes
// everything else to Complex128.
func complexKindFor(k Kind) Kind {
	if k == Complex64 {
		return Complex64
	}
	return Complex128
}

func checkTransform(c Column) error {
	if c == nil {
		return fmt.Errorf("column transform: %w", ErrNullArgument)
	}
	if c.Kind() == Bool || c.Kind() == StringKind {
		return fmt.Errorf("column transform on %v: %w", c.Kind(), ErrInvalidType)
	}
	return nil
}

func checkComplex(c Column) error {
	if c == nil {
		return fmt.Errorf("column transform: %w", ErrNullArgument)
	}
	if !c.Kind().IsComplex() {
		return fmt.Errorf("column transform requires complex, have %v: %w", c.Kind(), ErrInvalidType)
	}
	return nil
}

// mapFloat applies f64 (or f32 for 32-bit results) to every valid
// element, producing a new column of kind rk. ok = false marks the
// whole row invalid.
func mapFloat(c Column, rk Kind, f64 func(v float64) (float64, bool), f32 func(v float32) (float32, bool)) Column {
	res := OfKind(rk, c.Name(), c.Rows(), c.Depth())
	res.SetUnit(c.Unit())
	cs := res.Cells()
	use32 := rk == Float32 && f32 != nil
	for row := 0; row < c.Rows(); row++ {
		if !c.IsValid(row) {
			continue
		}
		ok := true
		for cell := 0; cell < cs && ok; cell++ {
			if use32 {
				v, vok := f32(float32(c.Float(row, cell)))
				if !vok {
					ok = false
					break
				}
				res.SetFloat(float64(v), row, cell)
			} else {
				v, vok := f64(c.Float(row, cell))
				if !vok {
					ok = false
					break
				}
				res.SetFloat(v, row, cell)
			}
		}
		if !ok {
			res.SetValid(row, false)
		}
	}
	return res
}

// mapComplex applies f to every valid element of a complex column,
// producing a new column of kind rk.
func mapComplex(c Column, rk Kind, f func(v complex128) complex128) Column {
	res := OfKind(rk, c.Name(), c.Rows(), c.Depth())
	res.SetUnit(c.Unit())
	cs := res.Cells()
	for row := 0; row < c.Rows(); row++ {
		if !c.IsValid(row) {
			continue
		}
		for cell := 0; cell < cs; cell++ {
			res.SetComplex(f(c.Complex(row, cell)), row, cell)
		}
	}
	return res
}

// mapComplexToFloat applies f to every valid element of a complex
// column, producing a float column (Float32 for Complex64 input).
func mapComplexToFloat(c Column, f64 func(v complex128) float64, f32 func(re, im float32) float32) Column {
	rk := floatKindFor(c.Kind())
	res := OfKind(rk, c.Name(), c.Rows(), c.Depth())
	res.SetUnit(c.Unit())
	cs := res.Cells()
	for row := 0; row < c.Rows(); row++ {
		if !c.IsValid(row) {
			continue
		}
		for cell := 0; cell < cs; cell++ {
			v := c.Complex(row, cell)
			if rk == Float32 && f32 != nil {
				res.SetFloat(float64(f32(float32(real(v)), float32(imag(v)))), row, cell)
			} else {
				res.SetFloat(f64(v), row, cell)
			}
		}
	}
	return res
}

// Abs returns the elementwise absolute value: integer and float
// columns keep their kind, complex columns yield the modulus in the
// matching float kind.
func Abs(c Column) (Column, error) {
	if err := checkTransform(c); err != nil {
		return nil, err
	}
	switch c.Kind().Class() {
	case ComplexClass:
		return mapComplexToFloat(c, cmplx.Abs, math32.Hypot), nil
	case IntClass:
		res := OfKind(c.Kind(), c.Name(), c.Rows(), c.Depth())
		res.SetUnit(c.Unit())
		cs := res.Cells()
		for row := 0; row < c.Rows(); row++ {
			if !c.IsValid(row) {
				continue
			}
			for cell := 0; cell < cs; cell++ {
				v := c.Int(row, cell)
				if v < 0 {
					v = -v
				}
				res.SetInt(v, row, cell)
			}
		}
		return res, nil
	default:
		return mapFloat(c, c.Kind(),
			func(v float64) (float64, bool) { return math.Abs(v), true },
			func(v float32) (float32, bool) { return math32.Abs(v), true }), nil
	}
}

// Log returns the elementwise logarithm in the given base.
// Integer columns yield Float64, float columns keep their float kind,
// complex columns keep their complex kind. Non-positive real inputs
// are invalid in the result. A non-positive base is illegal.
func Log(c Column, base float64) (Column, error) {
	if err := checkTransform(c); err != nil {
		return nil, err
	}
	if base <= 0 {
		return nil, fmt.Errorf("column.Log: base %g: %w", base, ErrIllegalArgument)
	}
	lb := math.Log(base)
	if c.Kind().IsComplex() {
		clb := complex(lb, 0)
		return mapComplex(c, complexKindFor(c.Kind()), func(v complex128) complex128 {
			return cmplx.Log(v) / clb
		}), nil
	}
	lb32 := math32.Log(float32(base))
	return mapFloat(c, floatKindFor(c.Kind()),
		func(v float64) (float64, bool) {
			if v <= 0 {
				return 0, false
			}
			return math.Log(v) / lb, true
		},
		func(v float32) (float32, bool) {
			if v <= 0 {
				return 0, false
			}
			return math32.Log(v) / lb32, true
		}), nil
}

// Exp returns the elementwise exponential base^v.
// Result kinds follow [Log]. A non-positive base is illegal.
func Exp(c Column, base float64) (Column, error) {
	if err := checkTransform(c); err != nil {
		return nil, err
	}
	if base <= 0 {
		return nil, fmt.Errorf("column.Exp: base %g: %w", base, ErrIllegalArgument)
	}
	lb := math.Log(base)
	if c.Kind().IsComplex() {
		clb := complex(lb, 0)
		return mapComplex(c, complexKindFor(c.Kind()), func(v complex128) complex128 {
			return cmplx.Exp(v * clb)
		}), nil
	}
	lb32 := float32(lb)
	return mapFloat(c, floatKindFor(c.Kind()),
		func(v float64) (float64, bool) { return math.Exp(v * lb), true },
		func(v float32) (float32, bool) { return math32.Exp(v * lb32), true }), nil
}

// Power returns the elementwise power v^exp.
// Result kinds follow [Log].
func Power(c Column, exp float64) (Column, error) {
	if err := checkTransform(c); err != nil {
		return nil, err
	}
	if c.Kind().IsComplex() {
		ce := complex(exp, 0)
		return mapComplex(c, complexKindFor(c.Kind()), func(v complex128) complex128 {
			return cmplx.Pow(v, ce)
		}), nil
	}
	e32 := float32(exp)
	return mapFloat(c, floatKindFor(c.Kind()),
		func(v float64) (float64, bool) { return math.Pow(v, exp), true },
		func(v float32) (float32, bool) { return math32.Pow(v, e32), true }), nil
}

// Conjugate returns the elementwise complex conjugate; complex only.
func Conjugate(c Column) (Column, error) {
	if err := checkComplex(c); err != nil {
		return nil, err
	}
	return mapComplex(c, c.Kind(), cmplx.Conj), nil
}

// Arg returns the elementwise phase angle of a complex column, in the
// matching float kind.
func Arg(c Column) (Column, error) {
	if err := checkComplex(c); err != nil {
		return nil, err
	}
	return mapComplexToFloat(c, cmplx.Phase, func(re, im float32) float32 {
		return math32.Atan2(im, re)
	}), nil
}

// RealPart returns the elementwise real part of a complex column, in
// the matching float kind.
func RealPart(c Column) (Column, error) {
	if err := checkComplex(c); err != nil {
		return nil, err
	}
	return mapComplexToFloat(c, func(v complex128) float64 { return real(v) }, nil), nil
}

// ImagPart returns the elementwise imaginary part of a complex column,
// in the matching float kind.
func ImagPart(c Column) (Column, error) {
	if err := checkComplex(c); err != nil {
		return nil, err
	}
	return mapComplexToFloat(c, func(v complex128) float64 { return imag(v) }, nil), nil
}
