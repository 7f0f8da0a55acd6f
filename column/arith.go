// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"

	"cogentcore.org/ctable/base/num"
)

// ArithOp is an elementwise arithmetic operator.
type ArithOp int32

const (
	AddOp ArithOp = iota
	SubOp
	MulOp
	DivOp
)

func (op ArithOp) String() string {
	switch op {
	case AddOp:
		return "+"
	case SubOp:
		return "-"
	case MulOp:
		return "*"
	case DivOp:
		return "/"
	}
	return "?"
}

// binaryCheck validates the operands of elementwise arithmetic and
// returns the promoted result kind.
func binaryCheck(a, b Column) (Kind, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("column arithmetic: %w", ErrNullArgument)
	}
	if a.Kind() == Bool || b.Kind() == Bool || a.Kind() == StringKind || b.Kind() == StringKind {
		return 0, fmt.Errorf("column arithmetic on %v, %v: %w", a.Kind(), b.Kind(), ErrInvalidType)
	}
	if a.Depth() != b.Depth() {
		return 0, fmt.Errorf("column arithmetic: depth %d vs %d: %w", a.Depth(), b.Depth(), ErrTypeMismatch)
	}
	if a.Rows() != b.Rows() {
		return 0, fmt.Errorf("column arithmetic: %d vs %d rows: %w", a.Rows(), b.Rows(), ErrIllegalArgument)
	}
	return Promote(a.Kind(), b.Kind())
}

// Arith returns a new column combining a and b elementwise with the
// given operator, in the promoted kind of the two operands.
// A row that is invalid in either operand is invalid in the result,
// as is any row whose divisor contains an exact zero.
// The result takes its name and unit from a.
func Arith(a, b Column, op ArithOp) (Column, error) {
	rk, err := binaryCheck(a, b)
	if err != nil {
		return nil, err
	}
	res := OfKind(rk, a.Name(), a.Rows(), a.Depth())
	res.SetUnit(a.Unit())
	cs := res.Cells()
	for row := 0; row < a.Rows(); row++ {
		if !a.IsValid(row) || !b.IsValid(row) {
			continue
		}
		ok := true
		for cell := 0; cell < cs && ok; cell++ {
			switch rk.Class() {
			case IntClass:
				av, bv := a.Int(row, cell), b.Int(row, cell)
				if op == DivOp && bv == 0 {
					ok = false
					break
				}
				res.SetInt(arithOf(av, bv, op), row, cell)
			case FloatClass:
				av, bv := a.Float(row, cell), b.Float(row, cell)
				if op == DivOp && bv == 0 {
					ok = false
					break
				}
				res.SetFloat(arithOf(av, bv, op), row, cell)
			case ComplexClass:
				av, bv := a.Complex(row, cell), b.Complex(row, cell)
				if op == DivOp && bv == 0 {
					ok = false
					break
				}
				res.SetComplex(arithOf(av, bv, op), row, cell)
			}
		}
		if !ok {
			res.SetValid(row, false)
		}
	}
	return res, nil
}

// Add returns a + b elementwise. See [Arith].
func Add(a, b Column) (Column, error) { return Arith(a, b, AddOp) }

// Sub returns a - b elementwise. See [Arith].
func Sub(a, b Column) (Column, error) { return Arith(a, b, SubOp) }

// Mul returns a * b elementwise. See [Arith].
func Mul(a, b Column) (Column, error) { return Arith(a, b, MulOp) }

// Div returns a / b elementwise; rows with an exact zero divisor are
// invalid in the result. See [Arith].
func Div(a, b Column) (Column, error) { return Arith(a, b, DivOp) }

// ArithValue returns a new column combining c elementwise with one
// scalar, in c's kind. Invalid rows stay invalid. Unlike the
// column-by-column [Div], where only the zero rows of the divisor go
// invalid, dividing by a literal zero fails the whole operation with
// [ErrDivisionByZero].
func ArithValue(c Column, val float64, op ArithOp) (Column, error) {
	if c == nil {
		return nil, fmt.Errorf("column arithmetic: %w", ErrNullArgument)
	}
	if c.Kind() == Bool || c.Kind() == StringKind {
		return nil, fmt.Errorf("column arithmetic on %v: %w", c.Kind(), ErrInvalidType)
	}
	if op == DivOp && (val == 0 || (c.Kind().Class() == IntClass && int64(val) == 0)) {
		return nil, fmt.Errorf("column arithmetic: %w", ErrDivisionByZero)
	}
	res := OfKind(c.Kind(), c.Name(), c.Rows(), c.Depth())
	res.SetUnit(c.Unit())
	cs := res.Cells()
	for row := 0; row < c.Rows(); row++ {
		if !c.IsValid(row) {
			continue
		}
		for cell := 0; cell < cs; cell++ {
			switch c.Kind().Class() {
			case IntClass:
				res.SetInt(arithOf(c.Int(row, cell), int64(val), op), row, cell)
			case FloatClass:
				res.SetFloat(arithOf(c.Float(row, cell), val, op), row, cell)
			case ComplexClass:
				res.SetComplex(arithOf(c.Complex(row, cell), complex(val, 0), op), row, cell)
			}
		}
	}
	return res, nil
}

// AddValue returns c + val elementwise. See [ArithValue].
func AddValue(c Column, val float64) (Column, error) { return ArithValue(c, val, AddOp) }

// SubValue returns c - val elementwise. See [ArithValue].
func SubValue(c Column, val float64) (Column, error) { return ArithValue(c, val, SubOp) }

// MulValue returns c * val elementwise. See [ArithValue].
func MulValue(c Column, val float64) (Column, error) { return ArithValue(c, val, MulOp) }

// DivValue returns c / val elementwise; a zero val returns
// [ErrDivisionByZero]. See [ArithValue].
func DivValue(c Column, val float64) (Column, error) { return ArithValue(c, val, DivOp) }

// arithOf applies the operator in the funnel type of the class.
// Zero divisors are excluded by [Arith] before it is called.
func arithOf[T interface{ num.Number | num.Complex }](a, b T, op ArithOp) T {
	switch op {
	case AddOp:
		return a + b
	case SubOp:
		return a - b
	case MulOp:
		return a * b
	default:
		return a / b
	}
}
