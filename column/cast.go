// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

// CastTo returns a new column of the given kind, with natively
// converted values (truncating integer conversion, no overflow
// diagnostics) and the same validity pattern, name, depth and unit.
func (dc *Data[T]) CastTo(k Kind) (Column, error) {
	return CastDepth(dc, k, dc.depth)
}

// CastDepth returns a new column of the given kind and depth with the
// values of c natively converted and the same validity pattern.
// The source and destination cell counts must match: only depth 0
// scalar and depth 1 single-element array are interchangeable.
func CastDepth(c Column, k Kind, depth int) (Column, error) {
	if c == nil {
		return nil, ErrNullArgument
	}
	dst := OfKind(k, c.Name(), c.Rows(), depth)
	if dst.Cells() != c.Cells() {
		return nil, ErrTypeMismatch
	}
	dst.SetUnit(c.Unit())
	dst.SetFormat(c.Format())
	cs := dst.Cells()
	for row := 0; row < c.Rows(); row++ {
		if !c.IsValid(row) {
			continue
		}
		for cell := 0; cell < cs; cell++ {
			switch k.Class() {
			case IntClass:
				dst.SetInt(c.Int(row, cell), row, cell)
			case FloatClass:
				dst.SetFloat(c.Float(row, cell), row, cell)
			case ComplexClass:
				dst.SetComplex(c.Complex(row, cell), row, cell)
			case StringClass:
				dst.SetString(c.StringValue(row, cell), row, cell)
			}
		}
	}
	return dst, nil
}
