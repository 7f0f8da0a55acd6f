// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix adapts a numeric column to the gonum [mat.Matrix] interface,
// as a Rows x Cells matrix, so that columns can be passed directly to
// gonum routines. Invalid rows read as NaN.
type Matrix struct {
	Column Column
}

// AsMatrix returns a gonum [mat.Matrix] view of the given column.
func AsMatrix(c Column) *Matrix {
	return &Matrix{Column: c}
}

// Dims returns the dimensions of the matrix: rows x cells.
func (m *Matrix) Dims() (r, c int) {
	return m.Column.Rows(), m.Column.Cells()
}

// At returns the value at given row, column of the matrix.
func (m *Matrix) At(i, j int) float64 {
	if !m.Column.IsValid(i) {
		return math.NaN()
	}
	return m.Column.Float(i, j)
}

// T returns the transpose of the matrix, using [mat.Transpose].
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// FromDense copies a gonum [mat.Dense] into a new Float64 column with
// the matrix columns as cells, every row valid.
func FromDense(name string, dm *mat.Dense) *Data[float64] {
	nr, nc := dm.Dims()
	depth := 0
	if nc > 1 {
		depth = nc
	}
	dc := New[float64](name, nr, depth)
	for ri := 0; ri < nr; ri++ {
		for ci := 0; ci < nc; ci++ {
			dc.SetFloat(dm.At(ri, ci), ri, ci)
		}
	}
	return dc
}

// ToDense copies a numeric column into a new gonum [mat.Dense],
// with invalid rows as NaN.
func ToDense(c Column) *mat.Dense {
	nr, nc := c.Rows(), c.Cells()
	dm := mat.NewDense(max(1, nr), nc, nil)
	for ri := 0; ri < nr; ri++ {
		for ci := 0; ci < nc; ci++ {
			if c.IsValid(ri) {
				dm.Set(ri, ci, c.Float(ri, ci))
			} else {
				dm.Set(ri, ci, math.NaN())
			}
		}
	}
	return dm
}
