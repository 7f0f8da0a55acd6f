// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"cogentcore.org/ctable/column"
	"github.com/stretchr/testify/assert"
)

func TestAddColumns(t *testing.T) {
	dt := NewTable(3)
	fc, err := AddColumn[float64](dt, "flux")
	assert.NoError(t, err)
	assert.Equal(t, 3, fc.Rows())
	_, err = AddColumn[int32](dt, "counts")
	assert.NoError(t, err)
	_, err = AddColumn[string](dt, "flux")
	assert.ErrorIs(t, err, ErrIllegalOutput)
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, 3, dt.Rows())

	sc, err := dt.AddColumnOfKind(column.Float64, "spectrum", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, sc.Cells())
	assert.Equal(t, 3, sc.Rows())
}

func TestAddColumnResize(t *testing.T) {
	dt := NewTable(5)
	cl := column.New[int64]("n", 2)
	assert.NoError(t, dt.AddColumn(cl))
	assert.Equal(t, 5, cl.Rows())
	assert.ErrorIs(t, dt.AddColumn(nil), ErrNullArgument)
}

func TestScalarAccess(t *testing.T) {
	dt := NewTable(2)
	_, err := AddColumn[float64](dt, "flux")
	assert.NoError(t, err)

	_, valid, err := dt.Float("flux", 0)
	assert.NoError(t, err)
	assert.False(t, valid)

	assert.NoError(t, dt.SetFloat("flux", 0, 3.14))
	v, valid, err := dt.Float("flux", 0)
	assert.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, 3.14, v)

	assert.NoError(t, dt.SetInvalid("flux", 0))
	_, valid, _ = dt.Float("flux", 0)
	assert.False(t, valid)

	_, _, err = dt.Float("flux", 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = dt.Float("nope", 0)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestExtractEraseRename(t *testing.T) {
	dt := NewTable(2)
	_, err := AddColumn[int64](dt, "a")
	assert.NoError(t, err)
	_, err = AddColumn[int64](dt, "b")
	assert.NoError(t, err)

	cl, err := dt.Extract("a")
	assert.NoError(t, err)
	assert.Equal(t, "a", cl.Name())
	assert.Nil(t, dt.Column("a"))
	assert.Equal(t, 1, dt.NumColumns())

	assert.NoError(t, dt.Rename("b", "c"))
	assert.NotNil(t, dt.Column("c"))
	assert.ErrorIs(t, dt.Rename("b", "d"), ErrColumnNotFound)

	assert.NoError(t, dt.Erase("c"))
	assert.Equal(t, 0, dt.NumColumns())
	assert.ErrorIs(t, dt.Erase("c"), ErrColumnNotFound)
}

func TestMoveTo(t *testing.T) {
	src := NewTable(3)
	_, err := AddColumn[float64](src, "flux")
	assert.NoError(t, err)
	assert.NoError(t, src.SetFloat("flux", 1, 2.5))

	dst := NewTable(3)
	assert.NoError(t, src.MoveTo(dst, "flux"))
	assert.Equal(t, 0, src.NumColumns())
	v, valid, err := dst.Float("flux", 1)
	assert.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, 2.5, v)

	bad := NewTable(4)
	_, err = AddColumn[float64](dst, "other")
	assert.NoError(t, err)
	assert.ErrorIs(t, dst.MoveTo(bad, "other"), ErrIncompatibleInput)
}

func TestDuplicateColumn(t *testing.T) {
	dt := NewTable(2)
	_, err := AddColumn[int64](dt, "a")
	assert.NoError(t, err)
	assert.NoError(t, dt.SetInt("a", 0, 7))

	assert.NoError(t, dt.DuplicateColumn("a", "a2"))
	v, valid, err := dt.Int("a2", 0)
	assert.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, int64(7), v)

	// deep copy: mutating the duplicate leaves the original alone
	assert.NoError(t, dt.SetInt("a2", 0, 9))
	v, _, _ = dt.Int("a", 0)
	assert.Equal(t, int64(7), v)
}

func TestStructure(t *testing.T) {
	model := NewTable(4)
	fc, err := AddColumn[float64](model, "flux")
	assert.NoError(t, err)
	fc.SetUnit("Jy")
	_, err = AddColumn[string](model, "name")
	assert.NoError(t, err)

	dt := NewTable(2)
	assert.NoError(t, dt.CopyStructure(model))
	assert.Equal(t, 2, dt.Rows())
	assert.True(t, CompareStructure(dt, model))
	assert.Equal(t, "Jy", dt.Column("flux").Unit())

	// column order is irrelevant to structural equality
	other := NewTable(2)
	_, err = AddColumn[string](other, "name")
	assert.NoError(t, err)
	oc, err := AddColumn[float64](other, "flux")
	assert.NoError(t, err)
	oc.SetUnit("Jy")
	assert.True(t, CompareStructure(dt, other))

	oc.SetUnit("mJy")
	assert.False(t, CompareStructure(dt, other))

	assert.ErrorIs(t, dt.CopyStructure(model), ErrIllegalOutput)
}

func TestCloneIndependence(t *testing.T) {
	dt := NewTable(3)
	_, err := AddColumn[int64](dt, "a")
	assert.NoError(t, err)
	assert.NoError(t, dt.SetInt("a", 0, 1))
	_, err = dt.And("a", Greater, 0)
	assert.NoError(t, err)

	cp := dt.Clone()
	assert.NoError(t, cp.SetInt("a", 0, 99))
	cp.SelectAll()

	v, _, _ := dt.Int("a", 0)
	assert.Equal(t, int64(1), v)
	assert.Equal(t, 1, dt.SelectedCount())
	assert.Equal(t, 3, cp.SelectedCount())
}

func TestFillWindow(t *testing.T) {
	dt := NewTable(4)
	_, err := AddColumn[float64](dt, "v")
	assert.NoError(t, err)
	assert.NoError(t, dt.FillWindow("v", 1, 2, 2.5))
	for row := 0; row < 4; row++ {
		v, valid, _ := dt.Float("v", row)
		if row == 1 || row == 2 {
			assert.True(t, valid)
			assert.Equal(t, 2.5, v)
		} else {
			assert.False(t, valid)
		}
	}
	assert.ErrorIs(t, dt.FillWindow("v", 3, 2, 0.0), ErrOutOfRange)
	assert.ErrorIs(t, dt.FillWindow("v", 0, -1, 0.0), ErrIllegalArgument)

	_, err = AddColumn[string](dt, "s")
	assert.NoError(t, err)
	assert.NoError(t, dt.FillWindow("s", 0, 4, "x"))
	sv, valid, _ := dt.StringValue("s", 3)
	assert.True(t, valid)
	assert.Equal(t, "x", sv)
}
