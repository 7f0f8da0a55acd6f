// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"cogentcore.org/ctable/column"
	"github.com/stretchr/testify/assert"
)

func TestNameCursor(t *testing.T) {
	dt := NewTable(1)
	for _, nm := range []string{"a", "b", "c"} {
		_, err := AddColumn[float64](dt, nm)
		assert.NoError(t, err)
	}

	nc := dt.ColumnNames()
	var got []string
	for {
		nm, ok := nc.Next()
		if !ok {
			break
		}
		got = append(got, nm)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.NoError(t, nc.Err())
}

func TestNameCursorInvalidated(t *testing.T) {
	dt := NewTable(1)
	_, err := AddColumn[float64](dt, "a")
	assert.NoError(t, err)
	_, err = AddColumn[float64](dt, "b")
	assert.NoError(t, err)

	nc := dt.ColumnNames()
	nm, ok := nc.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", nm)

	assert.NoError(t, dt.Rename("b", "c"))
	_, ok = nc.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, nc.Err(), ErrInvalidated)

	// a fresh cursor sees the new structure
	nc = dt.ColumnNames()
	nm, ok = nc.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", nm)
	assert.NoError(t, nc.Err())
}

func TestRawView(t *testing.T) {
	dt := NewTable(3)
	_, err := AddColumn[float64](dt, "v")
	assert.NoError(t, err)
	assert.NoError(t, dt.SetFloat("v", 1, 2.5))

	rv, err := Raw[float64](dt, "v")
	assert.NoError(t, err)
	assert.True(t, rv.Usable())
	assert.Equal(t, 1, rv.Cells)
	assert.Equal(t, 2.5, rv.Values[1])
	assert.True(t, rv.Valid.Index(1))
	assert.False(t, rv.Valid.Index(0))

	// writes through the view land in the column
	rv.Values[0] = 7.5
	rv.SetValid(0, true)
	v, valid, _ := dt.Float("v", 0)
	assert.True(t, valid)
	assert.Equal(t, 7.5, v)

	_, err = Raw[int64](dt, "v")
	assert.ErrorIs(t, err, column.ErrTypeMismatch)
	_, err = Raw[float64](dt, "nope")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestRawViewInvalidated(t *testing.T) {
	dt := NewTable(2)
	_, err := AddColumn[float64](dt, "v")
	assert.NoError(t, err)

	rv, err := Raw[float64](dt, "v")
	assert.NoError(t, err)
	assert.NoError(t, rv.Err())

	_, err = AddColumn[float64](dt, "w")
	assert.NoError(t, err)
	assert.False(t, rv.Usable())
	assert.ErrorIs(t, rv.Err(), ErrInvalidated)
}
