// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSlice(t *testing.T) {
	bs := New(100)
	assert.Equal(t, 100, bs.Len())
	assert.Equal(t, 0, bs.Count())

	bs.Set(0, true)
	bs.Set(63, true)
	bs.Set(64, true)
	bs.Set(99, true)
	assert.Equal(t, 4, bs.Count())
	assert.True(t, bs.Index(63))
	assert.False(t, bs.Index(62))

	bs.Not()
	assert.Equal(t, 96, bs.Count())
	assert.False(t, bs.Index(0))
	assert.True(t, bs.Index(1))

	bs.SetAll(true)
	assert.Equal(t, 100, bs.Count())
	bs.SetAll(false)
	assert.Equal(t, 0, bs.Count())
}

func TestBitSliceResize(t *testing.T) {
	bs := New(10)
	bs.SetAll(true)
	bs.SetLen(70)
	assert.Equal(t, 10, bs.Count()) // new bits off
	bs.SetLen(5)
	assert.Equal(t, 5, bs.Count())
	bs.Not()
	assert.Equal(t, 0, bs.Count()) // tail bits masked
}

func TestBitSliceEdit(t *testing.T) {
	bs := New(6)
	for i := 0; i < 6; i++ {
		bs.Set(i, i%2 == 0) // 101010
	}
	bs.Insert(2, 2) // 10__1010 with new bits off
	assert.Equal(t, 8, bs.Len())
	assert.True(t, bs.Index(0))
	assert.False(t, bs.Index(2))
	assert.False(t, bs.Index(3))
	assert.True(t, bs.Index(4))

	bs.Delete(2, 2) // back to 101010
	assert.Equal(t, 6, bs.Len())
	for i := 0; i < 6; i++ {
		assert.Equal(t, i%2 == 0, bs.Index(i))
	}

	bs.Append(true)
	assert.Equal(t, 7, bs.Len())
	assert.True(t, bs.Index(6))
}

func TestBitSlicePermute(t *testing.T) {
	bs := New(4)
	bs.Set(0, true)
	bs.Set(1, true) // 1100
	bs.Permute([]int{3, 2, 1, 0})
	for i, want := range []bool{false, false, true, true} {
		assert.Equal(t, want, bs.Index(i))
	}
}
