// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitslice implements a fixed-length slice of bits packed into
// uint64 words, used for per-row validity and selection masks where a
// []bool would be 8x larger. All indexes are in terms of bits.
package bitslice

import (
	"fmt"
	"math/bits"
	"strings"
)

// Slice is a fixed-length bit vector packed into uint64 words.
// The zero value is an empty slice of length 0.
type Slice struct {
	words []uint64
	n     int
}

// New returns a new Slice of given length, with all bits off.
func New(n int) *Slice {
	bs := &Slice{}
	bs.SetLen(n)
	return bs
}

// Len returns the number of bits in the slice.
func (bs *Slice) Len() int { return bs.n }

// SetLen sets the length of the slice, preserving the prefix that fits.
// New bits are off.
func (bs *Slice) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	nw := (n + 63) / 64
	switch {
	case nw > len(bs.words):
		bs.words = append(bs.words, make([]uint64, nw-len(bs.words))...)
	case nw < len(bs.words):
		bs.words = bs.words[:nw]
	}
	bs.n = n
	bs.clearTail()
}

// clearTail zeroes any bits beyond Len in the last word, so that
// Count and Not remain exact.
func (bs *Slice) clearTail() {
	if bs.n%64 != 0 && len(bs.words) > 0 {
		bs.words[len(bs.words)-1] &= (uint64(1) << uint(bs.n%64)) - 1
	}
}

// Index returns the bit at given index.
func (bs *Slice) Index(i int) bool {
	return bs.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// Set sets the bit at given index.
func (bs *Slice) Set(i int, b bool) {
	if b {
		bs.words[i/64] |= uint64(1) << uint(i%64)
	} else {
		bs.words[i/64] &^= uint64(1) << uint(i%64)
	}
}

// SetAll sets every bit to given value.
func (bs *Slice) SetAll(b bool) {
	var w uint64
	if b {
		w = ^uint64(0)
	}
	for i := range bs.words {
		bs.words[i] = w
	}
	bs.clearTail()
}

// Count returns the number of bits that are on.
func (bs *Slice) Count() int {
	c := 0
	for _, w := range bs.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Not flips every bit in place.
func (bs *Slice) Not() {
	for i := range bs.words {
		bs.words[i] = ^bs.words[i]
	}
	bs.clearTail()
}

// Clone returns a copy of this bit slice.
func (bs *Slice) Clone() *Slice {
	cp := &Slice{n: bs.n}
	cp.words = make([]uint64, len(bs.words))
	copy(cp.words, bs.words)
	return cp
}

// Insert inserts n off bits starting at given index.
func (bs *Slice) Insert(at, n int) {
	old := bs.Clone()
	bs.SetLen(bs.n + n)
	for i := bs.n - 1; i >= at+n; i-- {
		bs.Set(i, old.Index(i-n))
	}
	for i := at; i < at+n; i++ {
		bs.Set(i, false)
	}
}

// Delete removes n bits starting at given index.
func (bs *Slice) Delete(at, n int) {
	for i := at; i < bs.n-n; i++ {
		bs.Set(i, bs.Index(i+n))
	}
	bs.SetLen(bs.n - n)
}

// Append adds one bit of given value to the end.
func (bs *Slice) Append(b bool) {
	bs.SetLen(bs.n + 1)
	bs.Set(bs.n-1, b)
}

// Permute reorders the bits by the given index permutation:
// bit i of the result is the bit previously at perm[i].
// The permutation must have the same length as the slice.
func (bs *Slice) Permute(perm []int) {
	old := bs.Clone()
	for i, pi := range perm {
		bs.Set(i, old.Index(pi))
	}
}

// String satisfies the fmt.Stringer interface.
func (bs *Slice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d: ", bs.n)
	mx := min(bs.n, 1000)
	for i := 0; i < mx; i++ {
		if bs.Index(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	if mx < bs.n {
		b.WriteString("...")
	}
	b.WriteByte(']')
	return b.String()
}
