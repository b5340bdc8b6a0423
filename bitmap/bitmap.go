// Package bitmap implements a fixed-size, word-packed bit array used to track
// which blocks of a shadow table are dirty.
package bitmap

import "math/bits"

const wordBits = 64

// Bitmap is a fixed-size bit array over block indices [0, n). The zero value
// is not usable; construct with New.
type Bitmap struct {
	words []uint64
	n     int
}

// New returns a Bitmap with n bits, all initially clear.
func New(n int) Bitmap {
	return Bitmap{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		n:     n,
	}
}

// Len returns the number of bits this Bitmap tracks.
func (b Bitmap) Len() int { return b.n }

// Set marks bit i dirty.
func (b *Bitmap) Set(i int) {
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear marks bit i clean.
func (b *Bitmap) Clear(i int) {
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (b Bitmap) Test(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// SetRange marks bits [first, last] (inclusive) dirty.
func (b *Bitmap) SetRange(first, last int) {
	for i := first; i <= last; i++ {
		b.Set(i)
	}
}

// ClearRange marks bits [first, last] (inclusive) clean.
func (b *Bitmap) ClearRange(first, last int) {
	for i := first; i <= last; i++ {
		b.Clear(i)
	}
}

// ClearAll clears every bit.
func (b *Bitmap) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Any reports whether any bit is set.
func (b Bitmap) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// Iterate invokes f with the index of each set bit, in ascending order.
// Iteration stops early if f returns false. Whole zero words are skipped
// without inspecting individual bits.
func (b Bitmap) Iterate(f func(i int) bool) {
	for wi, w := range b.words {
		if w == 0 {
			continue
		}
		base := wi * wordBits
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			idx := base + tz
			if idx >= b.n {
				return
			}
			if !f(idx) {
				return
			}
			w &^= 1 << uint(tz)
		}
	}
}
