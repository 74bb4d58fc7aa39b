package dmap

import (
	"iter"
	"math/bits"
)

// wordBits is the number of entries packed into one storage word.
const wordBits = 64

// nbWords returns the number of words needed for n bits.
func nbWords(n int) int { return (n + wordBits - 1) / wordBits }

// BitMap is the bool specialisation of Map: one bit per key, 64 keys
// per word. The zero BitMap has length 0.
type BitMap struct {
	words []uint64
	size  int
}

// NewBitMap returns a BitMap of length n with every entry false.
// Complexity: O(n/64)
func NewBitMap(n int) *BitMap {
	return &BitMap{words: make([]uint64, nbWords(n)), size: n}
}

// NewBitMapFilled returns a BitMap of length n with every entry set to v.
func NewBitMapFilled(n int, v bool) *BitMap {
	b := NewBitMap(n)
	if v {
		b.Fill(true)
	}

	return b
}

// Len reports the size of the key domain.
func (b *BitMap) Len() int { return b.size }

// At returns the bit stored under k. Panics if k is out of range.
// Complexity: O(1)
func (b *BitMap) At(k int) bool {
	if k < 0 || k >= b.size {
		panic("dmap: BitMap key out of range")
	}

	return b.words[k/wordBits]&(1<<(uint(k)%wordBits)) != 0
}

// Set stores v under k by masking the containing word.
// Panics if k is out of range.
// Complexity: O(1)
func (b *BitMap) Set(k int, v bool) {
	if k < 0 || k >= b.size {
		panic("dmap: BitMap key out of range")
	}
	mask := uint64(1) << (uint(k) % wordBits)
	if v {
		b.words[k/wordBits] |= mask
	} else {
		b.words[k/wordBits] &^= mask
	}
}

// Fill sets every entry to v. Whole words are written, including the
// tail bits beyond Len; TrueKeys never yields them.
// Complexity: O(n/64)
func (b *BitMap) Fill(v bool) {
	var w uint64
	if v {
		w = ^uint64(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
}

// Append extends the key domain by one entry set to v, preserving all
// existing entries — the arena-growth path of the mutable digraph.
// Complexity: O(1) amortised
func (b *BitMap) Append(v bool) {
	if nbWords(b.size+1) > len(b.words) {
		b.words = append(b.words, 0)
	}
	b.size++
	b.Set(b.size-1, v)
}

// Resize changes the key domain to [0, n). Contents are undefined after
// a grow; a shrink keeps the surviving prefix. No-op when n == Len.
func (b *BitMap) Resize(n int) {
	if n == b.size {
		return
	}
	if w := nbWords(n); w != len(b.words) {
		if w < len(b.words) {
			b.words = b.words[:w]
		} else {
			b.words = make([]uint64, w)
		}
	}
	b.size = n
}

// TrueKeys iterates over the set keys in increasing order by scanning
// words and counting trailing zeros, skipping 64 cleared entries per
// step.
// Complexity: O(n/64 + k) for k set keys
func (b *BitMap) TrueKeys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range b.words {
			for w != 0 {
				k := wi*wordBits + bits.TrailingZeros64(w)
				if k >= b.size {
					return
				}
				if !yield(k) {
					return
				}
				w &= w - 1 // clear the lowest set bit
			}
		}
	}
}
