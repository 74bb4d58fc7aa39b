package dmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/melon/dmap"
)

// TestBitMap_SetAt covers single-bit reads and writes across word
// boundaries.
func TestBitMap_SetAt(t *testing.T) {
	b := dmap.NewBitMap(130) // three words
	for _, k := range []int{0, 1, 63, 64, 65, 127, 128, 129} {
		assert.False(t, b.At(k), "fresh bit %d", k)
		b.Set(k, true)
		assert.True(t, b.At(k), "set bit %d", k)
	}
	b.Set(64, false)
	assert.False(t, b.At(64))
	assert.True(t, b.At(63), "clearing 64 must not touch 63")
	assert.True(t, b.At(65), "clearing 64 must not touch 65")
}

// TestBitMap_Fill covers both fill directions.
func TestBitMap_Fill(t *testing.T) {
	b := dmap.NewBitMapFilled(70, true)
	for k := 0; k < 70; k++ {
		require.True(t, b.At(k), "bit %d", k)
	}
	b.Fill(false)
	for k := 0; k < 70; k++ {
		require.False(t, b.At(k), "bit %d", k)
	}
}

// TestBitMap_TrueKeys checks the trailing-zero scan yields exactly the
// set keys, in increasing order.
func TestBitMap_TrueKeys(t *testing.T) {
	b := dmap.NewBitMap(200)
	want := []int{0, 3, 63, 64, 100, 199}
	for _, k := range want {
		b.Set(k, true)
	}

	var got []int
	for k := range b.TrueKeys() {
		got = append(got, k)
	}
	assert.Equal(t, want, got)
}

// TestBitMap_TrueKeys_TailBits ensures Fill's whole-word writes never
// leak keys beyond Len.
func TestBitMap_TrueKeys_TailBits(t *testing.T) {
	b := dmap.NewBitMapFilled(67, true)
	count := 0
	for k := range b.TrueKeys() {
		require.Less(t, k, 67)
		count++
	}
	assert.Equal(t, 67, count)
}

// TestBitMap_Resize checks length bookkeeping.
func TestBitMap_Resize(t *testing.T) {
	b := dmap.NewBitMap(10)
	b.Set(3, true)
	b.Resize(5)
	require.Equal(t, 5, b.Len())
	assert.True(t, b.At(3), "shrink keeps surviving prefix")

	b.Resize(300)
	require.Equal(t, 300, b.Len())
}

// TestBitMap_OutOfRange asserts the contract-violation panic.
func TestBitMap_OutOfRange(t *testing.T) {
	b := dmap.NewBitMap(8)
	assert.Panics(t, func() { b.At(8) })
	assert.Panics(t, func() { b.Set(8, true) })
}
