package dmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/melon/dmap"
)

// TestMap_New verifies zero-valued construction and Len.
func TestMap_New(t *testing.T) {
	m := dmap.New[int](5)
	require.Equal(t, 5, m.Len())
	for k := 0; k < 5; k++ {
		assert.Zero(t, m.At(k), "key %d", k)
	}
}

// TestMap_NewFilled verifies the default-value constructor.
func TestMap_NewFilled(t *testing.T) {
	m := dmap.NewFilled(4, "x")
	for k := 0; k < 4; k++ {
		assert.Equal(t, "x", m.At(k))
	}
}

// TestMap_SetAtRef covers the O(1) access triad.
func TestMap_SetAtRef(t *testing.T) {
	m := dmap.New[int](3)
	m.Set(1, 42)
	assert.Equal(t, 42, m.At(1))

	*m.Ref(1)++
	assert.Equal(t, 43, m.At(1))

	assert.Zero(t, m.At(0))
	assert.Zero(t, m.At(2))
}

// TestMap_Fill overwrites every entry.
func TestMap_Fill(t *testing.T) {
	m := dmap.NewFilled(3, 7)
	m.Fill(-1)
	for k := 0; k < 3; k++ {
		assert.Equal(t, -1, m.At(k))
	}
}

// TestMap_Resize checks shrink-keeps-prefix and grow semantics.
func TestMap_Resize(t *testing.T) {
	m := dmap.New[int](4)
	for k := 0; k < 4; k++ {
		m.Set(k, k*10)
	}

	m.Resize(2) // shrink keeps surviving prefix
	require.Equal(t, 2, m.Len())
	assert.Equal(t, 10, m.At(1))

	m.Resize(6) // contents undefined after grow; only the length is contractual
	require.Equal(t, 6, m.Len())
}

// TestMap_FromSlice adopts storage without copying.
func TestMap_FromSlice(t *testing.T) {
	backing := []int{1, 2, 3}
	m := dmap.FromSlice(backing)
	require.Equal(t, 3, m.Len())

	m.Set(0, 9)
	assert.Equal(t, 9, backing[0], "FromSlice must alias, not copy")
}

// TestMap_OutOfRange asserts the contract-violation panic.
func TestMap_OutOfRange(t *testing.T) {
	m := dmap.New[int](2)
	assert.Panics(t, func() { m.At(2) })
	assert.Panics(t, func() { m.Set(-1, 0) })
}
