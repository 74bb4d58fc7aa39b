package dmap

// Map is a dense map from int keys in [0, Len) to values of type V.
// The zero Map has length 0; use New or NewFilled for a sized one.
//
// A Map represents a total function: every key in range always has a
// value. Out-of-range keys panic.
type Map[V any] struct {
	data []V
}

// New returns a Map of length n with zero-valued entries.
// Complexity: O(n)
func New[V any](n int) *Map[V] {
	return &Map[V]{data: make([]V, n)}
}

// NewFilled returns a Map of length n with every entry set to def.
// Complexity: O(n)
func NewFilled[V any](n int, def V) *Map[V] {
	m := New[V](n)
	m.Fill(def)

	return m
}

// FromSlice adopts vs as the Map's backing storage without copying.
// The caller must not use vs afterwards.
func FromSlice[V any](vs []V) *Map[V] {
	return &Map[V]{data: vs}
}

// Len reports the size of the key domain.
func (m *Map[V]) Len() int { return len(m.data) }

// At returns the value stored under k. Panics if k is out of range.
// Complexity: O(1)
func (m *Map[V]) At(k int) V { return m.data[k] }

// Set stores v under k. Panics if k is out of range.
// Complexity: O(1)
func (m *Map[V]) Set(k int, v V) { m.data[k] = v }

// Ref returns a pointer to the entry under k, for in-place updates
// (counters, struct fields). The pointer is invalidated by Resize.
// Complexity: O(1)
func (m *Map[V]) Ref(k int) *V { return &m.data[k] }

// Fill sets every entry to v.
// Complexity: O(n)
func (m *Map[V]) Fill(v V) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Resize changes the key domain to [0, n). Contents are undefined after
// a grow; a shrink keeps the surviving prefix. No-op when n == Len.
func (m *Map[V]) Resize(n int) {
	switch {
	case n == len(m.data):
	case n < len(m.data):
		m.data = m.data[:n]
	default:
		m.data = make([]V, n)
	}
}

// Slice exposes the backing storage. Mutating it mutates the Map.
func (m *Map[V]) Slice() []V { return m.data }
