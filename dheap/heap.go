package dheap

import (
	"errors"

	"github.com/pradkrish/melon/dmap"
)

// Position-map states for keys that are not in the heap. Any value
// >= 0 is the slot of an in-heap entry.
const (
	// Unseen marks a key that has never been pushed (or was cleared).
	Unseen = -1

	// Settled marks a key whose entry has been popped.
	Settled = -2
)

// Sentinel errors; heap contract violations panic with these values.
var (
	// ErrBadArity reports a branching factor below 2.
	ErrBadArity = errors.New("dheap: arity must be at least 2")

	// ErrEmpty reports Top or Pop on an empty heap.
	ErrEmpty = errors.New("dheap: heap is empty")

	// ErrNotUnseen reports Push of a key that is in the heap or settled.
	ErrNotUnseen = errors.New("dheap: pushed key is not unseen")

	// ErrNotInHeap reports Priority or Promote of a key with no entry.
	ErrNotInHeap = errors.New("dheap: key is not in the heap")
)

// Key constrains heap keys to integer handle types that index the
// position map.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Entry is one (key, priority) element of the heap.
type Entry[K Key, P any] struct {
	Key      K
	Priority P
}

// Heap is an addressable d-ary min-heap under less. It owns its entry
// buffer but borrows the position map; the caller is responsible for
// sizing the map to the key domain and prefilling it with Unseen.
type Heap[K Key, P any] struct {
	arity   int
	less    func(a, b P) bool
	pos     *dmap.Map[int]
	entries []Entry[K, P]
}

// New returns an empty heap with the given branching factor, priority
// order and position map. Panics with ErrBadArity if arity < 2.
// The position map is left untouched; prefill it with Unseen.
func New[K Key, P any](arity int, less func(a, b P) bool, pos *dmap.Map[int]) *Heap[K, P] {
	if arity < 2 {
		panic(ErrBadArity)
	}

	return &Heap[K, P]{arity: arity, less: less, pos: pos}
}

// Len reports the number of entries in the heap.
func (h *Heap[K, P]) Len() int { return len(h.entries) }

// Empty reports whether the heap holds no entries.
func (h *Heap[K, P]) Empty() bool { return len(h.entries) == 0 }

// Top returns the minimum entry without removing it.
// Panics with ErrEmpty on an empty heap.
func (h *Heap[K, P]) Top() Entry[K, P] {
	if len(h.entries) == 0 {
		panic(ErrEmpty)
	}

	return h.entries[0]
}

// Push inserts (k, p) and sifts it up, updating the position map along
// the way. Panics with ErrNotUnseen unless pos[k] == Unseen.
// Complexity: O(log_d n)
func (h *Heap[K, P]) Push(k K, p P) {
	if h.pos.At(int(k)) != Unseen {
		panic(ErrNotUnseen)
	}
	h.entries = append(h.entries, Entry[K, P]{Key: k, Priority: p})
	h.siftUp(len(h.entries) - 1)
}

// Pop removes and returns the minimum entry and marks its key Settled
// in the position map.
// Panics with ErrEmpty on an empty heap.
// Complexity: O(d·log_d n)
func (h *Heap[K, P]) Pop() Entry[K, P] {
	if len(h.entries) == 0 {
		panic(ErrEmpty)
	}
	top := h.entries[0]
	h.pos.Set(int(top.Key), Settled)

	last := len(h.entries) - 1
	if last > 0 {
		h.entries[0] = h.entries[last]
		h.entries = h.entries[:last]
		h.siftDown(0)
	} else {
		h.entries = h.entries[:0]
	}

	return top
}

// Priority returns the current priority of an in-heap key.
// Panics with ErrNotInHeap for unseen or settled keys.
func (h *Heap[K, P]) Priority(k K) P {
	slot := h.pos.At(int(k))
	if slot < 0 {
		panic(ErrNotInHeap)
	}

	return h.entries[slot].Priority
}

// Promote lowers the priority of an in-heap key — decrease-key. The
// new priority must strictly precede the stored one under less;
// otherwise the call is rejected and reports false. On success the
// entry sifts up from its tracked slot.
// Panics with ErrNotInHeap for unseen or settled keys.
// Complexity: O(log_d n)
func (h *Heap[K, P]) Promote(k K, p P) bool {
	slot := h.pos.At(int(k))
	if slot < 0 {
		panic(ErrNotInHeap)
	}
	if !h.less(p, h.entries[slot].Priority) {
		return false
	}
	h.entries[slot].Priority = p
	h.siftUp(slot)

	return true
}

// Clear empties the heap without touching the position map; the caller
// owns resetting the map (engines refill it on Reset). The entry
// buffer is kept for reuse.
func (h *Heap[K, P]) Clear() { h.entries = h.entries[:0] }

// siftUp moves the entry at slot i toward the root until its parent is
// not greater, recording each hop in the position map.
func (h *Heap[K, P]) siftUp(i int) {
	e := h.entries[i]
	for i > 0 {
		parent := (i - 1) / h.arity
		if !h.less(e.Priority, h.entries[parent].Priority) {
			break
		}
		h.entries[i] = h.entries[parent]
		h.pos.Set(int(h.entries[i].Key), i)
		i = parent
	}
	h.entries[i] = e
	h.pos.Set(int(e.Key), i)
}

// siftDown moves the entry at slot i toward the leaves, swapping with
// its least child while that child is smaller.
func (h *Heap[K, P]) siftDown(i int) {
	e := h.entries[i]
	n := len(h.entries)
	for {
		first := i*h.arity + 1
		if first >= n {
			break
		}
		least := first
		end := min(first+h.arity, n)
		for c := first + 1; c < end; c++ {
			if h.less(h.entries[c].Priority, h.entries[least].Priority) {
				least = c
			}
		}
		if !h.less(h.entries[least].Priority, e.Priority) {
			break
		}
		h.entries[i] = h.entries[least]
		h.pos.Set(int(h.entries[i].Key), i)
		i = least
	}
	h.entries[i] = e
	h.pos.Set(int(e.Key), i)
}
