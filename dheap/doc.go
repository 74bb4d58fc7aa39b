// Package dheap provides an addressable d-ary min-heap whose entry
// positions live in an external, caller-supplied dense map — the
// priority queue behind the shortest-path engine.
//
// What:
//
//   - Heap[K, P]: a min-heap of (key, priority) entries ordered by a
//     strict-weak-order less function, with Push, Top, Pop, Priority,
//     Promote (decrease-key) and Clear.
//   - The position map: a dmap.Map[int] the caller creates over its own
//     key domain (typically a graph's vertex-map factory). In-heap keys
//     map to their slot; Unseen and Settled are the two out-of-heap
//     states. Pop writes Settled, so the map doubles as a status map
//     the caller can read without going through the heap.
//
// Why:
//
//   - Keeping positions outside the heap lets it serve any dense key
//     domain without a secondary hash, and gives the engine status
//     tracking for free at the same cost.
//   - Promote restores heap order after a strict priority improvement in
//     O(log_d n) by sifting up from the tracked slot.
//
// The heap does not know which keys exist; keys never pushed simply
// keep their Unseen entry.
//
// Complexity (n entries, arity d):
//
//   - Push:     O(log_d n)
//   - Pop:      O(d·log_d n)
//   - Promote:  O(log_d n)
//   - Top, Priority, Len, Empty: O(1)
package dheap
