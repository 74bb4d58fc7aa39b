// Package dmap provides dense, contiguously stored maps over integer
// keys in [0, Len) — the storage primitive every container and engine
// in this module builds on.
//
// What:
//
//   - Map[V]: a total function from int keys in [0, Len) to V, backed by
//     a single slice. O(1) At/Set/Ref, O(n) Fill, Resize with undefined
//     contents after growth.
//   - BitMap: the bool specialisation, packing 64 entries per word, with
//     TrueKeys iteration that scans words and counts trailing zeros.
//
// Why:
//
//   - Graph containers hand out dense Vertex/Arc identifiers, so a slice
//     beats a hash map for every per-vertex and per-arc store.
//   - Engines refill these maps on Reset instead of reallocating them.
//
// Failure model: indexing a key outside [0, Len) is a programming error
// and panics via the runtime bounds check (Map) or an explicit check
// (BitMap). There is nothing to recover; fix the caller.
//
// Complexity:
//
//   - At/Set/Ref: O(1)
//   - Fill:       O(n) (BitMap: O(n/64))
//   - TrueKeys:   O(n/64 + k) for k set keys
package dmap
