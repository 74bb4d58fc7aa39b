// Package topo provides a stepwise topological traversal engine —
// Kahn-style in-degree reduction — over any digraph container with
// forward incidence.
//
// What:
//
//   - Traversal[G]: seeds itself with every zero-in-degree vertex at
//     construction (and again on Reset), then settles one vertex per
//     Advance, decrementing each out-neighbour's remaining in-degree
//     and enqueueing those that hit zero. The emitted order is
//     dependency-consistent: for every arc u→v with both endpoints
//     reached, u comes out before v.
//   - Cycles are a domain outcome, not an error: the queue drains while
//     the vertices on and behind cycles stay unreached. Compare
//     NbReached against NbVertices, or probe Reached.
//   - Optional stores as in the sibling engines: predecessor vertex,
//     predecessor arc, depth (longest-prefix layer, parent + 1).
//
// Why:
//
//   - When the container can answer InDegree in O(1) (Static), the
//     counter initialises directly; otherwise one counting pass over
//     Arcs fills it. The choice is made once, at construction.
//
// The borrowed graph must not be mutated while the engine lives.
//
// Complexity:
//
//   - Time:   O(V + A) for a full run (including initialisation)
//   - Memory: O(V), allocated once at construction
package topo
