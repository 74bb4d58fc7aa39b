// Package dijkstra provides a stepwise shortest-path engine generic
// over an ordered semiring, so one relaxation loop serves regular
// shortest paths, widest (max-bottleneck) paths and most-reliable
// paths.
//
// What:
//
//   - Search[G, V, S]: Dijkstra's algorithm as a state machine over a
//     borrowed graph and arc-cost map. Seed with AddSource (optionally
//     at a non-zero start value), settle one vertex per Advance in
//     non-decreasing priority order under the semiring's Less, drain
//     with Run, or range over All.
//   - Semiring[V]: Zero, Plus and Less. Plus must be monotone under
//     Less and non-decreasing in each argument for values ≥ Zero;
//     under that contract every settled priority is final. Shipped
//     instantiations: ShortestPaths (plus +, less <, zero 0),
//     WidestPaths (plus min, less >, zero +∞), MostReliable
//     (plus ×, less >, zero 1).
//   - The frontier is an addressable d-ary heap (dheap); its position
//     map doubles as the engine's status map: Unseen, in-heap slot, or
//     Settled. Relaxing an in-heap vertex to a strictly better value
//     is a true decrease-key, so each vertex is pushed at most once.
//
// Why:
//
//   - The semiring is a type parameter instantiated with a zero-size
//     struct value, so Plus/Less/Zero compile to direct calls.
//   - Optional stores (WithPaths, WithDistances) cost nothing when off;
//     when the container answers Source in O(1) the engine derives
//     predecessor vertices from predecessor arcs instead of storing
//     them.
//
// The borrowed graph and cost map must not be mutated while the engine
// lives. Costs below Zero void the monotonicity contract; this engine
// is the wrong tool for them.
//
// Complexity:
//
//   - Time:   O((V + A)·log_d V) for a full run
//   - Memory: O(V), allocated once at construction
package dijkstra
