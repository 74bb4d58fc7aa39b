// Package bfs provides a stepwise breadth-first traversal engine over
// any digraph container with forward incidence.
//
// What:
//
//   - Traversal[G]: a state machine bound to a borrowed graph. Seed it
//     with AddSource (any number of sources), then step with Advance,
//     drain with Run, or range over All. Vertices come out in strict
//     FIFO order: non-decreasing unweighted distance from the nearest
//     source.
//   - Optional per-vertex stores chosen at construction: predecessor
//     vertex (WithPredVertices), predecessor arc (WithPredArcs) and
//     depth (WithDepths). A store that was not requested costs nothing
//     and its query panics.
//
// Why:
//
//   - Stepwise engines let callers stop early, inspect partial results
//     (Reached, Depth on reached vertices) and resume — cancellation is
//     simply not calling Advance again.
//   - Reset refills the engine's maps without reallocating, so one
//     engine can serve many traversals of the same graph.
//
// The borrowed graph must not be mutated while the engine lives.
//
// Complexity:
//
//   - Time:   O(V + A) for a full run
//   - Memory: O(V), allocated once at construction
package bfs
