// Package digraph defines the directed-graph containers of this module
// and the capability surface the traversal engines program against.
//
// What:
//
//   - Vertex and Arc: dense uint32 handles. In the static containers
//     they are exactly [0, n); in Mutable they are stable across
//     non-removing mutations and may be reused after removal.
//   - Capability interfaces: Digraph (enumeration + Target),
//     ForwardIncidence (OutArcs), BackwardIncidence (InArcs),
//     ArcSource (Source in O(1)), InDegree (in-degree in O(1)).
//     A capability is a property of the container type; engines assert
//     them once, at construction, never per iteration.
//   - StaticForward: immutable CSR digraph — out-arc offsets plus arc
//     targets. The smallest container that can drive every engine.
//   - Static: immutable bidirectional CSR — adds arc sources and a
//     reverse CSR, buying O(1) Source, InArcs and InDegree.
//   - Mutable: a dynamic digraph over an arena of vertex and arc
//     records linked into intrusive out-, in- and free-lists; O(1)
//     arc creation, removal and re-homing, O(deg) vertex removal.
//   - Builder: collects (u,v) pairs in any order and emits a static
//     container whose arc identities follow the source-sorted order.
//
// Why:
//
//   - Engines own per-vertex and per-arc state; the NewVertexMap /
//     NewArcMap factories size those dense maps to the container's key
//     domain so engine and graph always agree on indexing.
//   - Enumeration is lazy (iter.Seq): holding a range costs a closure,
//     advancing it touches only indices. Mutating a Mutable list while
//     walking it is a contract violation.
//
// Complexity highlights:
//
//   - StaticForward / Static construction: O(V + A)
//   - Static.Source, Static.InDegree: O(1); StaticForward.FindSource: O(log V)
//   - Mutable.CreateArc, RemoveArc, ChangeArcSource/Target: O(1)
//   - Mutable.RemoveVertex: O(deg(v))
package digraph
