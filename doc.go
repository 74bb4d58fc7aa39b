// Package melon is an in-memory toolkit for directed-graph algorithms —
// containers first, engines on top.
//
// 🚀 What is melon?
//
//	A generic, allocation-conscious library that brings together:
//		• Dense containers: int-keyed maps, bit-packed bool maps
//		• An addressable d-ary heap with decrease-key via a shared position map
//		• Digraph containers: immutable CSR (forward & bidirectional) and a
//		  mutable arena digraph with intrusive adjacency lists
//		• Traversal engines: BFS, DFS, topological order
//		• A shortest-path engine generic over an ordered semiring
//		  (shortest, widest and most-reliable paths from one implementation)
//
// ✨ Why choose melon?
//
//   - Capability-driven – engines ask the graph type what it can do
//     (incidence, arc sources, in-degrees) once, at construction
//   - Stepwise engines – AddSource / Advance / Run state machines you can
//     pause, inspect and resume at any vertex
//   - Pure Go – no cgo, generics end to end, a single test-only dependency
//
// Everything is organized under seven subpackages:
//
//	dmap/     — dense int-keyed maps and bit-packed bool maps
//	dheap/    — addressable d-ary min-heap with an external position map
//	digraph/  — Vertex/Arc handles, capability interfaces, the three
//	            containers and the arc-sorting Builder
//	bfs/      — breadth-first traversal engine
//	dfs/      — depth-first traversal engine
//	topo/     — Kahn-style topological traversal engine
//	dijkstra/ — semiring-generic shortest-path engine
//
// Quick ASCII example:
//
//	    0──▶1──▶3
//	    │       │
//	    ▼       ▼
//	    2──────▶4
//
//	a five-vertex DAG; every engine in this module can walk it.
//
//	go get github.com/pradkrish/melon
package melon
