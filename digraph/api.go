package digraph

import (
	"iter"

	"github.com/pradkrish/melon/dmap"
)

// Digraph is the base capability every container exposes: sized vertex
// and arc sets with stable enumeration order, validity checks, arc
// targets, and dense key domains for the map factories.
//
// VertexBound and ArcBound give the capacity of the dense key domain —
// the exclusive upper bound on handle values currently in use. For the
// static containers they equal NbVertices and NbArcs; for Mutable they
// also count removed slots, so maps created over a mutated graph still
// index every live handle.
type Digraph interface {
	// NbVertices reports the number of (live) vertices.
	NbVertices() int
	// NbArcs reports the number of (live) arcs.
	NbArcs() int
	// IsValidVertex reports whether v is a vertex of the graph.
	IsValidVertex(v Vertex) bool
	// IsValidArc reports whether a is an arc of the graph.
	IsValidArc(a Arc) bool
	// Vertices enumerates the vertex set in its canonical order.
	Vertices() iter.Seq[Vertex]
	// Arcs enumerates the arc set in its canonical order.
	Arcs() iter.Seq[Arc]
	// Target returns the head vertex of arc a.
	Target(a Arc) Vertex
	// VertexBound is the dense key-domain capacity for vertex maps.
	VertexBound() int
	// ArcBound is the dense key-domain capacity for arc maps.
	ArcBound() int
}

// ForwardIncidence is the capability the forward engines require:
// enumerating each vertex's outgoing arcs.
type ForwardIncidence interface {
	Digraph
	// OutArcs enumerates the arcs a with Source(a) == v, in a stable
	// order as long as the graph is not mutated.
	OutArcs(v Vertex) iter.Seq[Arc]
	// OutNeighbors enumerates Target(a) for each a in OutArcs(v).
	OutNeighbors(v Vertex) iter.Seq[Vertex]
}

// BackwardIncidence is the reverse-adjacency capability: enumerating
// each vertex's incoming arcs.
type BackwardIncidence interface {
	Digraph
	// InArcs enumerates the arcs a with Target(a) == v.
	InArcs(v Vertex) iter.Seq[Arc]
	// InNeighbors enumerates Source(a) for each a in InArcs(v).
	InNeighbors(v Vertex) iter.Seq[Vertex]
}

// ArcSource is the O(1) arc-source capability. StaticForward answers
// sources only in O(log V) and deliberately does not satisfy this;
// engines that want predecessor vertices without it store them
// explicitly.
type ArcSource interface {
	// Source returns the tail vertex of arc a in O(1).
	Source(a Arc) Vertex
}

// InDegree is the O(1) in-degree capability, used by the topological
// engine to skip its counting pass.
type InDegree interface {
	// InDegree reports the number of arcs targeting v in O(1).
	InDegree(v Vertex) int
}

// NewVertexMap creates a dense vertex-keyed map sized to g's vertex
// domain, every entry set to def. Engines index it with int(v).
func NewVertexMap[T any](g Digraph, def T) *dmap.Map[T] {
	return dmap.NewFilled(g.VertexBound(), def)
}

// NewArcMap creates a dense arc-keyed map sized to g's arc domain,
// every entry set to def.
func NewArcMap[T any](g Digraph, def T) *dmap.Map[T] {
	return dmap.NewFilled(g.ArcBound(), def)
}

// NewVertexBitMap creates a vertex-keyed bitmap sized to g's vertex
// domain, cleared.
func NewVertexBitMap(g Digraph) *dmap.BitMap {
	return dmap.NewBitMap(g.VertexBound())
}
