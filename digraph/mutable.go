package digraph

import (
	"iter"

	"github.com/pradkrish/melon/dmap"
)

// vertexRec is one slot of the vertex arena. prevVertex/nextVertex
// link live vertices into a global doubly-linked list; nextVertex also
// threads the vertex free-list while the slot is dead.
type vertexRec struct {
	firstIn    Arc
	firstOut   Arc
	prevVertex Vertex
	nextVertex Vertex
}

// arcRec is one slot of the arc arena. prevOut/nextOut link the arc
// into its source's out-list, prevIn/nextIn into its target's in-list.
// While the slot is dead, nextIn threads the arc free-list.
type arcRec struct {
	source  Vertex
	target  Vertex
	prevIn  Arc
	nextIn  Arc
	prevOut Arc
	nextOut Arc
}

// Mutable is a dynamic digraph over two record arenas plus validity
// bitmaps. Handles are stable across non-removing mutations; removal
// pushes the slot onto a free-list and later CreateVertex/CreateArc
// calls may hand the same handle out again. A handle is invalidated by
// removal of the arc itself or of either endpoint; holding one across
// such a removal is a contract violation (no ABA guarantee).
//
// Mutable satisfies ForwardIncidence, BackwardIncidence and ArcSource.
// Its in-degree is O(deg), so it deliberately does not satisfy the
// InDegree capability.
type Mutable struct {
	vertices    []vertexRec
	arcs        []arcRec
	vertexValid *dmap.BitMap
	arcValid    *dmap.BitMap

	firstVertex     Vertex
	firstFreeVertex Vertex
	firstFreeArc    Arc
	nbVertices      int
	nbArcs          int
}

// NewMutable returns an empty dynamic digraph.
func NewMutable() *Mutable {
	return &Mutable{
		vertexValid:     dmap.NewBitMap(0),
		arcValid:        dmap.NewBitMap(0),
		firstVertex:     InvalidVertex,
		firstFreeVertex: InvalidVertex,
		firstFreeArc:    InvalidArc,
	}
}

// NbVertices reports the number of live vertices.
func (g *Mutable) NbVertices() int { return g.nbVertices }

// NbArcs reports the number of live arcs.
func (g *Mutable) NbArcs() int { return g.nbArcs }

// VertexBound counts every slot ever created, dead ones included, so
// vertex maps keep indexing live handles after removals.
func (g *Mutable) VertexBound() int { return len(g.vertices) }

// ArcBound counts every arc slot ever created, dead ones included.
func (g *Mutable) ArcBound() int { return len(g.arcs) }

// IsValidVertex reports whether v is a live vertex.
func (g *Mutable) IsValidVertex(v Vertex) bool {
	return int(v) < len(g.vertices) && g.vertexValid.At(int(v))
}

// IsValidArc reports whether a is a live arc.
func (g *Mutable) IsValidArc(a Arc) bool {
	return int(a) < len(g.arcs) && g.arcValid.At(int(a))
}

// Vertices walks the live-vertex list, most recently created first.
// Creating or removing vertices invalidates the walk.
func (g *Mutable) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := g.firstVertex; v != InvalidVertex; v = g.vertices[v].nextVertex {
			if !yield(v) {
				return
			}
		}
	}
}

// Arcs enumerates the out-list of every live vertex in Vertices order.
func (g *Mutable) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for v := g.firstVertex; v != InvalidVertex; v = g.vertices[v].nextVertex {
			for a := g.vertices[v].firstOut; a != InvalidArc; a = g.arcs[a].nextOut {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// ArcEntries enumerates (arc, source, target) triples in Arcs order.
func (g *Mutable) ArcEntries() iter.Seq2[Arc, [2]Vertex] {
	return func(yield func(Arc, [2]Vertex) bool) {
		for a := range g.Arcs() {
			if !yield(a, [2]Vertex{g.arcs[a].source, g.arcs[a].target}) {
				return
			}
		}
	}
}

// Source returns the tail of a in O(1). Panics on a dead handle.
func (g *Mutable) Source(a Arc) Vertex {
	if !g.IsValidArc(a) {
		panic(ErrInvalidHandle)
	}

	return g.arcs[a].source
}

// Target returns the head of a in O(1). Panics on a dead handle.
func (g *Mutable) Target(a Arc) Vertex {
	if !g.IsValidArc(a) {
		panic(ErrInvalidHandle)
	}

	return g.arcs[a].target
}

// OutArcs walks v's intrusive out-list, most recently attached first.
// Any mutation of the list invalidates the walk.
func (g *Mutable) OutArcs(v Vertex) iter.Seq[Arc] {
	if !g.IsValidVertex(v) {
		panic(ErrInvalidHandle)
	}

	return func(yield func(Arc) bool) {
		for a := g.vertices[v].firstOut; a != InvalidArc; a = g.arcs[a].nextOut {
			if !yield(a) {
				return
			}
		}
	}
}

// InArcs walks v's intrusive in-list, most recently attached first.
func (g *Mutable) InArcs(v Vertex) iter.Seq[Arc] {
	if !g.IsValidVertex(v) {
		panic(ErrInvalidHandle)
	}

	return func(yield func(Arc) bool) {
		for a := g.vertices[v].firstIn; a != InvalidArc; a = g.arcs[a].nextIn {
			if !yield(a) {
				return
			}
		}
	}
}

// OutNeighbors enumerates the head of each out-arc of v.
func (g *Mutable) OutNeighbors(v Vertex) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for a := range g.OutArcs(v) {
			if !yield(g.arcs[a].target) {
				return
			}
		}
	}
}

// InNeighbors enumerates the tail of each in-arc of v.
func (g *Mutable) InNeighbors(v Vertex) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for a := range g.InArcs(v) {
			if !yield(g.arcs[a].source) {
				return
			}
		}
	}
}

// CreateVertex adds an isolated vertex, reusing a free slot when one
// exists, and pushes it at the head of the live-vertex list.
// Complexity: O(1) amortised
func (g *Mutable) CreateVertex() Vertex {
	var v Vertex
	if g.firstFreeVertex == InvalidVertex {
		v = Vertex(len(g.vertices))
		g.vertices = append(g.vertices, vertexRec{})
		g.vertexValid.Append(false)
	} else {
		v = g.firstFreeVertex
		g.firstFreeVertex = g.vertices[v].nextVertex
	}
	g.vertices[v] = vertexRec{
		firstIn:    InvalidArc,
		firstOut:   InvalidArc,
		prevVertex: InvalidVertex,
		nextVertex: g.firstVertex,
	}
	g.vertexValid.Set(int(v), true)
	if g.firstVertex != InvalidVertex {
		g.vertices[g.firstVertex].prevVertex = v
	}
	g.firstVertex = v
	g.nbVertices++

	return v
}

// CreateArc adds an arc from→to, reusing a free slot when one exists,
// and pushes it at the head of from's out-list and to's in-list.
// Panics on a dead endpoint.
// Complexity: O(1) amortised
func (g *Mutable) CreateArc(from, to Vertex) Arc {
	if !g.IsValidVertex(from) || !g.IsValidVertex(to) {
		panic(ErrInvalidHandle)
	}
	var a Arc
	if g.firstFreeArc == InvalidArc {
		a = Arc(len(g.arcs))
		g.arcs = append(g.arcs, arcRec{})
		g.arcValid.Append(false)
	} else {
		a = g.firstFreeArc
		g.firstFreeArc = g.arcs[a].nextIn
	}
	g.arcs[a] = arcRec{
		source:  from,
		target:  to,
		prevIn:  InvalidArc,
		nextIn:  g.vertices[to].firstIn,
		prevOut: InvalidArc,
		nextOut: g.vertices[from].firstOut,
	}
	g.arcValid.Set(int(a), true)
	if next := g.vertices[to].firstIn; next != InvalidArc {
		g.arcs[next].prevIn = a
	}
	g.vertices[to].firstIn = a
	if next := g.vertices[from].firstOut; next != InvalidArc {
		g.arcs[next].prevOut = a
	}
	g.vertices[from].firstOut = a
	g.nbArcs++

	return a
}

// unlinkFromOutList removes a from its source's out-list.
func (g *Mutable) unlinkFromOutList(a Arc) {
	rec := g.arcs[a]
	if rec.nextOut != InvalidArc {
		g.arcs[rec.nextOut].prevOut = rec.prevOut
	}
	if rec.prevOut != InvalidArc {
		g.arcs[rec.prevOut].nextOut = rec.nextOut
	} else {
		g.vertices[rec.source].firstOut = rec.nextOut
	}
}

// unlinkFromInList removes a from its target's in-list.
func (g *Mutable) unlinkFromInList(a Arc) {
	rec := g.arcs[a]
	if rec.nextIn != InvalidArc {
		g.arcs[rec.nextIn].prevIn = rec.prevIn
	}
	if rec.prevIn != InvalidArc {
		g.arcs[rec.prevIn].nextIn = rec.nextIn
	} else {
		g.vertices[rec.target].firstIn = rec.nextIn
	}
}

// RemoveArc deletes a, unlinking it from both host lists and threading
// the slot onto the free-arc chain (through nextIn, which is unused
// once the arc left its target's in-list).
// Complexity: O(1)
func (g *Mutable) RemoveArc(a Arc) {
	if !g.IsValidArc(a) {
		panic(ErrInvalidHandle)
	}
	g.unlinkFromOutList(a)
	g.unlinkFromInList(a)
	g.arcs[a].nextIn = g.firstFreeArc
	g.firstFreeArc = a
	g.arcValid.Set(int(a), false)
	g.nbArcs--
}

// removeIncidentArcs deletes every arc touching v. Incoming arcs are
// already chained by nextIn; outgoing arcs get their out-chain copied
// into nextIn once they leave their target's in-list. Both chains are
// then spliced wholesale onto the free-arc list.
func (g *Mutable) removeIncidentArcs(v Vertex) {
	lastIn := InvalidArc
	for a := g.vertices[v].firstIn; a != InvalidArc; a = g.arcs[a].nextIn {
		lastIn = a
		g.unlinkFromOutList(a)
		g.arcValid.Set(int(a), false)
		g.nbArcs--
	}
	lastOut := InvalidArc
	for a := g.vertices[v].firstOut; a != InvalidArc; a = g.arcs[a].nextOut {
		lastOut = a
		g.unlinkFromInList(a)
		g.arcs[a].nextIn = g.arcs[a].nextOut
		g.arcValid.Set(int(a), false)
		g.nbArcs--
	}
	if lastIn != InvalidArc {
		g.arcs[lastIn].nextIn = g.firstFreeArc
		g.firstFreeArc = g.vertices[v].firstIn
	}
	if lastOut != InvalidArc {
		g.arcs[lastOut].nextIn = g.firstFreeArc
		g.firstFreeArc = g.vertices[v].firstOut
	}
}

// RemoveVertex deletes v and every arc incident to it, then unlinks v
// from the live-vertex list and threads its slot onto the free-vertex
// chain. Every incident arc handle is invalidated.
// Complexity: O(deg(v))
func (g *Mutable) RemoveVertex(v Vertex) {
	if !g.IsValidVertex(v) {
		panic(ErrInvalidHandle)
	}
	g.removeIncidentArcs(v)
	rec := g.vertices[v]
	if rec.nextVertex != InvalidVertex {
		g.vertices[rec.nextVertex].prevVertex = rec.prevVertex
	}
	if rec.prevVertex != InvalidVertex {
		g.vertices[rec.prevVertex].nextVertex = rec.nextVertex
	} else {
		g.firstVertex = rec.nextVertex
	}
	g.vertices[v].nextVertex = g.firstFreeVertex
	g.firstFreeVertex = v
	g.vertexValid.Set(int(v), false)
	g.nbVertices--
}

// ChangeArcSource re-homes a onto source s: unlinked from the old
// source's out-list, pushed at the head of s's. The arc keeps its
// handle and target.
// Complexity: O(1)
func (g *Mutable) ChangeArcSource(a Arc, s Vertex) {
	if !g.IsValidArc(a) || !g.IsValidVertex(s) {
		panic(ErrInvalidHandle)
	}
	if g.arcs[a].source == s {
		return
	}
	g.unlinkFromOutList(a)
	g.arcs[a].source = s
	g.arcs[a].prevOut = InvalidArc
	g.arcs[a].nextOut = g.vertices[s].firstOut
	if next := g.vertices[s].firstOut; next != InvalidArc {
		g.arcs[next].prevOut = a
	}
	g.vertices[s].firstOut = a
}

// ChangeArcTarget re-homes a onto target t: unlinked from the old
// target's in-list, pushed at the head of t's.
// Complexity: O(1)
func (g *Mutable) ChangeArcTarget(a Arc, t Vertex) {
	if !g.IsValidArc(a) || !g.IsValidVertex(t) {
		panic(ErrInvalidHandle)
	}
	if g.arcs[a].target == t {
		return
	}
	g.unlinkFromInList(a)
	g.arcs[a].target = t
	g.arcs[a].prevIn = InvalidArc
	g.arcs[a].nextIn = g.vertices[t].firstIn
	if next := g.vertices[t].firstIn; next != InvalidArc {
		g.arcs[next].prevIn = a
	}
	g.vertices[t].firstIn = a
}
