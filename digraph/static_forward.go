package digraph

import (
	"fmt"
	"iter"
	"sort"

	"github.com/pradkrish/melon/dmap"
)

// StaticForward is an immutable digraph in compressed-sparse-row form:
// outBegin holds one out-arc offset per vertex (plus the terminating
// NbArcs entry) and arcTarget holds one head vertex per arc. An arc's
// identity is its position in the source-sorted construction order.
//
// StaticForward satisfies ForwardIncidence. It can answer arc sources
// only by binary search (FindSource, O(log V)); callers that need O(1)
// sources or reverse adjacency should build a Static instead.
type StaticForward struct {
	outBegin  *dmap.Map[Arc]    // length NbVertices+1, non-decreasing
	arcTarget *dmap.Map[Vertex] // length NbArcs
}

// NewStaticForward builds a CSR digraph from parallel sources/targets
// sequences. Sources must be non-decreasing (use a Builder to sort
// arbitrary input); every endpoint must lie in [0, nbVertices).
// Complexity: O(V + A)
func NewStaticForward(nbVertices int, sources, targets []Vertex) (*StaticForward, error) {
	if len(sources) != len(targets) {
		return nil, fmt.Errorf("%w: %d sources, %d targets",
			ErrLengthMismatch, len(sources), len(targets))
	}
	outBegin, err := countingOffsets(nbVertices, sources, true)
	if err != nil {
		return nil, err
	}
	for i, t := range targets {
		if int(t) >= nbVertices {
			return nil, fmt.Errorf("%w: target %d of arc %d", ErrVertexRange, t, i)
		}
	}

	g := &StaticForward{
		outBegin:  outBegin,
		arcTarget: dmap.New[Vertex](len(targets)),
	}
	copy(g.arcTarget.Slice(), targets)

	return g, nil
}

// countingOffsets histograms endpoints into an offsets map of length
// n+1 and prefix-sums it, so offsets[v]..offsets[v+1] brackets v's
// arcs. With sorted true it also enforces non-decreasing input.
func countingOffsets(n int, endpoints []Vertex, sorted bool) (*dmap.Map[Arc], error) {
	offsets := dmap.New[Arc](n + 1)
	prev := Vertex(0)
	for i, v := range endpoints {
		if int(v) >= n {
			return nil, fmt.Errorf("%w: vertex %d of arc %d", ErrVertexRange, v, i)
		}
		if sorted && v < prev {
			return nil, fmt.Errorf("%w: arc %d", ErrUnsortedSources, i)
		}
		prev = v
		*offsets.Ref(int(v) + 1)++
	}
	for v := 0; v < n; v++ {
		*offsets.Ref(v + 1) += offsets.At(v)
	}

	return offsets, nil
}

// NbVertices reports the number of vertices.
func (g *StaticForward) NbVertices() int { return g.outBegin.Len() - 1 }

// NbArcs reports the number of arcs.
func (g *StaticForward) NbArcs() int { return g.arcTarget.Len() }

// VertexBound equals NbVertices: static vertex handles are dense.
func (g *StaticForward) VertexBound() int { return g.NbVertices() }

// ArcBound equals NbArcs: static arc handles are dense.
func (g *StaticForward) ArcBound() int { return g.NbArcs() }

// IsValidVertex reports whether v < NbVertices.
func (g *StaticForward) IsValidVertex(v Vertex) bool { return int(v) < g.NbVertices() }

// IsValidArc reports whether a < NbArcs.
func (g *StaticForward) IsValidArc(a Arc) bool { return int(a) < g.NbArcs() }

// Vertices enumerates 0..NbVertices-1.
func (g *StaticForward) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := 0; v < g.NbVertices(); v++ {
			if !yield(Vertex(v)) {
				return
			}
		}
	}
}

// Arcs enumerates 0..NbArcs-1, which is also source order.
func (g *StaticForward) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for a := 0; a < g.NbArcs(); a++ {
			if !yield(Arc(a)) {
				return
			}
		}
	}
}

// Target returns the head vertex of a. Panics on an invalid arc.
func (g *StaticForward) Target(a Arc) Vertex { return g.arcTarget.At(int(a)) }

// OutArcs enumerates v's out-arcs: the half-open CSR row
// [outBegin[v], outBegin[v+1]). Panics on an invalid vertex.
func (g *StaticForward) OutArcs(v Vertex) iter.Seq[Arc] {
	lo, hi := g.outBegin.At(int(v)), g.outBegin.At(int(v)+1)

	return func(yield func(Arc) bool) {
		for a := lo; a < hi; a++ {
			if !yield(a) {
				return
			}
		}
	}
}

// OutNeighbors enumerates the head of each out-arc of v.
func (g *StaticForward) OutNeighbors(v Vertex) iter.Seq[Vertex] {
	lo, hi := g.outBegin.At(int(v)), g.outBegin.At(int(v)+1)

	return func(yield func(Vertex) bool) {
		for a := lo; a < hi; a++ {
			if !yield(g.arcTarget.At(int(a))) {
				return
			}
		}
	}
}

// OutDegree reports the number of out-arcs of v in O(1).
func (g *StaticForward) OutDegree(v Vertex) int {
	return int(g.outBegin.At(int(v)+1) - g.outBegin.At(int(v)))
}

// FindSource locates the tail of arc a by binary search over the CSR
// offsets. Deliberately not named Source: the O(1) arc-source
// capability belongs to Static.
// Complexity: O(log V)
func (g *StaticForward) FindSource(a Arc) Vertex {
	if !g.IsValidArc(a) {
		panic(ErrInvalidHandle)
	}
	// Last row whose range starts at or before a.
	v := sort.Search(g.NbVertices(), func(i int) bool {
		return g.outBegin.At(i+1) > a
	})

	return Vertex(v)
}
