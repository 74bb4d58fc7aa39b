package digraph

import (
	"iter"

	"github.com/pradkrish/melon/dmap"
)

// Static is the bidirectional immutable container: StaticForward's CSR
// plus a per-arc source map (making Source O(1)) and a reverse CSR
// over incoming arcs. It satisfies ForwardIncidence,
// BackwardIncidence, ArcSource and InDegree.
type Static struct {
	StaticForward

	arcSource *dmap.Map[Vertex] // length NbArcs
	inBegin   *dmap.Map[Arc]    // length NbVertices+1
	inArcs    *dmap.Map[Arc]    // arc ids grouped by target
}

// NewStatic builds a bidirectional CSR digraph from the same input
// contract as NewStaticForward: parallel sources/targets with
// non-decreasing sources. The reverse adjacency is filled by a
// counting pass over the targets.
// Complexity: O(V + A)
func NewStatic(nbVertices int, sources, targets []Vertex) (*Static, error) {
	fwd, err := NewStaticForward(nbVertices, sources, targets)
	if err != nil {
		return nil, err
	}
	inBegin, err := countingOffsets(nbVertices, targets, false)
	if err != nil {
		return nil, err
	}

	g := &Static{
		StaticForward: *fwd,
		arcSource:     dmap.New[Vertex](len(sources)),
		inBegin:       inBegin,
		inArcs:        dmap.New[Arc](len(targets)),
	}
	copy(g.arcSource.Slice(), sources)

	// Scatter arcs into their target's reverse row, preserving arc order
	// within each row.
	cursor := make([]Arc, nbVertices)
	for v := 0; v < nbVertices; v++ {
		cursor[v] = inBegin.At(v)
	}
	for a := 0; a < len(targets); a++ {
		t := targets[a]
		g.inArcs.Set(int(cursor[t]), Arc(a))
		cursor[t]++
	}

	return g, nil
}

// Source returns the tail vertex of a in O(1).
func (g *Static) Source(a Arc) Vertex { return g.arcSource.At(int(a)) }

// InArcs enumerates v's incoming arcs, grouped by the reverse CSR row
// [inBegin[v], inBegin[v+1]).
func (g *Static) InArcs(v Vertex) iter.Seq[Arc] {
	lo, hi := g.inBegin.At(int(v)), g.inBegin.At(int(v)+1)

	return func(yield func(Arc) bool) {
		for i := lo; i < hi; i++ {
			if !yield(g.inArcs.At(int(i))) {
				return
			}
		}
	}
}

// InNeighbors enumerates the tail of each incoming arc of v.
func (g *Static) InNeighbors(v Vertex) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for a := range g.InArcs(v) {
			if !yield(g.arcSource.At(int(a))) {
				return
			}
		}
	}
}

// InDegree reports the number of arcs targeting v in O(1).
func (g *Static) InDegree(v Vertex) int {
	return int(g.inBegin.At(int(v)+1) - g.inBegin.At(int(v)))
}
