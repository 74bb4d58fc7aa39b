package dfs

import (
	"iter"

	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dmap"
)

// Graph is what the engine requires of its container.
type Graph interface {
	digraph.ForwardIncidence
}

// Traversal is a depth-first state machine over a borrowed graph. The
// stack is preallocated to the vertex bound; vertices are marked
// reached as they are pushed, so each occupies at most one slot.
type Traversal[G Graph] struct {
	graph G

	stack   []digraph.Vertex
	reached *dmap.BitMap

	predVertex *dmap.Map[digraph.Vertex] // nil unless WithPredVertices
	predArc    *dmap.Map[digraph.Arc]    // nil unless WithPredArcs
	depth      *dmap.Map[int]            // nil unless WithDepths
}

// New builds an engine bound to g with the requested optional stores.
// The graph is borrowed: it must outlive the engine and stay unmutated.
func New[G Graph](g G, opts ...Option) *Traversal[G] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Traversal[G]{
		graph:   g,
		stack:   make([]digraph.Vertex, 0, g.VertexBound()),
		reached: digraph.NewVertexBitMap(g),
	}
	if o.predVertices {
		t.predVertex = digraph.NewVertexMap(g, digraph.InvalidVertex)
	}
	if o.predArcs {
		t.predArc = digraph.NewVertexMap(g, digraph.InvalidArc)
	}
	if o.depths {
		t.depth = digraph.NewVertexMap(g, 0)
	}

	return t
}

// Reset clears the traversal state without reallocating.
func (t *Traversal[G]) Reset() {
	t.stack = t.stack[:0]
	t.reached.Fill(false)
}

// AddSource seeds the traversal with s at depth 0. Panics with
// ErrSourceReached if s was already reached.
func (t *Traversal[G]) AddSource(s digraph.Vertex) {
	if t.reached.At(int(s)) {
		panic(ErrSourceReached)
	}
	t.reached.Set(int(s), true)
	t.stack = append(t.stack, s)
	if t.predVertex != nil {
		t.predVertex.Set(int(s), s)
	}
	if t.predArc != nil {
		t.predArc.Set(int(s), digraph.InvalidArc)
	}
	if t.depth != nil {
		t.depth.Set(int(s), 0)
	}
}

// Finished reports whether the stack is empty.
func (t *Traversal[G]) Finished() bool { return len(t.stack) == 0 }

// Current returns the top of the stack without consuming it.
// Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Current() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}

	return t.stack[len(t.stack)-1]
}

// Advance pops and settles the current vertex u, pushing u's unreached
// out-neighbours in enumeration order — the last one becomes the new
// Current; reports u. Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Advance() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}
	u := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	for a := range t.graph.OutArcs(u) {
		w := t.graph.Target(a)
		if t.reached.At(int(w)) {
			continue
		}
		t.reached.Set(int(w), true)
		t.stack = append(t.stack, w)
		if t.predVertex != nil {
			t.predVertex.Set(int(w), u)
		}
		if t.predArc != nil {
			t.predArc.Set(int(w), a)
		}
		if t.depth != nil {
			t.depth.Set(int(w), t.depth.At(int(u))+1)
		}
	}

	return u
}

// Run drains the stack.
func (t *Traversal[G]) Run() {
	for !t.Finished() {
		t.Advance()
	}
}

// All yields each settled vertex in traversal order, advancing between
// yields.
func (t *Traversal[G]) All() iter.Seq[digraph.Vertex] {
	return func(yield func(digraph.Vertex) bool) {
		for !t.Finished() {
			if !yield(t.Advance()) {
				return
			}
		}
	}
}

// Reached reports whether u has been reached (seeded or pushed).
func (t *Traversal[G]) Reached(u digraph.Vertex) bool {
	return t.reached.At(int(u))
}

// PredVertex returns the vertex that reached u — u itself for a
// source. Panics with ErrNoStore unless WithPredVertices, and with
// ErrNotReached for unreached u.
func (t *Traversal[G]) PredVertex(u digraph.Vertex) digraph.Vertex {
	if t.predVertex == nil {
		panic(ErrNoStore)
	}
	if !t.reached.At(int(u)) {
		panic(ErrNotReached)
	}

	return t.predVertex.At(int(u))
}

// PredArc returns the arc that reached u, or digraph.InvalidArc for a
// source. Panics with ErrNoStore unless WithPredArcs, and with
// ErrNotReached for unreached u.
func (t *Traversal[G]) PredArc(u digraph.Vertex) digraph.Arc {
	if t.predArc == nil {
		panic(ErrNoStore)
	}
	if !t.reached.At(int(u)) {
		panic(ErrNotReached)
	}

	return t.predArc.At(int(u))
}

// Depth returns u's stack depth: its parent's depth plus one.
// Panics with ErrNoStore unless WithDepths, and with ErrNotReached for
// unreached u.
func (t *Traversal[G]) Depth(u digraph.Vertex) int {
	if t.depth == nil {
		panic(ErrNoStore)
	}
	if !t.reached.At(int(u)) {
		panic(ErrNotReached)
	}

	return t.depth.At(int(u))
}
