package bfs

import (
	"iter"

	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dmap"
)

// Graph is what the engine requires of its container: forward
// incidence plus the dense map factories every Digraph carries.
type Graph interface {
	digraph.ForwardIncidence
}

// Traversal is a breadth-first state machine over a borrowed graph.
// The queue is preallocated to the vertex bound and consumed through a
// front cursor, so a full run performs no further allocation.
type Traversal[G Graph] struct {
	graph G

	queue   []digraph.Vertex
	front   int
	reached *dmap.BitMap

	predVertex *dmap.Map[digraph.Vertex] // nil unless WithPredVertices
	predArc    *dmap.Map[digraph.Arc]    // nil unless WithPredArcs
	depth      *dmap.Map[int]            // nil unless WithDepths
}

// New builds an engine bound to g with the requested optional stores.
// The graph is borrowed: it must outlive the engine and stay unmutated.
// Complexity: O(V) allocation, done once
func New[G Graph](g G, opts ...Option) *Traversal[G] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Traversal[G]{
		graph:   g,
		queue:   make([]digraph.Vertex, 0, g.VertexBound()),
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

// Reset clears the traversal state without reallocating, ready for a
// fresh AddSource.
func (t *Traversal[G]) Reset() {
	t.queue = t.queue[:0]
	t.front = 0
	t.reached.Fill(false)
}

// AddSource seeds the traversal with s at depth 0. Panics with
// ErrSourceReached if s was already reached; seed every source before
// advancing for the multi-source distance guarantee.
func (t *Traversal[G]) AddSource(s digraph.Vertex) {
	if t.reached.At(int(s)) {
		panic(ErrSourceReached)
	}
	t.push(s)
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

// push marks v reached and appends it to the queue.
func (t *Traversal[G]) push(v digraph.Vertex) {
	t.reached.Set(int(v), true)
	t.queue = append(t.queue, v)
}

// Finished reports whether the queue is drained.
func (t *Traversal[G]) Finished() bool { return t.front == len(t.queue) }

// Current returns the next vertex in FIFO order without consuming it.
// Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Current() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}

	return t.queue[t.front]
}

// Advance consumes the current vertex u, enqueues each unreached
// out-neighbour and updates the enabled stores; reports u.
// Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Advance() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}
	u := t.queue[t.front]
	t.front++
	for a := range t.graph.OutArcs(u) {
		w := t.graph.Target(a)
		if t.reached.At(int(w)) {
			continue
		}
		t.push(w)
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

// Run drains the queue.
func (t *Traversal[G]) Run() {
	for !t.Finished() {
		t.Advance()
	}
}

// All yields each settled vertex in traversal order, advancing between
// yields. Breaking out leaves the engine mid-traversal, resumable.
func (t *Traversal[G]) All() iter.Seq[digraph.Vertex] {
	return func(yield func(digraph.Vertex) bool) {
		for !t.Finished() {
			if !yield(t.Advance()) {
				return
			}
		}
	}
}

// Reached reports whether u has been reached (seeded or enqueued).
func (t *Traversal[G]) Reached(u digraph.Vertex) bool {
	return t.reached.At(int(u))
}

// NbReached reports how many vertices have been reached so far.
func (t *Traversal[G]) NbReached() int { return len(t.queue) }

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

// Depth returns u's unweighted distance from the nearest source.
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
