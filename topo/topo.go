package topo

import (
	"iter"

	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dmap"
)

// Graph is what the engine requires of its container. Containers that
// additionally satisfy digraph.InDegree skip the counting pass.
type Graph interface {
	digraph.ForwardIncidence
}

// Traversal is a Kahn-style topological state machine over a borrowed
// graph: a vector used as a FIFO through a front cursor, plus a
// remaining-in-degree counter per vertex.
type Traversal[G Graph] struct {
	graph G

	queue     []digraph.Vertex
	front     int
	reached   *dmap.BitMap
	remaining *dmap.Map[int]

	predVertex *dmap.Map[digraph.Vertex] // nil unless WithPredVertices
	predArc    *dmap.Map[digraph.Arc]    // nil unless WithPredArcs
	depth      *dmap.Map[int]            // nil unless WithDepths
}

// New builds an engine bound to g, initialises the in-degree counter
// (O(1) per vertex when g satisfies digraph.InDegree, else one pass
// over Arcs) and seeds every zero-in-degree vertex.
// The graph is borrowed: it must outlive the engine and stay unmutated.
func New[G Graph](g G, opts ...Option) *Traversal[G] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Traversal[G]{
		graph:     g,
		queue:     make([]digraph.Vertex, 0, g.VertexBound()),
		reached:   digraph.NewVertexBitMap(g),
		remaining: digraph.NewVertexMap(g, 0),
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
	t.seed()

	return t
}

// seed fills the remaining-in-degree counter and enqueues every vertex
// with no incoming arc.
func (t *Traversal[G]) seed() {
	if deg, ok := any(t.graph).(digraph.InDegree); ok {
		for v := range t.graph.Vertices() {
			t.remaining.Set(int(v), deg.InDegree(v))
		}
	} else {
		t.remaining.Fill(0)
		for a := range t.graph.Arcs() {
			*t.remaining.Ref(int(t.graph.Target(a)))++
		}
	}
	for v := range t.graph.Vertices() {
		if t.remaining.At(int(v)) == 0 {
			t.push(v, v, digraph.InvalidArc, 0)
		}
	}
}

// push marks v reached with the given provenance and enqueues it.
func (t *Traversal[G]) push(v, pred digraph.Vertex, a digraph.Arc, d int) {
	t.reached.Set(int(v), true)
	t.queue = append(t.queue, v)
	if t.predVertex != nil {
		t.predVertex.Set(int(v), pred)
	}
	if t.predArc != nil {
		t.predArc.Set(int(v), a)
	}
	if t.depth != nil {
		t.depth.Set(int(v), d)
	}
}

// Reset clears the traversal and reseeds it, without reallocating.
func (t *Traversal[G]) Reset() {
	t.queue = t.queue[:0]
	t.front = 0
	t.reached.Fill(false)
	t.seed()
}

// Finished reports whether the queue is drained. A finished traversal
// that reached fewer than NbVertices vertices found a cycle among the
// rest.
func (t *Traversal[G]) Finished() bool { return t.front == len(t.queue) }

// Current returns the next vertex in dependency order without
// consuming it. Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Current() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}

	return t.queue[t.front]
}

// Advance consumes the current vertex u, decrements each
// out-neighbour's remaining in-degree and enqueues those that reach
// zero; reports u. Panics with ErrExhausted when Finished.
func (t *Traversal[G]) Advance() digraph.Vertex {
	if t.Finished() {
		panic(ErrExhausted)
	}
	u := t.queue[t.front]
	t.front++
	var d int
	if t.depth != nil {
		d = t.depth.At(int(u)) + 1
	}
	for a := range t.graph.OutArcs(u) {
		w := t.graph.Target(a)
		r := t.remaining.Ref(int(w))
		*r--
		if *r > 0 {
			continue
		}
		t.push(w, u, a, d)
	}

	return u
}

// Run drains the queue.
func (t *Traversal[G]) Run() {
	for !t.Finished() {
		t.Advance()
	}
}

// All yields each settled vertex in dependency order, advancing
// between yields.
func (t *Traversal[G]) All() iter.Seq[digraph.Vertex] {
	return func(yield func(digraph.Vertex) bool) {
		for !t.Finished() {
			if !yield(t.Advance()) {
				return
			}
		}
	}
}

// Reached reports whether u has been enqueued. After Run, an unreached
// u lies on or behind a cycle.
func (t *Traversal[G]) Reached(u digraph.Vertex) bool {
	return t.reached.At(int(u))
}

// NbReached reports how many vertices have been enqueued so far.
// After Run, NbReached < NbVertices signals a cycle.
func (t *Traversal[G]) NbReached() int { return len(t.queue) }

// PredVertex returns the vertex whose settling released u — u itself
// for a seed. Panics with ErrNoStore unless WithPredVertices, and with
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

// PredArc returns the arc whose decrement released u, or
// digraph.InvalidArc for a seed. Panics with ErrNoStore unless
// WithPredArcs, and with ErrNotReached for unreached u.
func (t *Traversal[G]) PredArc(u digraph.Vertex) digraph.Arc {
	if t.predArc == nil {
		panic(ErrNoStore)
	}
	if !t.reached.At(int(u)) {
		panic(ErrNotReached)
	}

	return t.predArc.At(int(u))
}

// Depth returns u's layer: the depth of its releasing parent plus one.
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
