package dijkstra

import (
	"iter"

	"github.com/pradkrish/melon/dheap"
	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dmap"
)

// Graph is what the engine requires of its container. Containers that
// additionally satisfy digraph.ArcSource let the engine derive
// predecessor vertices instead of storing them.
type Graph interface {
	digraph.ForwardIncidence
}

// Search is Dijkstra's algorithm over a borrowed graph, an arc-keyed
// cost map and a semiring, as a stepwise state machine. The heap's
// position map doubles as the per-vertex status: dheap.Unseen, an
// in-heap slot, or dheap.Settled.
type Search[G Graph, V any, S Semiring[V]] struct {
	graph G
	costs *dmap.Map[V]
	ring  S

	heap *dheap.Heap[digraph.Vertex, V]
	pos  *dmap.Map[int]

	arcSource  digraph.ArcSource         // non-nil when the container has O(1) sources
	predArc    *dmap.Map[digraph.Arc]    // nil unless WithPaths
	predVertex *dmap.Map[digraph.Vertex] // nil unless WithPaths on a source-less container
	dist       *dmap.Map[V]              // nil unless WithDistances
}

// New builds an engine bound to g and costs (an arc-keyed map, usually
// from digraph.NewArcMap). The graph and cost map are borrowed: they
// must outlive the engine and stay unmutated. The capability check for
// O(1) arc sources happens here, once.
// Complexity: O(V) allocation, done once
func New[G Graph, V any, S Semiring[V]](g G, costs *dmap.Map[V], ring S, opts ...Option) *Search[G, V, S] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Search[G, V, S]{
		graph: g,
		costs: costs,
		ring:  ring,
		pos:   digraph.NewVertexMap(g, dheap.Unseen),
	}
	s.heap = dheap.New[digraph.Vertex](o.arity, ring.Less, s.pos)
	s.arcSource, _ = any(g).(digraph.ArcSource)
	if o.paths {
		s.predArc = digraph.NewVertexMap(g, digraph.InvalidArc)
		if s.arcSource == nil {
			s.predVertex = digraph.NewVertexMap(g, digraph.InvalidVertex)
		}
	}
	if o.distances {
		s.dist = digraph.NewVertexMap[V](g, ring.Zero())
	}

	return s
}

// Reset clears the heap and every vertex status without reallocating.
func (s *Search[G, V, S]) Reset() {
	s.heap.Clear()
	s.pos.Fill(dheap.Unseen)
}

// AddSource seeds the search with v, at the semiring's Zero or at the
// single optional start value d. Panics with ErrSourceInHeap if v is
// already in the heap.
func (s *Search[G, V, S]) AddSource(v digraph.Vertex, d ...V) {
	if len(d) > 1 {
		panic(ErrBadSourceDist)
	}
	if s.pos.At(int(v)) >= 0 {
		panic(ErrSourceInHeap)
	}
	start := s.ring.Zero()
	if len(d) == 1 {
		start = d[0]
	}
	s.heap.Push(v, start)
	if s.predArc != nil {
		s.predArc.Set(int(v), digraph.InvalidArc)
		if s.predVertex != nil {
			s.predVertex.Set(int(v), v)
		}
	}
}

// Finished reports whether the heap is empty.
func (s *Search[G, V, S]) Finished() bool { return s.heap.Empty() }

// Current returns the next vertex to settle and its final priority,
// without consuming it. Panics with ErrExhausted when Finished.
func (s *Search[G, V, S]) Current() (digraph.Vertex, V) {
	if s.Finished() {
		panic(ErrExhausted)
	}
	e := s.heap.Top()

	return e.Key, e.Priority
}

// Advance settles the minimum vertex t at priority d, then relaxes
// every out-arc of t: unseen heads are pushed, in-heap heads are
// promoted when strictly improved, settled heads are skipped (final
// under a monotone semiring); reports (t, d).
// Panics with ErrExhausted when Finished.
// Complexity: O(deg(t)·log_d V)
func (s *Search[G, V, S]) Advance() (digraph.Vertex, V) {
	if s.Finished() {
		panic(ErrExhausted)
	}
	top := s.heap.Top()
	t, d := top.Key, top.Priority
	if s.dist != nil {
		s.dist.Set(int(t), d)
	}
	s.heap.Pop() // marks t settled in the position map

	for a := range s.graph.OutArcs(t) {
		w := s.graph.Target(a)
		switch st := s.pos.At(int(w)); {
		case st == dheap.Unseen:
			s.heap.Push(w, s.ring.Plus(d, s.costs.At(int(a))))
			s.recordPred(w, t, a)
		case st >= 0: // in heap
			dw := s.ring.Plus(d, s.costs.At(int(a)))
			if s.ring.Less(dw, s.heap.Priority(w)) {
				s.heap.Promote(w, dw)
				s.recordPred(w, t, a)
			}
		}
	}

	return t, d
}

// recordPred notes that w was (re)reached through arc a out of t.
func (s *Search[G, V, S]) recordPred(w, t digraph.Vertex, a digraph.Arc) {
	if s.predArc == nil {
		return
	}
	s.predArc.Set(int(w), a)
	if s.predVertex != nil {
		s.predVertex.Set(int(w), t)
	}
}

// Run drains the heap.
func (s *Search[G, V, S]) Run() {
	for !s.Finished() {
		s.Advance()
	}
}

// All yields each settled vertex with its final priority, in
// non-decreasing priority order under the semiring, advancing between
// yields.
func (s *Search[G, V, S]) All() iter.Seq2[digraph.Vertex, V] {
	return func(yield func(digraph.Vertex, V) bool) {
		for !s.Finished() {
			if !yield(s.Advance()) {
				return
			}
		}
	}
}

// Reached reports whether u has been seen (in the heap or settled).
func (s *Search[G, V, S]) Reached(u digraph.Vertex) bool {
	return s.pos.At(int(u)) != dheap.Unseen
}

// Settled reports whether u's priority is final.
func (s *Search[G, V, S]) Settled(u digraph.Vertex) bool {
	return s.pos.At(int(u)) == dheap.Settled
}

// CurrentDist returns the tentative priority of an in-heap vertex.
// Panics with ErrNotReached for unseen u and ErrSettled for settled u
// (use Dist there).
func (s *Search[G, V, S]) CurrentDist(u digraph.Vertex) V {
	switch s.pos.At(int(u)) {
	case dheap.Unseen:
		panic(ErrNotReached)
	case dheap.Settled:
		panic(ErrSettled)
	}

	return s.heap.Priority(u)
}

// Dist returns the final priority of a settled vertex. Panics with
// ErrNoStore unless WithDistances, and with ErrNotSettled until u
// settles.
func (s *Search[G, V, S]) Dist(u digraph.Vertex) V {
	if s.dist == nil {
		panic(ErrNoStore)
	}
	if s.pos.At(int(u)) != dheap.Settled {
		panic(ErrNotSettled)
	}

	return s.dist.At(int(u))
}

// PredArc returns the arc that last improved u. Panics with ErrNoStore
// unless WithPaths, ErrNotReached for unseen u, and ErrNoPred for a
// source.
func (s *Search[G, V, S]) PredArc(u digraph.Vertex) digraph.Arc {
	if s.predArc == nil {
		panic(ErrNoStore)
	}
	if s.pos.At(int(u)) == dheap.Unseen {
		panic(ErrNotReached)
	}
	a := s.predArc.At(int(u))
	if a == digraph.InvalidArc {
		panic(ErrNoPred)
	}

	return a
}

// PredVertex returns the tail of PredArc(u) — derived through the
// container's O(1) Source when available, read from the explicit store
// otherwise. Same panics as PredArc.
func (s *Search[G, V, S]) PredVertex(u digraph.Vertex) digraph.Vertex {
	a := s.PredArc(u)
	if s.arcSource != nil {
		return s.arcSource.Source(a)
	}

	return s.predVertex.At(int(u))
}

// PathTo lazily walks the predecessor arcs of a settled vertex t back
// to the source that reached it, yielding each arc head-first. Panics
// with ErrNoStore unless WithPaths, and with ErrNotSettled until t
// settles.
func (s *Search[G, V, S]) PathTo(t digraph.Vertex) iter.Seq[digraph.Arc] {
	if s.predArc == nil {
		panic(ErrNoStore)
	}
	if s.pos.At(int(t)) != dheap.Settled {
		panic(ErrNotSettled)
	}

	return func(yield func(digraph.Arc) bool) {
		for v := t; ; {
			a := s.predArc.At(int(v))
			if a == digraph.InvalidArc {
				return
			}
			if !yield(a) {
				return
			}
			if s.arcSource != nil {
				v = s.arcSource.Source(a)
			} else {
				v = s.predVertex.At(int(v))
			}
		}
	}
}
