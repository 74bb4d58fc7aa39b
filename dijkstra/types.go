package dijkstra

import "errors"

// Sentinel errors; engine contract violations panic with these values.
var (
	// ErrSourceInHeap reports AddSource on a vertex already in the heap.
	ErrSourceInHeap = errors.New("dijkstra: source vertex already in heap")

	// ErrExhausted reports Current or Advance on a finished search.
	ErrExhausted = errors.New("dijkstra: search finished")

	// ErrNoStore reports a query for a store disabled at construction.
	ErrNoStore = errors.New("dijkstra: store not enabled")

	// ErrNotReached reports a per-vertex query on an unreached vertex.
	ErrNotReached = errors.New("dijkstra: vertex not reached")

	// ErrNotSettled reports Dist or PathTo on a vertex that is still in
	// the heap (use CurrentDist for those).
	ErrNotSettled = errors.New("dijkstra: vertex not settled")

	// ErrSettled reports CurrentDist on a settled vertex (use Dist).
	ErrSettled = errors.New("dijkstra: vertex already settled")

	// ErrNoPred reports PredArc or PredVertex on a source vertex, which
	// has no predecessor.
	ErrNoPred = errors.New("dijkstra: vertex has no predecessor")

	// ErrBadSourceDist reports AddSource called with more than one
	// start value.
	ErrBadSourceDist = errors.New("dijkstra: at most one start value")
)

// options configures a Search at construction.
type options struct {
	arity     int
	paths     bool
	distances bool
}

// defaultOptions: binary heap, no optional stores.
func defaultOptions() options {
	return options{arity: 2}
}

// Option configures a Search at construction.
type Option func(*options)

// WithPaths stores the predecessor arc of every reached vertex,
// enabling PredArc, PredVertex and PathTo.
func WithPaths() Option {
	return func(o *options) { o.paths = true }
}

// WithDistances stores the final priority of every settled vertex,
// enabling Dist.
func WithDistances() Option {
	return func(o *options) { o.distances = true }
}

// WithArity sets the heap branching factor. Wider heaps trade slower
// pops for faster decrease-keys; 4 is a common choice on dense graphs.
// Values below 2 panic via dheap.ErrBadArity when the heap is built.
func WithArity(d int) Option {
	return func(o *options) { o.arity = d }
}
