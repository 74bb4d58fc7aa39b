package dfs

import "errors"

// Sentinel errors; engine contract violations panic with these values.
var (
	// ErrSourceReached reports AddSource on an already-reached vertex.
	ErrSourceReached = errors.New("dfs: source vertex already reached")

	// ErrExhausted reports Current or Advance on a finished traversal.
	ErrExhausted = errors.New("dfs: traversal finished")

	// ErrNoStore reports a query for a store disabled at construction.
	ErrNoStore = errors.New("dfs: store not enabled")

	// ErrNotReached reports a per-vertex query on an unreached vertex.
	ErrNotReached = errors.New("dfs: vertex not reached")
)

// options selects the optional per-vertex stores.
type options struct {
	predVertices bool
	predArcs     bool
	depths       bool
}

// Option configures a Traversal at construction.
type Option func(*options)

// WithPredVertices stores each reached vertex's predecessor vertex,
// enabling PredVertex.
func WithPredVertices() Option {
	return func(o *options) { o.predVertices = true }
}

// WithPredArcs stores the arc that first reached each vertex, enabling
// PredArc.
func WithPredArcs() Option {
	return func(o *options) { o.predArcs = true }
}

// WithDepths stores each vertex's stack depth (parent + 1), enabling
// Depth.
func WithDepths() Option {
	return func(o *options) { o.depths = true }
}
