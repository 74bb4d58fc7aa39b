package bfs

import "errors"

// Sentinel errors; engine contract violations panic with these values.
var (
	// ErrSourceReached reports AddSource on an already-reached vertex.
	ErrSourceReached = errors.New("bfs: source vertex already reached")

	// ErrExhausted reports Current or Advance on a finished traversal.
	ErrExhausted = errors.New("bfs: traversal finished")

	// ErrNoStore reports a query for a store disabled at construction.
	ErrNoStore = errors.New("bfs: store not enabled")

	// ErrNotReached reports a per-vertex query on an unreached vertex.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// options selects the optional per-vertex stores.
type options struct {
	predVertices bool
	predArcs     bool
	depths       bool
}

// Option configures a Traversal at construction.
type Option func(*options)

// WithPredVertices stores each reached vertex's predecessor vertex
// (the source itself for sources), enabling PredVertex.
func WithPredVertices() Option {
	return func(o *options) { o.predVertices = true }
}

// WithPredArcs stores the arc that first reached each vertex, enabling
// PredArc and tree reconstruction.
func WithPredArcs() Option {
	return func(o *options) { o.predArcs = true }
}

// WithDepths stores each vertex's unweighted distance from the nearest
// source, enabling Depth.
func WithDepths() Option {
	return func(o *options) { o.depths = true }
}
