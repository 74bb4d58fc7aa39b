package topo

import "errors"

// Sentinel errors; engine contract violations panic with these values.
var (
	// ErrExhausted reports Current or Advance on a finished traversal.
	ErrExhausted = errors.New("topo: traversal finished")

	// ErrNoStore reports a query for a store disabled at construction.
	ErrNoStore = errors.New("topo: store not enabled")

	// ErrNotReached reports a per-vertex query on an unreached vertex.
	ErrNotReached = errors.New("topo: vertex not reached")
)

// options selects the optional per-vertex stores.
type options struct {
	predVertices bool
	predArcs     bool
	depths       bool
}

// Option configures a Traversal at construction.
type Option func(*options)

// WithPredVertices stores the vertex whose settling released each
// reached vertex, enabling PredVertex.
func WithPredVertices() Option {
	return func(o *options) { o.predVertices = true }
}

// WithPredArcs stores the arc whose decrement released each reached
// vertex, enabling PredArc.
func WithPredArcs() Option {
	return func(o *options) { o.predArcs = true }
}

// WithDepths stores each vertex's layer (releasing parent + 1),
// enabling Depth.
func WithDepths() Option {
	return func(o *options) { o.depths = true }
}
