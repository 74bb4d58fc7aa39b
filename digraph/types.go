package digraph

import "errors"

// Vertex identifies a vertex of a digraph. Handles are value-semantic,
// ordered and hashable; the static containers hand out exactly
// [0, NbVertices).
type Vertex uint32

// Arc identifies a directed arc. In the static containers an arc's
// identity is its position in the source-sorted arc order.
type Arc uint32

// InvalidVertex is the sentinel outside every vertex domain. It ends
// the intrusive vertex lists of Mutable and marks "no predecessor
// vertex" where one is stored.
const InvalidVertex = ^Vertex(0)

// InvalidArc is the sentinel outside every arc domain. It ends the
// intrusive arc lists of Mutable and marks "no predecessor arc" in the
// engines' path stores.
const InvalidArc = ^Arc(0)

// Sentinel errors for container construction.
var (
	// ErrVertexRange reports an arc endpoint outside [0, NbVertices).
	ErrVertexRange = errors.New("digraph: arc endpoint out of vertex range")

	// ErrUnsortedSources reports a static construction input whose
	// sources sequence is not non-decreasing.
	ErrUnsortedSources = errors.New("digraph: sources must be non-decreasing")

	// ErrLengthMismatch reports sources and targets of different length.
	ErrLengthMismatch = errors.New("digraph: sources and targets length mismatch")

	// ErrInvalidHandle reports an operation on a removed or never-created
	// vertex or arc handle.
	ErrInvalidHandle = errors.New("digraph: invalid vertex or arc handle")
)
