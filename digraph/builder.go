package digraph

import "fmt"

// Builder collects (source, target) pairs in any order and emits a
// static container. At Build the pairs are stably counting-sorted by
// source, so the emitted arc identities are the positions in that
// order; ArcID recovers the identity assigned to each added pair, for
// aligning per-arc data (costs, labels) with the emitted graph.
//
// A Builder is single-shot: Build may be called once per variant, and
// AddArc after a Build is a contract violation.
type Builder struct {
	nbVertices int
	sources    []Vertex
	targets    []Vertex
	arcOf      []Arc // input position → emitted arc id, filled by Build
	built      bool
}

// NewBuilder returns a Builder for a graph on nbVertices vertices.
func NewBuilder(nbVertices int) *Builder {
	return &Builder{nbVertices: nbVertices}
}

// AddArc records the pair u→v and returns the Builder for chaining.
// Endpoints are validated at Build.
func (b *Builder) AddArc(u, v Vertex) *Builder {
	if b.built {
		panic(ErrInvalidHandle)
	}
	b.sources = append(b.sources, u)
	b.targets = append(b.targets, v)

	return b
}

// NbArcs reports the number of pairs added so far.
func (b *Builder) NbArcs() int { return len(b.sources) }

// sort stably counting-sorts the recorded pairs by source and fills
// the input-position → arc-id permutation.
// Complexity: O(V + A)
func (b *Builder) sort() ([]Vertex, []Vertex, error) {
	offsets, err := countingOffsets(b.nbVertices, b.sources, false)
	if err != nil {
		return nil, nil, err
	}
	for i, t := range b.targets {
		if int(t) >= b.nbVertices {
			return nil, nil, fmt.Errorf("%w: target %d of arc %d", ErrVertexRange, t, i)
		}
	}

	n := len(b.sources)
	sources := make([]Vertex, n)
	targets := make([]Vertex, n)
	b.arcOf = make([]Arc, n)
	cursor := make([]Arc, b.nbVertices)
	for v := 0; v < b.nbVertices; v++ {
		cursor[v] = offsets.At(v)
	}
	for i := 0; i < n; i++ {
		s := b.sources[i]
		slot := cursor[s]
		cursor[s]++
		sources[slot] = s
		targets[slot] = b.targets[i]
		b.arcOf[i] = slot
	}

	return sources, targets, nil
}

// Build sorts the pairs and emits a bidirectional Static digraph.
func (b *Builder) Build() (*Static, error) {
	sources, targets, err := b.sort()
	if err != nil {
		return nil, err
	}
	b.built = true

	return NewStatic(b.nbVertices, sources, targets)
}

// BuildForward sorts the pairs and emits a forward-only StaticForward.
func (b *Builder) BuildForward() (*StaticForward, error) {
	sources, targets, err := b.sort()
	if err != nil {
		return nil, err
	}
	b.built = true

	return NewStaticForward(b.nbVertices, sources, targets)
}

// ArcID returns the arc identity the emitted graph assigned to the
// i-th added pair. Valid only after a successful Build.
func (b *Builder) ArcID(i int) Arc {
	if !b.built {
		panic(ErrInvalidHandle)
	}

	return b.arcOf[i]
}
