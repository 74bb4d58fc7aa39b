package dijkstra

// Semiring is the ordered algebra the engine relaxes with. Zero is the
// identity of Plus and the start value of sources; Less is a strict
// weak order on priorities. For the settled priorities to be final,
// Plus must be monotone under Less (a ≤ b ⇒ Plus(a,c) ≤ Plus(b,c)) and
// non-decreasing in each argument for costs ≥ Zero.
type Semiring[V any] interface {
	Zero() V
	Plus(a, b V) V
	Less(a, b V) bool
}

// Number constrains the cost types of the shipped semirings.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ShortestPaths is the regular shortest-path semiring: plus is
// addition, less is <, zero is 0. Costs must be non-negative.
type ShortestPaths[V Number] struct{}

// Zero returns the additive identity.
func (ShortestPaths[V]) Zero() V { var z V; return z }

// Plus adds two path values.
func (ShortestPaths[V]) Plus(a, b V) V { return a + b }

// Less orders smaller sums first.
func (ShortestPaths[V]) Less(a, b V) bool { return a < b }

// WidestPaths is the widest-path (max-bottleneck) semiring: a path's
// value is its narrowest arc, wider is better. Plus is min, Less
// prefers greater, Zero is the caller-supplied Top — the "infinitely
// wide" value of V (math.Inf(1) for floats, the type's maximum for
// integers).
type WidestPaths[V Number] struct {
	// Top is Plus's identity: at least as wide as every arc capacity.
	Top V
}

// NewWidestPaths returns the semiring with the given identity width.
func NewWidestPaths[V Number](top V) WidestPaths[V] {
	return WidestPaths[V]{Top: top}
}

// Zero returns the identity width.
func (s WidestPaths[V]) Zero() V { return s.Top }

// Plus narrows a path by an arc: the minimum of the two.
func (WidestPaths[V]) Plus(a, b V) V {
	if b < a {
		return b
	}

	return a
}

// Less orders wider paths first.
func (WidestPaths[V]) Less(a, b V) bool { return a > b }

// Float constrains probability-valued semirings.
type Float interface {
	~float32 | ~float64
}

// MostReliable is the most-reliable-path semiring over success
// probabilities in (0, 1]: plus is multiplication, more probable is
// better, zero is 1 (the certain empty path).
type MostReliable[V Float] struct{}

// Zero returns the probability of the empty path.
func (MostReliable[V]) Zero() V { return 1 }

// Plus chains two independent probabilities.
func (MostReliable[V]) Plus(a, b V) V { return a * b }

// Less orders more probable paths first.
func (MostReliable[V]) Less(a, b V) bool { return a > b }
