package dijkstra_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dijkstra"
	"github.com/pradkrish/melon/dmap"
)

// weightedArc is one (u, v, cost) triple of a test graph.
type weightedArc struct {
	u, v digraph.Vertex
	cost int
}

// reference is the 5-vertex cost graph used across these tests:
// 0→1:4, 0→2:1, 2→1:2, 1→3:1, 2→3:5, 3→4:3.
var reference = []weightedArc{
	{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3},
}

// buildWeighted emits a Static plus its aligned arc-cost map.
func buildWeighted(t *testing.T, n int, arcs []weightedArc) (*digraph.Static, *dmap.Map[int]) {
	t.Helper()
	b := digraph.NewBuilder(n)
	for _, wa := range arcs {
		b.AddArc(wa.u, wa.v)
	}
	g, err := b.Build()
	require.NoError(t, err)

	costs := digraph.NewArcMap(g, 0)
	for i, wa := range arcs {
		costs.Set(int(b.ArcID(i)), wa.cost)
	}

	return g, costs
}

// TestSearch_ShortestPaths checks distances and the reconstructed
// path on the reference graph.
func TestSearch_ShortestPaths(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	wantDist := []int{0, 3, 1, 4, 7}
	for v, want := range wantDist {
		require.True(t, s.Settled(digraph.Vertex(v)))
		assert.Equal(t, want, s.Dist(digraph.Vertex(v)), "vertex %d", v)
	}

	// Walk the path arcs back from 4 and flip them forward.
	var pairs [][2]digraph.Vertex
	for a := range s.PathTo(4) {
		pairs = append(pairs, [2]digraph.Vertex{g.Source(a), g.Target(a)})
	}
	slices.Reverse(pairs)
	assert.Equal(t, [][2]digraph.Vertex{{0, 2}, {2, 1}, {1, 3}, {3, 4}}, pairs)

	assert.Equal(t, digraph.Vertex(2), s.PredVertex(1), "1 is reached through the cheap detour")
}

// TestSearch_SettleOrder: vertices settle in non-decreasing priority,
// and All yields (vertex, priority) pairs consistent with Dist.
func TestSearch_SettleOrder(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	s.AddSource(0)

	prev := -1
	var order []digraph.Vertex
	for v, d := range s.All() {
		assert.GreaterOrEqual(t, d, prev)
		assert.Equal(t, d, s.Dist(v))
		prev = d
		order = append(order, v)
	}
	assert.Equal(t, []digraph.Vertex{0, 2, 1, 3, 4}, order)
}

// TestSearch_BellmanAtSettled: every settled vertex's distance equals
// the best over its settled in-neighbours plus the connecting arc —
// the optimality property stated pointwise.
func TestSearch_BellmanAtSettled(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	for v := range g.Vertices() {
		if v == 0 || !s.Settled(v) {
			continue
		}
		best := int(^uint(0) >> 1)
		for a := range g.InArcs(v) {
			u := g.Source(a)
			if s.Settled(u) && s.Dist(u)+costs.At(int(a)) < best {
				best = s.Dist(u) + costs.At(int(a))
			}
		}
		assert.Equal(t, best, s.Dist(v), "Bellman equation at %d", v)
	}
}

// TestSearch_PathSum: the semiring sum along every reconstructed path
// equals the stored distance.
func TestSearch_PathSum(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	ring := dijkstra.ShortestPaths[int]{}
	s := dijkstra.New(g, costs, ring, dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	for v := range g.Vertices() {
		if !s.Settled(v) {
			continue
		}
		total := ring.Zero()
		for a := range s.PathTo(v) {
			total = ring.Plus(total, costs.At(int(a)))
		}
		assert.Equal(t, s.Dist(v), total, "path sum to %d", v)
	}
}

// TestSearch_PartialAndCurrentDist stops mid-run and inspects the
// frontier.
func TestSearch_PartialAndCurrentDist(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	s.AddSource(0)

	v, d := s.Current()
	assert.Equal(t, digraph.Vertex(0), v)
	assert.Zero(t, d)
	s.Advance() // settles 0, reaches 1 and 2

	assert.True(t, s.Settled(0))
	assert.True(t, s.Reached(1))
	assert.False(t, s.Settled(1))
	assert.Equal(t, 4, s.CurrentDist(1), "tentative, before the detour improves it")
	assert.Equal(t, 1, s.CurrentDist(2))
	assert.False(t, s.Reached(3))
	assert.False(t, s.Reached(4))
}

// TestSearch_DecreaseKey: the improvement path re-points the
// predecessor arc, and the heap reorders.
func TestSearch_DecreaseKey(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)

	s.Advance() // 0: pushes 1@4, 2@1
	s.Advance() // 2: promotes 1 to 3
	assert.Equal(t, 3, s.CurrentDist(1))
	assert.Equal(t, digraph.Vertex(2), s.PredVertex(1))

	v, d := s.Advance()
	assert.Equal(t, digraph.Vertex(1), v)
	assert.Equal(t, 3, d)
}

// TestSearch_Unreachable leaves disconnected vertices unreached, a
// domain outcome.
func TestSearch_Unreachable(t *testing.T) {
	g, costs := buildWeighted(t, 4, []weightedArc{{0, 1, 2}})
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	assert.True(t, s.Settled(1))
	assert.False(t, s.Reached(2))
	assert.False(t, s.Reached(3))
}

// TestSearch_MultiSourceStart seeds a second source at a head start.
func TestSearch_MultiSourceStart(t *testing.T) {
	// 0→1:10, 2→1:1; source 2 starts at 3.
	g, costs := buildWeighted(t, 3, []weightedArc{{0, 1, 10}, {2, 1, 1}})
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	s.AddSource(0)
	s.AddSource(2, 3)
	s.Run()

	assert.Equal(t, 0, s.Dist(0))
	assert.Equal(t, 3, s.Dist(2))
	assert.Equal(t, 4, s.Dist(1), "through the seeded head start")
}

// TestSearch_ExplicitPredStore runs on a forward-only container, where
// predecessor vertices must be stored, not derived.
func TestSearch_ExplicitPredStore(t *testing.T) {
	b := digraph.NewBuilder(5)
	for _, wa := range reference {
		b.AddArc(wa.u, wa.v)
	}
	g, err := b.BuildForward() // no ArcSource capability
	require.NoError(t, err)
	costs := digraph.NewArcMap(g, 0)
	for i, wa := range reference {
		costs.Set(int(b.ArcID(i)), wa.cost)
	}

	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	assert.Equal(t, 7, s.Dist(4))
	assert.Equal(t, digraph.Vertex(2), s.PredVertex(1))
	var path []digraph.Arc
	for a := range s.PathTo(4) {
		path = append(path, a)
	}
	assert.Len(t, path, 4)
	assert.Equal(t, digraph.Vertex(4), g.Target(path[0]))
}

// TestSearch_WiderArity: a 4-ary heap computes the same distances.
func TestSearch_WiderArity(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithDistances(), dijkstra.WithArity(4))
	s.AddSource(0)
	s.Run()

	for v, want := range []int{0, 3, 1, 4, 7} {
		assert.Equal(t, want, s.Dist(digraph.Vertex(v)))
	}
}

// TestSearch_ResetIdempotence: reset + reseed reproduces a fresh run.
func TestSearch_ResetIdempotence(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	s.Reset()
	assert.True(t, s.Finished())
	assert.False(t, s.Reached(0))

	s.AddSource(0)
	s.Run()
	for v, want := range []int{0, 3, 1, 4, 7} {
		assert.Equal(t, want, s.Dist(digraph.Vertex(v)), "vertex %d", v)
	}
}

// TestSearch_Contracts covers the panic surface.
func TestSearch_Contracts(t *testing.T) {
	g, costs := buildWeighted(t, 5, reference)
	bare := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{})

	assert.PanicsWithValue(t, dijkstra.ErrExhausted, func() { bare.Current() })
	assert.PanicsWithValue(t, dijkstra.ErrNoStore, func() { bare.Dist(0) })
	assert.PanicsWithValue(t, dijkstra.ErrNoStore, func() { bare.PredArc(0) })
	assert.PanicsWithValue(t, dijkstra.ErrNotReached, func() { bare.CurrentDist(0) })

	bare.AddSource(0)
	assert.PanicsWithValue(t, dijkstra.ErrSourceInHeap, func() { bare.AddSource(0) })
	assert.PanicsWithValue(t, dijkstra.ErrBadSourceDist, func() { bare.AddSource(1, 1, 2) })

	full := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	full.AddSource(0)
	full.Run()
	assert.PanicsWithValue(t, dijkstra.ErrNoPred, func() { full.PredArc(0) },
		"a source has no predecessor")
	assert.PanicsWithValue(t, dijkstra.ErrSettled, func() { full.CurrentDist(0) })

	half := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{}, dijkstra.WithDistances())
	half.AddSource(0)
	half.Advance()
	assert.PanicsWithValue(t, dijkstra.ErrNotSettled, func() { half.Dist(1) })
}
