package dijkstra_test

import (
	"fmt"

	"github.com/pradkrish/melon/digraph"
	"github.com/pradkrish/melon/dijkstra"
)

// Example routes across a small weighted graph and reconstructs the
// cheapest path to the far vertex.
func Example() {
	arcs := []struct {
		u, v digraph.Vertex
		cost int
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3},
	}
	b := digraph.NewBuilder(5)
	for _, a := range arcs {
		b.AddArc(a.u, a.v)
	}
	g, err := b.Build()
	if err != nil {
		fmt.Println(err)

		return
	}
	costs := digraph.NewArcMap(g, 0)
	for i, a := range arcs {
		costs.Set(int(b.ArcID(i)), a.cost)
	}

	s := dijkstra.New(g, costs, dijkstra.ShortestPaths[int]{},
		dijkstra.WithPaths(), dijkstra.WithDistances())
	s.AddSource(0)
	s.Run()

	fmt.Println("dist to 4:", s.Dist(4))
	var hops []digraph.Vertex
	for a := range s.PathTo(4) {
		hops = append(hops, g.Source(a))
	}
	for i := len(hops) - 1; i >= 0; i-- {
		fmt.Printf("%d->", hops[i])
	}
	fmt.Println(4)
	// Output:
	// dist to 4: 7
	// 0->2->1->3->4
}
