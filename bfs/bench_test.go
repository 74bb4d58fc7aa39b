package bfs_test

import (
	"testing"

	"github.com/pradkrish/melon/bfs"
	"github.com/pradkrish/melon/digraph"
)

// BenchmarkTraversal_Chain measures a full run over a linear chain,
// reusing the engine through Reset.
func BenchmarkTraversal_Chain(b *testing.B) {
	const n = 1 << 14
	builder := digraph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		builder.AddArc(digraph.Vertex(i), digraph.Vertex(i+1))
	}
	g, err := builder.BuildForward()
	if err != nil {
		b.Fatal(err)
	}

	tr := bfs.New(g, bfs.WithDepths())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Reset()
		tr.AddSource(0)
		tr.Run()
	}
}

// BenchmarkTraversal_Grid measures a run over a 128x128 grid digraph.
func BenchmarkTraversal_Grid(b *testing.B) {
	const side = 128
	builder := digraph.NewBuilder(side * side)
	at := func(r, c int) digraph.Vertex { return digraph.Vertex(r*side + c) }
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				builder.AddArc(at(r, c), at(r, c+1))
			}
			if r+1 < side {
				builder.AddArc(at(r, c), at(r+1, c))
			}
		}
	}
	g, err := builder.BuildForward()
	if err != nil {
		b.Fatal(err)
	}

	tr := bfs.New(g)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Reset()
		tr.AddSource(0)
		tr.Run()
	}
}
