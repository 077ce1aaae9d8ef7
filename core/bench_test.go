package core_test

import (
	"fmt"
	"testing"

	"github.com/Ryan2486/Bellman/core"
)

// buildChain declares a path graph 0→1→…→n-1 and returns the builder.
func buildChain(n int) *core.Builder {
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(fmt.Sprintf("n%d", i))
	}
	for i := 1; i < n; i++ {
		b.AddEdge(fmt.Sprintf("n%d", i-1), fmt.Sprintf("n%d", i), int64(i))
	}

	return b
}

// BenchmarkBuilder_Build measures freezing a 1k-node chain into a Graph.
func BenchmarkBuilder_Build(b *testing.B) {
	bld := buildChain(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bld.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGraph_Edges measures the copying accessor on a 1k-edge Graph.
func BenchmarkGraph_Edges(b *testing.B) {
	g, err := buildChain(1000).Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := g.Edges(); len(got) != 999 {
			b.Fatalf("unexpected edge count %d", len(got))
		}
	}
}
