package bellmanford_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Ryan2486/Bellman/bellmanford"
	"github.com/Ryan2486/Bellman/core"
)

// BenchmarkRun_Chain measures the engine on a forward-declared chain of N
// edges: relaxation converges in one round, so this is the best case.
func BenchmarkRun_Chain(b *testing.B) {
	const N = 1024
	g := buildChainGraph(b, N, false)
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Run(g, "v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkRun_ChainReversed declares the same chain in reverse edge order,
// forcing one node to converge per round: the full V−1 round worst case.
func BenchmarkRun_ChainReversed(b *testing.B) {
	const N = 1024
	g := buildChainGraph(b, N, true)
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Run(g, "v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkRun_RandomLayered measures a denser workload: L layers of width W
// fully connected layer-to-layer with pseudo-random weights.
func BenchmarkRun_RandomLayered(b *testing.B) {
	const (
		L = 16
		W = 8
	)
	rnd := rand.New(rand.NewSource(42))

	bld := core.NewBuilder()
	for i := 0; i < L; i++ {
		for j := 0; j < W; j++ {
			bld.AddNode(fmt.Sprintf("l%d_%d", i, j))
		}
	}
	for i := 0; i+1 < L; i++ {
		for j := 0; j < W; j++ {
			for k := 0; k < W; k++ {
				bld.AddEdge(
					fmt.Sprintf("l%d_%d", i, j),
					fmt.Sprintf("l%d_%d", i+1, k),
					int64(1+rnd.Intn(1000)),
				)
			}
		}
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}
	V := L * W
	E := (L - 1) * W * W

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Run(g, "l0_0", fmt.Sprintf("l%d_0", L-1))
	}
}

// BenchmarkRun_TieLadder stresses path enumeration: K stacked diamonds give
// 2^K tied optimal paths of equal cost.
func BenchmarkRun_TieLadder(b *testing.B) {
	const K = 10 // 2^10 = 1024 optimal paths

	bld := core.NewBuilder().AddNode("s0")
	for i := 0; i < K; i++ {
		si, sn := fmt.Sprintf("s%d", i), fmt.Sprintf("s%d", i+1)
		ai, bi := fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)
		bld.AddNode(ai).AddNode(bi).AddNode(sn).
			AddEdge(si, ai, 1).AddEdge(si, bi, 1).
			AddEdge(ai, sn, 1).AddEdge(bi, sn, 1)
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.Run(g, "s0", fmt.Sprintf("s%d", K))
	}
}

// BenchmarkRun_SweepModes compares the early-exit default against the forced
// full |V|−1 sweep on a forward chain, where the gap is widest.
func BenchmarkRun_SweepModes(b *testing.B) {
	const N = 512
	g := buildChainGraph(b, N, false)
	target := fmt.Sprintf("v%d", N)

	b.Run("EarlyExit", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bellmanford.Run(g, "v0", target)
		}
	})

	b.Run("FullSweep", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bellmanford.Run(g, "v0", target, bellmanford.WithFullSweep())
		}
	})
}

// buildChainGraph declares v0→v1→…→vN with unit weights; reversed flips the
// edge declaration order (not the edge direction) to defeat the sweep order.
func buildChainGraph(b *testing.B, n int, reversed bool) *core.Graph {
	b.Helper()
	bld := core.NewBuilder()
	for i := 0; i <= n; i++ {
		bld.AddNode(fmt.Sprintf("v%d", i))
	}
	if reversed {
		for i := n - 1; i >= 0; i-- {
			bld.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		}
	} else {
		for i := 0; i < n; i++ {
			bld.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		}
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	return g
}
