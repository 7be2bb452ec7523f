package implicit_test

import (
	"testing"

	"github.com/katalvlaran/gridtopo/implicit"
)

// BenchmarkVertexStar measures star queries over a 64³ grid
// (power of two, accelerated decoding).
func BenchmarkVertexStar(b *testing.B) {
	g := newGrid(b, [3]int{64, 64, 64})
	n := g.VertexNumber()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		for l := 0; l < g.VertexStarNumber(v); l++ {
			_, _ = g.VertexStar(v, l)
		}
	}
}

// BenchmarkVertexStar_Unaccelerated uses a 63³ grid, forcing divisions.
func BenchmarkVertexStar_Unaccelerated(b *testing.B) {
	g := newGrid(b, [3]int{63, 63, 63})
	n := g.VertexNumber()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		for l := 0; l < g.VertexStarNumber(v); l++ {
			_, _ = g.VertexStar(v, l)
		}
	}
}

// BenchmarkTetrahedronNeighbor measures unchecked cell neighbour queries.
func BenchmarkTetrahedronNeighbor(b *testing.B) {
	g := newGrid(b, [3]int{64, 64, 64}, implicit.WithBoundsChecking(false))
	n := g.TetrahedronNumber()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := i % n
		for l := 0; l < g.TetrahedronNeighborNumber(t); l++ {
			_, _ = g.TetrahedronNeighbor(t, l)
		}
	}
}

// BenchmarkVertexNeighborsTable measures building the full neighbour table.
func BenchmarkVertexNeighborsTable(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := newGrid(b, [3]int{32, 32, 32})
		b.StartTimer()
		_ = g.VertexNeighbors()
	}
}
