package pole_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/inpole/geometry"
	"github.com/katalvlaran/inpole/pole"
)

// benchNGon builds a regular n-gon of radius 50 for search benchmarks.
func benchNGon(b *testing.B, n int) *geometry.Polygon {
	b.Helper()
	ring := make(geometry.Ring, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = geometry.Point{X: 50 * math.Cos(a), Y: 50 * math.Sin(a)}
	}
	p, err := geometry.NewPolygon(ring)
	if err != nil {
		b.Fatalf("NewPolygon failed: %v", err)
	}

	return p
}

// benchmarkFind runs the search b.N times with the given geometry and options.
func benchmarkFind(b *testing.B, g pole.Geometry, opts pole.Options) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := pole.Find(g, opts); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}

// BenchmarkFind_CoarseTolerance benchmarks a shallow search (few levels).
func BenchmarkFind_CoarseTolerance(b *testing.B) {
	benchmarkFind(b, benchNGon(b, 128), pole.Options{Tolerance: 1})
}

// BenchmarkFind_FineTolerance benchmarks a deep search on the same shape.
func BenchmarkFind_FineTolerance(b *testing.B) {
	benchmarkFind(b, benchNGon(b, 128), pole.Options{Tolerance: 1e-4})
}

// BenchmarkFind_PlainOracle benchmarks the linear oracle on a heavy polygon.
func BenchmarkFind_PlainOracle(b *testing.B) {
	benchmarkFind(b, benchNGon(b, 2048), pole.Options{Tolerance: 0.01})
}

// BenchmarkFind_IndexedOracle benchmarks the same search through the
// R-tree oracle; the oracle dominates the runtime, so the gap here is
// the index's value.
func BenchmarkFind_IndexedOracle(b *testing.B) {
	benchmarkFind(b, geometry.NewIndexedPolygon(benchNGon(b, 2048)), pole.Options{Tolerance: 0.01})
}

// BenchmarkFind_Concurrent benchmarks parallel child evaluation.
func BenchmarkFind_Concurrent(b *testing.B) {
	benchmarkFind(b, benchNGon(b, 2048), pole.Options{Tolerance: 0.01, Concurrent: true})
}
