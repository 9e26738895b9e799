package traverse_test

import (
	"testing"

	"github.com/katalvlaran/skeletal/builder"
	"github.com/katalvlaran/skeletal/traverse"
)

// BenchmarkTriangleBFS_Grid measures BFS over a 100×100 grid (20k triangles).
func BenchmarkTriangleBFS_Grid(b *testing.B) {
	s, err := builder.Build(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(s.NbTriangles()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = traverse.TriangleBFS(s, 0)
	}
}

// BenchmarkBoundaryLoops_Grid walks the 400 rim half-edges of the same grid.
func BenchmarkBoundaryLoops_Grid(b *testing.B) {
	s, err := builder.Build(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = traverse.BoundaryLoops(s)
	}
}
