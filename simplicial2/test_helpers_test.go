// SPDX-License-Identifier: MIT
// Package simplicial2_test contains shared fixtures and oracles for simplicial2 tests.
//
// Purpose:
//   - Provide small, deterministic triangle lists with known topology.
//   - Provide brute-force oracles to compare indexed queries against.

package simplicial2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// Common triangle lists used across tests.
var (
	// SingleTriangle is one open face: 3 half-edges, all boundary.
	SingleTriangle = [][3]int{{0, 1, 2}}

	// TwoTriangles share the edge {0,1} with opposite orientations.
	TwoTriangles = [][3]int{{0, 1, 2}, {1, 0, 3}}

	// Tetrahedron is a closed, consistently oriented sphere (V=4, E=6, F=4).
	Tetrahedron = [][3]int{{0, 1, 2}, {1, 0, 3}, {2, 1, 3}, {0, 2, 3}}

	// SparseLabels uses non-contiguous node values.
	SparseLabels = [][3]int{{10, 20, 30}, {20, 10, 70}}
)

// Grid returns a triangulated rows×cols square grid with node values
// r*(cols+1)+c. Each square (r,c) is split along its diagonal.
func Grid(rows, cols int) [][3]int {
	id := func(r, c int) int { return r*(cols+1) + c }
	out := make([][3]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a, b := id(r, c), id(r, c+1)
			d, e := id(r+1, c), id(r+1, c+1)
			out = append(out, [3]int{a, b, e}, [3]int{a, e, d})
		}
	}

	return out
}

// MustBuild builds from tris or fails the test.
func MustBuild(t *testing.T, tris [][3]int, opts ...simplicial2.Option) *simplicial2.Simplicial2 {
	t.Helper()
	s, err := simplicial2.BuildFromTriangleList(tris, opts...)
	require.NoError(t, err)
	require.NotNil(t, s)

	return s
}

// BothModes runs fn once without and once with the node index.
func BothModes(t *testing.T, fn func(t *testing.T, opts ...simplicial2.Option)) {
	t.Run("scan", func(t *testing.T) { fn(t) })
	t.Run("indexed", func(t *testing.T) { fn(t, simplicial2.WithNodeHalfEdges()) })
}

// ScanOutgoing is the linear-scan oracle for NodeHalfEdges.
func ScanOutgoing(t *testing.T, s *simplicial2.Simplicial2, n int) []int {
	t.Helper()
	out := []int{}
	for h := 0; h < s.NbHalfEdges(); h++ {
		first, err := s.FirstNode(h)
		require.NoError(t, err)
		if first == n {
			out = append(out, h)
		}
	}

	return out
}

// Counts captures arena sizes for before/after comparisons.
type Counts struct{ HalfEdges, Triangles int }

// CountsOf snapshots arena sizes of s.
func CountsOf(s *simplicial2.Simplicial2) Counts {
	return Counts{HalfEdges: s.NbHalfEdges(), Triangles: s.NbTriangles()}
}
