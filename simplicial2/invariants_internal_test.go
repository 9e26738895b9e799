package simplicial2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCheckInvariants_DetectsCorruption breaks internal records directly and
// expects each break to be reported.
func TestCheckInvariants_DetectsCorruption(t *testing.T) {
	tetra := [][3]int{{0, 1, 2}, {1, 0, 3}, {2, 1, 3}, {0, 2, 3}}

	tests := []struct {
		name    string
		corrupt func(s *Simplicial2)
	}{
		{"opposite not mutual", func(s *Simplicial2) { s.halfedges[0].opposite = 4 }},
		{"opposite in own triangle", func(s *Simplicial2) {
			s.halfedges[0].opposite = 1
			s.halfedges[1].opposite = 0
		}},
		{"wrong triangle back-pointer", func(s *Simplicial2) { s.halfedges[5].triangle = 0 }},
		{"stale edge index", func(s *Simplicial2) { delete(s.edgeIndex, edgeKey{from: 0, to: 1}) }},
		{"node index mismatch", func(s *Simplicial2) { s.nodeHalfEdges[0] = append(s.nodeHalfEdges[0], 1) }},
		{"broken cycle", func(s *Simplicial2) { s.halfedges[2].next = 1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := BuildFromTriangleList(tetra, WithNodeHalfEdges())
			require.NoError(t, err)
			require.NoError(t, s.CheckInvariants())

			tc.corrupt(s)
			require.ErrorIs(t, s.CheckInvariants(), ErrCorrupted)
		})
	}
}

func TestCommit_TriangleOwnsConsecutiveHalfEdges(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		idx, err := s.InsertTriangle(0, i, i+1)
		require.NoError(t, err)
		require.Equal(t, [3]int{3 * idx, 3*idx + 1, 3*idx + 2}, s.triangles[idx].halfedges)
	}
}
