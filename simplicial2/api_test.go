// SPDX-License-Identifier: MIT
// Package simplicial2_test verifies the read-only facade: Stats, catalogues,
// boundary listing, export and cloning.

package simplicial2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletal/simplicial2"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name string
		tris [][3]int
		want simplicial2.Stats
	}{
		{"single", SingleTriangle, simplicial2.Stats{
			NodeCount: 3, HalfEdgeCount: 3, TriangleCount: 1, EdgeCount: 3,
			BoundaryHalfEdgeCount: 3, EulerCharacteristic: 1,
		}},
		{"two", TwoTriangles, simplicial2.Stats{
			NodeCount: 4, HalfEdgeCount: 6, TriangleCount: 2, EdgeCount: 5,
			BoundaryHalfEdgeCount: 4, EulerCharacteristic: 1,
		}},
		{"tetrahedron", Tetrahedron, simplicial2.Stats{
			NodeCount: 4, HalfEdgeCount: 12, TriangleCount: 4, EdgeCount: 6,
			BoundaryHalfEdgeCount: 0, EulerCharacteristic: 2,
		}},
		{"grid 2x3", Grid(2, 3), simplicial2.Stats{
			NodeCount: 12, HalfEdgeCount: 36, TriangleCount: 12, EdgeCount: 23,
			BoundaryHalfEdgeCount: 10, EulerCharacteristic: 1,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			BothModes(t, func(t *testing.T, opts ...simplicial2.Option) {
				s := MustBuild(t, tc.tris, opts...)
				want := tc.want
				want.NodeHalfEdges = len(opts) > 0
				require.Equal(t, &want, s.Stats())
			})
		})
	}
}

func TestNodeValues_SortedDistinct(t *testing.T) {
	BothModes(t, func(t *testing.T, opts ...simplicial2.Option) {
		s := MustBuild(t, [][3]int{{9, 3, 5}, {3, 9, 1}}, opts...)
		require.Equal(t, []int{1, 3, 5, 9}, s.NodeValues())
		require.Empty(t, simplicial2.New(opts...).NodeValues())
	})
}

func TestBoundaryHalfEdges(t *testing.T) {
	s := MustBuild(t, TwoTriangles)
	b := s.BoundaryHalfEdges()
	require.Len(t, b, 4)
	for _, h := range b {
		isB, err := s.IsBoundary(h)
		require.NoError(t, err)
		require.True(t, isB)
	}
	require.False(t, s.IsClosed())
	require.Empty(t, MustBuild(t, Tetrahedron).BoundaryHalfEdges())
}

func TestTriangleList_RoundTrip(t *testing.T) {
	tris := Grid(3, 2)
	s := MustBuild(t, tris)
	require.Equal(t, tris, s.TriangleList())

	again := MustBuild(t, s.TriangleList())
	require.Equal(t, s.Stats(), again.Stats())
}

func TestClone_DeepCopy(t *testing.T) {
	BothModes(t, func(t *testing.T, opts ...simplicial2.Option) {
		s := MustBuild(t, TwoTriangles, opts...)
		c := s.Clone()
		require.Equal(t, s.Stats(), c.Stats())
		require.Equal(t, s.NodeHalfEdgesRegistered(), c.NodeHalfEdgesRegistered())
		require.NoError(t, c.CheckInvariants())

		_, err := c.InsertTriangle(2, 1, 4)
		require.NoError(t, err)
		require.Equal(t, 2, s.NbTriangles())
		require.Equal(t, 3, c.NbTriangles())
		_, ok := s.FindHalfEdge(2, 1)
		require.False(t, ok)
		require.Len(t, s.NodeHalfEdges(1), 2)
		require.Len(t, c.NodeHalfEdges(1), 3)
	})
}
