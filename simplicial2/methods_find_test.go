// SPDX-License-Identifier: MIT
// Package simplicial2_test verifies bounds-checked accessors and value lookups.

package simplicial2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletal/simplicial2"
)

func TestGetFromIndex(t *testing.T) {
	s := MustBuild(t, TwoTriangles)

	he, err := s.GetHalfEdgeFromIndex(4)
	require.NoError(t, err)
	require.Equal(t, 4, he.Index())
	require.Same(t, s, he.Simplicial())

	_, err = s.GetHalfEdgeFromIndex(6)
	require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
	_, err = s.GetHalfEdgeFromIndex(-1)
	require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)

	tri, err := s.GetTriangleFromIndex(1)
	require.NoError(t, err)
	require.Equal(t, 1, tri.Index())

	_, err = s.GetTriangleFromIndex(2)
	require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
}

func TestFindNode(t *testing.T) {
	BothModes(t, func(t *testing.T, opts ...simplicial2.Option) {
		s := MustBuild(t, SparseLabels, opts...)
		for _, n := range []int{10, 20, 30, 70} {
			node, ok := s.FindNode(n)
			require.True(t, ok, "node %d", n)
			require.Equal(t, n, node.Value())
		}
		_, ok := s.FindNode(0)
		require.False(t, ok)
		_, ok = s.FindNode(40)
		require.False(t, ok)
	})
}

func TestFindNode_AnchorsOnFirstInsertedHalfEdge(t *testing.T) {
	scan := MustBuild(t, Tetrahedron)
	indexed := MustBuild(t, Tetrahedron, simplicial2.WithNodeHalfEdges())
	for n := 0; n < 4; n++ {
		a, ok := scan.FindNode(n)
		require.True(t, ok)
		b, ok := indexed.FindNode(n)
		require.True(t, ok)
		require.Equal(t, a.Halfedges()[0].Index(), b.Halfedges()[0].Index())
	}
}

func TestFindHalfEdge(t *testing.T) {
	s := MustBuild(t, TwoTriangles)

	he, ok := s.FindHalfEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, 0, he.FirstNode().Value())
	require.Equal(t, 1, he.LastNode().Value())

	he, ok = s.FindHalfEdge(1, 0)
	require.True(t, ok)
	require.Equal(t, 1, he.FirstNode().Value())

	_, ok = s.FindHalfEdge(2, 3)
	require.False(t, ok)
	_, ok = s.FindHalfEdge(2, 1)
	require.False(t, ok, "reverse of a boundary half-edge does not exist")
}

func TestFindTriangle_RotationInvariantOrientationSensitive(t *testing.T) {
	s := MustBuild(t, Tetrahedron)
	for want, tri := range Tetrahedron {
		a, b, c := tri[0], tri[1], tri[2]
		for _, rot := range [][3]int{{a, b, c}, {b, c, a}, {c, a, b}} {
			got, ok := s.FindTriangle(rot[0], rot[1], rot[2])
			require.True(t, ok, "rotation %v", rot)
			require.Equal(t, want, got.Index())
		}
	}

	open := MustBuild(t, TwoTriangles)
	_, ok := open.FindTriangle(0, 2, 1)
	require.False(t, ok, "reversed winding is a different face")
	_, ok = open.FindTriangle(2, 1, 0)
	require.False(t, ok)
	_, ok = open.FindTriangle(0, 1, 3)
	require.False(t, ok, "right edge, wrong apex")
	_, ok = open.FindTriangle(7, 8, 9)
	require.False(t, ok)
}

func TestFind_Idempotent(t *testing.T) {
	s := MustBuild(t, Grid(2, 2), simplicial2.WithNodeHalfEdges())
	for i := 0; i < 3; i++ {
		a, okA := s.FindTriangle(0, 1, 4)
		b, okB := s.FindTriangle(0, 1, 4)
		require.Equal(t, okA, okB)
		require.Equal(t, a.Index(), b.Index())
		require.Equal(t, s.NodeHalfEdges(4), s.NodeHalfEdges(4))
	}
}
