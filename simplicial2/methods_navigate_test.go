// SPDX-License-Identifier: MIT
// Package simplicial2_test verifies index-level navigation: cycle laws, pairing
// laws, node fans and the two distinct failure modes (bad index vs boundary).

package simplicial2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletal/simplicial2"
)

func TestNavigate_NextCycleHasLengthThree(t *testing.T) {
	for _, tris := range [][][3]int{SingleTriangle, TwoTriangles, Tetrahedron, Grid(4, 3)} {
		s := MustBuild(t, tris)
		for h := 0; h < s.NbHalfEdges(); h++ {
			n1, err := s.Next(h)
			require.NoError(t, err)
			n2, err := s.Next(n1)
			require.NoError(t, err)
			n3, err := s.Next(n2)
			require.NoError(t, err)
			require.Equal(t, h, n3, "next^3(%d)", h)

			p, err := s.Previous(h)
			require.NoError(t, err)
			require.Equal(t, n2, p)
			pn, err := s.Next(p)
			require.NoError(t, err)
			require.Equal(t, h, pn)

			th, err := s.TriangleOf(h)
			require.NoError(t, err)
			tn, err := s.TriangleOf(n1)
			require.NoError(t, err)
			require.Equal(t, th, tn)
		}
	}
}

func TestNavigate_OppositeLaws(t *testing.T) {
	s := MustBuild(t, Grid(3, 3))
	for h := 0; h < s.NbHalfEdges(); h++ {
		o, err := s.Opposite(h)
		if err != nil {
			require.ErrorIs(t, err, simplicial2.ErrUnboundHalfEdge)
			continue
		}
		oo, err := s.Opposite(o)
		require.NoError(t, err)
		require.Equal(t, h, oo)

		firstO, err := s.FirstNode(o)
		require.NoError(t, err)
		lastH, err := s.LastNode(h)
		require.NoError(t, err)
		require.Equal(t, lastH, firstO)

		lastO, err := s.LastNode(o)
		require.NoError(t, err)
		firstH, err := s.FirstNode(h)
		require.NoError(t, err)
		require.Equal(t, firstH, lastO)
	}
}

func TestNavigate_BoundaryIsNotIndexError(t *testing.T) {
	s := MustBuild(t, SingleTriangle)

	_, err := s.Opposite(0)
	require.ErrorIs(t, err, simplicial2.ErrUnboundHalfEdge)
	require.NotErrorIs(t, err, simplicial2.ErrIndexOutOfRange)

	_, err = s.Opposite(3)
	require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
	require.NotErrorIs(t, err, simplicial2.ErrUnboundHalfEdge)

	b, err := s.IsBoundary(0)
	require.NoError(t, err)
	require.True(t, b)
}

func TestNavigate_OutOfRange(t *testing.T) {
	s := MustBuild(t, TwoTriangles)
	bad := []int{-1, 6, 100}
	for _, h := range bad {
		_, err := s.Next(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.Previous(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.FirstNode(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.LastNode(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.TriangleOf(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.IsBoundary(h)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
	}
	for _, tr := range []int{-1, 2} {
		_, err := s.TriangleHalfEdges(tr)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
		_, err = s.TriangleNodeValues(tr)
		require.ErrorIs(t, err, simplicial2.ErrIndexOutOfRange)
	}
}

func TestNavigate_TriangleCorners(t *testing.T) {
	s := MustBuild(t, TwoTriangles)

	hs, err := s.TriangleHalfEdges(1)
	require.NoError(t, err)
	require.Equal(t, [3]int{3, 4, 5}, hs)

	vals, err := s.TriangleNodeValues(1)
	require.NoError(t, err)
	require.Equal(t, [3]int{1, 0, 3}, vals)

	for i, h := range hs {
		first, err := s.FirstNode(h)
		require.NoError(t, err)
		require.Equal(t, vals[i], first)
		last, err := s.LastNode(h)
		require.NoError(t, err)
		require.Equal(t, vals[(i+1)%3], last)
	}
}

func TestNavigate_NodeHalfEdgesMatchesScanOracle(t *testing.T) {
	BothModes(t, func(t *testing.T, opts ...simplicial2.Option) {
		s := MustBuild(t, Grid(3, 4), opts...)
		for _, n := range s.NodeValues() {
			got := s.NodeHalfEdges(n)
			require.Equal(t, ScanOutgoing(t, s, n), got, "node %d", n)
			for _, h := range got {
				first, err := s.FirstNode(h)
				require.NoError(t, err)
				require.Equal(t, n, first)
			}
		}
		require.Empty(t, s.NodeHalfEdges(9999))
	})
}

func TestNavigate_NodeHalfEdgesReturnsCopy(t *testing.T) {
	s := MustBuild(t, Tetrahedron, simplicial2.WithNodeHalfEdges())
	hs := s.NodeHalfEdges(0)
	require.NotEmpty(t, hs)
	hs[0] = -42
	require.NotEqual(t, -42, s.NodeHalfEdges(0)[0])
}
