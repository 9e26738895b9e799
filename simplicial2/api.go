// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: configuration flag, arena sizes, summary snapshot,
//       node catalogue, boundary listing and triangle-list export.
// Determinism:
//   - NodeValues is sorted ascending; BoundaryHalfEdges and TriangleList follow
//     arena index order.

package simplicial2

import "sort"

// Stats is a read-only snapshot of a Simplicial2.
type Stats struct {
	NodeHalfEdges bool // node index enabled

	NodeCount             int // distinct node values
	HalfEdgeCount         int
	TriangleCount         int
	EdgeCount             int // undirected edges: paired half-edges count once
	BoundaryHalfEdgeCount int

	// EulerCharacteristic is V - E + F (2 for a closed sphere, 1 for a disk).
	EulerCharacteristic int
}

// NodeHalfEdgesRegistered reports whether the node → half-edges index is
// maintained. It is fixed at construction.
// Complexity: O(1).
func (s *Simplicial2) NodeHalfEdgesRegistered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.registerNodeHalfEdges
}

// NbHalfEdges returns the number of allocated half-edges.
// Complexity: O(1).
func (s *Simplicial2) NbHalfEdges() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.halfedges)
}

// NbTriangles returns the number of allocated triangles.
// Complexity: O(1).
func (s *Simplicial2) NbTriangles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.triangles)
}

// NodeValues returns the distinct node values in ascending order.
// Complexity: O(H + V log V).
func (s *Simplicial2) NodeValues() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedNodes()
}

// BoundaryHalfEdges returns every half-edge without an opposite, by index.
// Complexity: O(H).
func (s *Simplicial2) BoundaryHalfEdges() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []int{}
	for h := range s.halfedges {
		if s.halfedges[h].opposite == NoOpposite {
			out = append(out, h)
		}
	}

	return out
}

// IsClosed reports whether every half-edge is paired. An empty complex is closed.
// Complexity: O(H).
func (s *Simplicial2) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for h := range s.halfedges {
		if s.halfedges[h].opposite == NoOpposite {
			return false
		}
	}

	return true
}

// TriangleList exports the node values of every triangle in index order.
// Feeding it back to BuildFromTriangleList reproduces the same arenas.
// Complexity: O(T).
func (s *Simplicial2) TriangleList() [][3]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][3]int, len(s.triangles))
	for t := range s.triangles {
		out[t] = s.nodeValues(t)
	}

	return out
}

// Stats produces a summary snapshot under a single read lock.
// Complexity: O(H + V).
func (s *Simplicial2) Stats() *Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		NodeHalfEdges: s.registerNodeHalfEdges,
		HalfEdgeCount: len(s.halfedges),
		TriangleCount: len(s.triangles),
		NodeCount:     len(s.sortedNodes()),
	}
	for h := range s.halfedges {
		if s.halfedges[h].opposite == NoOpposite {
			st.BoundaryHalfEdgeCount++
		}
	}
	// paired half-edges come in twos; each boundary half-edge is its own edge.
	st.EdgeCount = (st.HalfEdgeCount + st.BoundaryHalfEdgeCount) / 2
	st.EulerCharacteristic = st.NodeCount - st.EdgeCount + st.TriangleCount

	return &st
}

func (s *Simplicial2) sortedNodes() []int {
	if s.registerNodeHalfEdges {
		out := make([]int, 0, len(s.nodeHalfEdges))
		for n := range s.nodeHalfEdges {
			out = append(out, n)
		}
		sort.Ints(out)
		return out
	}

	seen := make(map[int]struct{})
	out := []int{}
	for h := range s.halfedges {
		n := s.halfedges[h].first
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}
