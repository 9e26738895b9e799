// File: methods_clone.go
// Role: Deep copies for snapshot handles.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package simplicial2

// Clone returns a deep copy of s: configuration, arenas and both indices.
// Handles taken from the clone keep observing the same topology even if s is
// mutated afterwards.
//
// Complexity: O(H + T).
func (s *Simplicial2) Clone() *Simplicial2 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := &Simplicial2{
		registerNodeHalfEdges: s.registerNodeHalfEdges,
		capacity:              s.capacity,
		halfedges:             make([]halfEdge, len(s.halfedges)),
		triangles:             make([]triangle, len(s.triangles)),
		edgeIndex:             make(map[edgeKey]int, len(s.edgeIndex)),
	}
	copy(c.halfedges, s.halfedges)
	copy(c.triangles, s.triangles)
	for k, h := range s.edgeIndex {
		c.edgeIndex[k] = h
	}
	if s.registerNodeHalfEdges {
		c.nodeHalfEdges = make(map[int][]int, len(s.nodeHalfEdges))
		for n, hs := range s.nodeHalfEdges {
			c.nodeHalfEdges[n] = append([]int(nil), hs...)
		}
	}

	return c
}
