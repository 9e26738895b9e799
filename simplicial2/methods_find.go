// File: methods_find.go
// Role: Bounds-checked accessors and value-based lookups returning handles.
// Determinism:
//   - FindNode anchors on the lowest-index outgoing half-edge in both indexing modes.
// Concurrency:
//   - Read lock only.

package simplicial2

// GetHalfEdgeFromIndex returns a handle to half-edge i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Simplicial2) GetHalfEdgeFromIndex(i int) (IterHalfEdge2, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(i); err != nil {
		return noHalfEdge, err
	}

	return IterHalfEdge2{s: s, index: i}, nil
}

// GetTriangleFromIndex returns a handle to triangle i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Simplicial2) GetTriangleFromIndex(i int) (IterTriangle2, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTriangle(i); err != nil {
		return noTriangle, err
	}

	return IterTriangle2{s: s, index: i}, nil
}

// FindNode returns a handle to node value n if some half-edge originates at it.
// Complexity: O(1) with WithNodeHalfEdges, O(H) otherwise.
func (s *Simplicial2) FindNode(n int) (IterNode2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.registerNodeHalfEdges {
		hs := s.nodeHalfEdges[n]
		if len(hs) == 0 {
			return noNode, false
		}
		return IterNode2{s: s, halfedge: hs[0]}, true
	}
	for h := range s.halfedges {
		if s.halfedges[h].first == n {
			return IterNode2{s: s, halfedge: h}, true
		}
	}

	return noNode, false
}

// FindHalfEdge returns the half-edge directed exactly from n0 to n1.
// Complexity: O(1) expected (directed-edge index).
func (s *Simplicial2) FindHalfEdge(n0, n1 int) (IterHalfEdge2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.edgeIndex[edgeKey{from: n0, to: n1}]
	if !ok {
		return noHalfEdge, false
	}

	return IterHalfEdge2{s: s, index: h}, true
}

// FindTriangle returns the triangle whose node values equal (n0, n1, n2) up to
// a cyclic rotation. Orientation matters: (n0, n2, n1) is a different face.
//
// The half-edge n0→n1 is unique, so its triangle is the only candidate; it
// matches iff its third corner is n2.
// Complexity: O(1) expected.
func (s *Simplicial2) FindTriangle(n0, n1, n2 int) (IterTriangle2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.edgeIndex[edgeKey{from: n0, to: n1}]
	if !ok {
		return noTriangle, false
	}
	if s.last(s.halfedges[h].next) != n2 {
		return noTriangle, false
	}

	return IterTriangle2{s: s, index: s.halfedges[h].triangle}, true
}
