// File: methods_navigate.go
// Role: Index-level navigation over the arenas (next, previous, opposite,
//       origin/destination node values, owning triangle, node fans).
// Determinism:
//   - NodeHalfEdges returns half-edges in insertion order, with or without the node index.
// Concurrency:
//   - Read lock on every exported method; lower-case helpers assume the lock is held.

package simplicial2

import "fmt"

// Next returns the half-edge following h around its triangle.
// Three applications of Next return h.
// Complexity: O(1).
func (s *Simplicial2) Next(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}

	return s.halfedges[h].next, nil
}

// Previous returns the half-edge p with Next(p) == h, i.e. Next(Next(h)).
// Complexity: O(1).
func (s *Simplicial2) Previous(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}

	return s.previous(h), nil
}

// Opposite returns the half-edge paired with h on the neighbouring triangle.
// A boundary half-edge yields ErrUnboundHalfEdge; an unknown index yields
// ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Simplicial2) Opposite(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}
	o := s.halfedges[h].opposite
	if o == NoOpposite {
		return -1, fmt.Errorf("%w: halfedge %d", ErrUnboundHalfEdge, h)
	}

	return o, nil
}

// IsBoundary reports whether h has no opposite.
// Complexity: O(1).
func (s *Simplicial2) IsBoundary(h int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return false, err
	}

	return s.halfedges[h].opposite == NoOpposite, nil
}

// FirstNode returns the origin node value of h.
// Complexity: O(1).
func (s *Simplicial2) FirstNode(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}

	return s.halfedges[h].first, nil
}

// LastNode returns the destination node value of h, FirstNode(Next(h)).
// Complexity: O(1).
func (s *Simplicial2) LastNode(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}

	return s.last(h), nil
}

// TriangleOf returns the index of the triangle bounded by h.
// Complexity: O(1).
func (s *Simplicial2) TriangleOf(h int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkHalfEdge(h); err != nil {
		return -1, err
	}

	return s.halfedges[h].triangle, nil
}

// TriangleHalfEdges returns the three half-edges of triangle t in cyclic order.
// Complexity: O(1).
func (s *Simplicial2) TriangleHalfEdges(t int) ([3]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTriangle(t); err != nil {
		return [3]int{}, err
	}

	return s.triangles[t].halfedges, nil
}

// TriangleNodeValues returns the origin node values of triangle t's half-edges,
// in the same cyclic order as TriangleHalfEdges.
// Complexity: O(1).
func (s *Simplicial2) TriangleNodeValues(t int) ([3]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTriangle(t); err != nil {
		return [3]int{}, err
	}

	return s.nodeValues(t), nil
}

// NodeHalfEdges returns every half-edge whose origin is node value n, in
// insertion order. The result is empty if n does not occur.
//
// Complexity: O(deg(n)) with WithNodeHalfEdges, O(H) otherwise.
func (s *Simplicial2) NodeHalfEdges(n int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.outgoing(n)
}

//–– Lock-free helpers (caller holds s.mu) ––––––––––––––––––––––––––––––––––––

func (s *Simplicial2) checkHalfEdge(h int) error {
	if h < 0 || h >= len(s.halfedges) {
		return fmt.Errorf("%w: halfedge %d (have %d)", ErrIndexOutOfRange, h, len(s.halfedges))
	}

	return nil
}

func (s *Simplicial2) checkTriangle(t int) error {
	if t < 0 || t >= len(s.triangles) {
		return fmt.Errorf("%w: triangle %d (have %d)", ErrIndexOutOfRange, t, len(s.triangles))
	}

	return nil
}

func (s *Simplicial2) previous(h int) int {
	return s.halfedges[s.halfedges[h].next].next
}

func (s *Simplicial2) last(h int) int {
	return s.halfedges[s.halfedges[h].next].first
}

func (s *Simplicial2) nodeValues(t int) [3]int {
	hs := s.triangles[t].halfedges
	return [3]int{s.halfedges[hs[0]].first, s.halfedges[hs[1]].first, s.halfedges[hs[2]].first}
}

// outgoing returns a fresh slice so callers never alias the node index.
func (s *Simplicial2) outgoing(n int) []int {
	if s.registerNodeHalfEdges {
		hs := s.nodeHalfEdges[n]
		out := make([]int, len(hs))
		copy(out, hs)
		return out
	}

	var out []int
	for h := range s.halfedges {
		if s.halfedges[h].first == n {
			out = append(out, h)
		}
	}
	if out == nil {
		out = []int{}
	}

	return out
}
