// File: invariants.go
// Role: Full structural audit of a Simplicial2.
// Checked, per half-edge h:
//   - Next^3(h) == h and all three lie in h's triangle.
//   - If paired: Opposite(Opposite(h)) == h, FirstNode(Opposite(h)) == LastNode(h),
//     and the two half-edges belong to different triangles.
//   - The directed-edge index maps (FirstNode(h), LastNode(h)) to h.
// Per triangle: three distinct node values, half-edges pointing back to it.
// Per node (when indexed): every listed half-edge originates at the node.

package simplicial2

import "fmt"

// CheckInvariants audits every structural invariant and returns the first
// violation wrapped in ErrCorrupted, or nil. Insertions maintain these
// invariants, so a non-nil result indicates memory corruption or a bug.
//
// Complexity: O(H + T).
func (s *Simplicial2) CheckInvariants() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nh := len(s.halfedges)
	for h, he := range s.halfedges {
		if he.next < 0 || he.next >= nh {
			return fmt.Errorf("%w: halfedge %d: next %d out of range", ErrCorrupted, h, he.next)
		}
		n1 := s.halfedges[he.next]
		if n1.next < 0 || n1.next >= nh || s.halfedges[n1.next].next != h {
			return fmt.Errorf("%w: halfedge %d: next cycle is not of length 3", ErrCorrupted, h)
		}
		if n1.triangle != he.triangle || s.halfedges[n1.next].triangle != he.triangle {
			return fmt.Errorf("%w: halfedge %d: next leaves triangle %d", ErrCorrupted, h, he.triangle)
		}
		if he.triangle < 0 || he.triangle >= len(s.triangles) {
			return fmt.Errorf("%w: halfedge %d: triangle %d out of range", ErrCorrupted, h, he.triangle)
		}

		if o := he.opposite; o != NoOpposite {
			if o < 0 || o >= nh {
				return fmt.Errorf("%w: halfedge %d: opposite %d out of range", ErrCorrupted, h, o)
			}
			if s.halfedges[o].opposite != h {
				return fmt.Errorf("%w: halfedge %d: opposite is not mutual", ErrCorrupted, h)
			}
			if s.halfedges[o].first != s.last(h) || s.last(o) != he.first {
				return fmt.Errorf("%w: halfedge %d: opposite endpoints do not match", ErrCorrupted, h)
			}
			if s.halfedges[o].triangle == he.triangle {
				return fmt.Errorf("%w: halfedge %d: opposite in the same triangle", ErrCorrupted, h)
			}
		}

		if got, ok := s.edgeIndex[edgeKey{from: he.first, to: s.last(h)}]; !ok || got != h {
			return fmt.Errorf("%w: halfedge %d: directed-edge index mismatch", ErrCorrupted, h)
		}
	}
	if len(s.edgeIndex) != nh {
		return fmt.Errorf("%w: directed-edge index has %d entries for %d halfedges", ErrCorrupted, len(s.edgeIndex), nh)
	}

	for t, tri := range s.triangles {
		for _, h := range tri.halfedges {
			if h < 0 || h >= nh || s.halfedges[h].triangle != t {
				return fmt.Errorf("%w: triangle %d: halfedge %d does not point back", ErrCorrupted, t, h)
			}
		}
		if s.halfedges[tri.halfedges[0]].next != tri.halfedges[1] || s.halfedges[tri.halfedges[1]].next != tri.halfedges[2] {
			return fmt.Errorf("%w: triangle %d: halfedges not in cyclic order", ErrCorrupted, t)
		}
		v := s.nodeValues(t)
		if v[0] == v[1] || v[1] == v[2] || v[2] == v[0] {
			return fmt.Errorf("%w: triangle %d: degenerate %v", ErrCorrupted, t, v)
		}
	}

	if s.registerNodeHalfEdges {
		total := 0
		for n, hs := range s.nodeHalfEdges {
			for _, h := range hs {
				if h < 0 || h >= nh || s.halfedges[h].first != n {
					return fmt.Errorf("%w: node %d: halfedge %d does not originate there", ErrCorrupted, n, h)
				}
			}
			total += len(hs)
		}
		if total != nh {
			return fmt.Errorf("%w: node index lists %d halfedges, have %d", ErrCorrupted, total, nh)
		}
	}

	return nil
}
