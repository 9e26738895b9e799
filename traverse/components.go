package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// Components partitions the triangles of s into edge-connected components.
// Components are ordered by their lowest triangle index; each component lists
// its triangles in BFS order from that triangle.
//
// Two triangles touching only at a node are in different components.
// Like BoundaryLoops, it works on a Clone of s taken at the call.
//
// Time:   O(T).
// Memory: O(T) for visited flags and output.
func Components(s *simplicial2.Simplicial2) ([][]int, error) {
	if s == nil {
		return nil, ErrNilComplex
	}
	s = s.Clone()
	n := s.NbTriangles()
	seen := make([]bool, n)
	comps := [][]int{}

	for t0 := 0; t0 < n; t0++ {
		if seen[t0] {
			continue
		}
		queue := []int{t0}
		seen[t0] = true
		for qi := 0; qi < len(queue); qi++ {
			hs, err := s.TriangleHalfEdges(queue[qi])
			if err != nil {
				return nil, err
			}
			for _, h := range hs {
				nb, ok, err := across(s, h)
				if err != nil {
					return nil, err
				}
				if ok && !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}

// BoundaryLoops chains the boundary half-edges of s into closed loops.
// Each loop starts at its lowest-index half-edge and follows the triangle
// orientation: the loop continues at the boundary half-edge leaving the
// previous one's last node, found by rotating around that node.
//
// A node where two boundary loops touch (a "bowtie") is resolved by the
// rotation, which stays inside the fan of the arriving triangle.
// ErrOpenBoundary is returned if a walk revisits a half-edge before closing.
//
// Time: O(H) amortised for manifold boundaries.
func BoundaryLoops(s *simplicial2.Simplicial2) ([][]int, error) {
	if s == nil {
		return nil, ErrNilComplex
	}
	s = s.Clone()
	boundary := s.BoundaryHalfEdges()
	used := make(map[int]bool, len(boundary))
	loops := [][]int{}

	for _, h0 := range boundary {
		if used[h0] {
			continue
		}
		loop := []int{}
		for cur := h0; ; {
			if used[cur] {
				return nil, fmt.Errorf("%w: halfedge %d reached twice", ErrOpenBoundary, cur)
			}
			used[cur] = true
			loop = append(loop, cur)

			nxt, err := nextBoundary(s, cur)
			if err != nil {
				return nil, err
			}
			if nxt == h0 {
				break
			}
			cur = nxt
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

// nextBoundary rotates around LastNode(h) from Next(h) across paired sides
// until it reaches an unpaired outgoing half-edge.
func nextBoundary(s *simplicial2.Simplicial2, h int) (int, error) {
	g, err := s.Next(h)
	if err != nil {
		return -1, err
	}
	for steps := s.NbHalfEdges(); steps > 0; steps-- {
		o, err := s.Opposite(g)
		if errors.Is(err, simplicial2.ErrUnboundHalfEdge) {
			return g, nil
		}
		if err != nil {
			return -1, err
		}
		if g, err = s.Next(o); err != nil {
			return -1, err
		}
	}

	return -1, fmt.Errorf("%w: no boundary around the end of halfedge %d", ErrOpenBoundary, h)
}
