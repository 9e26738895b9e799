package traverse

import (
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// dfsWalker encapsulates state during a triangle DFS.
type dfsWalker struct {
	s       *simplicial2.Simplicial2
	opts    Options
	visited []bool
	res     *Result
}

// TriangleDFS performs depth-first search over triangles from start, crossing
// paired sides in stored half-edge order. OnVisit runs in pre-order, OnExit
// in post-order; Result.Order records discovery and Result.Finish completion.
//
// Errors and the snapshot rule mirror TriangleBFS. On a hook error the
// partial Result is returned together with the wrapped error.
//
// Complexity: O(T) time; recursion depth is bounded by the tree depth.
func TriangleDFS(s *simplicial2.Simplicial2, start int, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s = s.Clone()
	n := s.NbTriangles()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrStartTriangleNotFound, start, n)
	}

	w := &dfsWalker{
		s:       s,
		opts:    o,
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Finish: make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	return w.res, w.traverse(start, 0)
}

// traverse visits tri at depth, then recurses into unvisited neighbours.
func (w *dfsWalker) traverse(tri, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[tri] = true
	w.res.Depth[tri] = depth
	w.res.Order = append(w.res.Order, tri)
	if err := w.opts.OnVisit(tri, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at triangle %d: %w", tri, err)
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		hs, err := w.s.TriangleHalfEdges(tri)
		if err != nil {
			return err
		}
		for _, h := range hs {
			nb, ok, err := across(w.s, h)
			if err != nil {
				return err
			}
			// visited is rechecked per side: a deeper branch may have reached nb.
			if !ok || w.visited[nb] || !w.opts.FilterNeighbor(tri, h, nb) {
				continue
			}
			w.res.Parent[nb] = tri
			if err = w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.opts.OnExit(tri, depth); err != nil {
		return fmt.Errorf("traverse: OnExit error at triangle %d: %w", tri, err)
	}
	w.res.Finish = append(w.res.Finish, tri)

	return nil
}
