package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// queueItem pairs a triangle with its BFS depth.
type queueItem struct {
	tri   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	s       *simplicial2.Simplicial2
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// TriangleBFS runs breadth-first search over triangles starting from start.
// Returns ErrNilComplex or ErrStartTriangleNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error wrapped with the triangle index.
//
// The walk runs on a Clone of s taken at the call, so triangles inserted while
// it runs (from a hook or another goroutine) are not visited.
//
// Complexity: O(T) time and space, plus the O(H) snapshot.
func TriangleBFS(s *simplicial2.Simplicial2, start int, opts ...Option) (*Result, error) {
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

	// Walk a snapshot: hooks or other goroutines may insert into s meanwhile.
	s = s.Clone()
	n := s.NbTriangles()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrStartTriangleNotFound, start, n)
	}

	w := &walker{
		s:       s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks tri visited at depth d and records its parent (-1 for the root).
func (w *walker) enqueue(tri, d, parent int) {
	w.visited[tri] = true
	w.res.Depth[tri] = d
	if parent >= 0 {
		w.res.Parent[tri] = parent
	}
	w.queue = append(w.queue, queueItem{tri: tri, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.tri)
		if err := w.opts.OnVisit(item.tri, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at triangle %d: %w", item.tri, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors crosses every paired side of item.tri, applying the filter
// and MaxDepth, and enqueues unseen neighbours.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	hs, err := w.s.TriangleHalfEdges(item.tri)
	if err != nil {
		return err
	}
	for _, h := range hs {
		nb, ok, err := across(w.s, h)
		if err != nil {
			return err
		}
		if !ok || w.visited[nb] || !w.opts.FilterNeighbor(item.tri, h, nb) {
			continue
		}
		w.enqueue(nb, nextDepth, item.tri)
	}

	return nil
}

// across returns the triangle on the other side of h, or ok == false on the boundary.
func across(s *simplicial2.Simplicial2, h int) (int, bool, error) {
	o, err := s.Opposite(h)
	if errors.Is(err, simplicial2.ErrUnboundHalfEdge) {
		return -1, false, nil
	}
	if err != nil {
		return -1, false, err
	}
	t, err := s.TriangleOf(o)
	if err != nil {
		return -1, false, err
	}

	return t, true, nil
}
