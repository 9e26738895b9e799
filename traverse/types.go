// File: types.go
// Role: options, sentinel errors and the BFS Result for triangle walks.

package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrStartTriangleNotFound is returned when the start index is not allocated.
	ErrStartTriangleNotFound = errors.New("traverse: start triangle not found")

	// ErrNilComplex is returned if a nil complex pointer is passed.
	ErrNilComplex = errors.New("traverse: complex is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrOpenBoundary is returned when a boundary walk does not close into a loop.
	ErrOpenBoundary = errors.New("traverse: boundary walk did not close")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a triangle BFS.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a triangle. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(tri int, depth int) error

	// OnExit is called by TriangleDFS after all descendants of a triangle
	// are finished. TriangleBFS ignores it.
	OnExit func(tri int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can refuse a crossing by returning false.
	// Called with the current triangle, the half-edge crossed and the neighbour.
	FilterNeighbor func(curr, halfedge, neighbor int) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering, no-op
// hooks and context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		OnExit:         func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(tri int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order callback for TriangleDFS.
func WithOnExit(fn func(tri int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips crossings when fn returns false.
func WithFilterNeighbor(fn func(curr, halfedge, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a triangle walk:
//   - Order: triangles visited, in discovery sequence.
//   - Finish: TriangleDFS only; triangles in post-order.
//   - Depth: triangle index → depth in the search tree.
//   - Parent: triangle index → predecessor in the search tree.
//
// For TriangleBFS, Depth is the minimum number of edge crossings from the start.
type Result struct {
	Order  []int
	Finish []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the triangle path from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to triangle %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
