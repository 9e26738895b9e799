// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Arena records, the Simplicial2 container, options, sentinel errors, New.
// Concurrency:
//   - One sync.RWMutex guards arenas and indices. Mutations take the write lock,
//     every query and handle method takes the read lock.

package simplicial2

import (
	"errors"
	"fmt"
	"sync"
)

// NoOpposite marks a boundary half-edge in the arena.
const NoOpposite = -1

// Sentinel errors for simplicial2 operations.
var (
	// ErrIndexOutOfRange indicates a half-edge or triangle index that is not allocated.
	ErrIndexOutOfRange = errors.New("simplicial2: index out of range")

	// ErrTopology is the parent of every insertion rejected for breaking the
	// oriented 2-manifold invariants.
	ErrTopology = errors.New("simplicial2: topology violation")

	// ErrDegenerateTriangle indicates a triangle with two or more equal node values.
	ErrDegenerateTriangle = fmt.Errorf("%w: degenerate triangle", ErrTopology)

	// ErrDuplicateHalfEdge indicates a directed edge that already exists with the
	// same orientation (inconsistent winding with a neighbour).
	ErrDuplicateHalfEdge = fmt.Errorf("%w: duplicate oriented edge", ErrTopology)

	// ErrNonManifoldEdge indicates an edge that is already shared by two triangles.
	ErrNonManifoldEdge = fmt.Errorf("%w: edge already shared by two triangles", ErrTopology)

	// ErrUnboundHalfEdge indicates an opposite was requested on a boundary half-edge.
	ErrUnboundHalfEdge = errors.New("simplicial2: halfedge has no opposite")

	// ErrInvalidNode indicates a negative node value.
	ErrInvalidNode = errors.New("simplicial2: node value must be non-negative")

	// ErrCorrupted indicates CheckInvariants found a broken structural invariant.
	ErrCorrupted = errors.New("simplicial2: invariant violated")
)

// Method tags used as error context prefixes.
const (
	methodBuild           = "BuildFromTriangleList"
	methodInsertTriangle  = "InsertTriangle"
	methodInsertTriangles = "InsertTriangles"
)

// halfEdge is one directed side of a triangle.
type halfEdge struct {
	first    int // origin node value
	next     int // next half-edge around the same triangle
	opposite int // paired half-edge on the neighbouring triangle, or NoOpposite
	triangle int // owning triangle
}

// triangle holds its three half-edges in cyclic order.
type triangle struct {
	halfedges [3]int
}

// edgeKey is an ordered (origin, destination) pair of node values.
type edgeKey struct {
	from, to int
}

// Option configures a Simplicial2 before creation.
type Option func(s *Simplicial2)

// WithNodeHalfEdges enables the node value → outgoing half-edges index.
func WithNodeHalfEdges() Option {
	return func(s *Simplicial2) { s.registerNodeHalfEdges = true }
}

// WithCapacity preallocates room for n triangles. Panics on negative n.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("simplicial2: WithCapacity(n<0)")
	}
	return func(s *Simplicial2) { s.capacity = n }
}

// Simplicial2 is an oriented simplicial 2-complex stored as half-edge arenas.
//
// halfedges[3t], halfedges[3t+1], halfedges[3t+2] are not assumed to belong to
// triangle t; triangles record their half-edges explicitly.
type Simplicial2 struct {
	mu sync.RWMutex

	// Configuration flags
	registerNodeHalfEdges bool
	capacity              int

	// Arenas
	halfedges []halfEdge
	triangles []triangle

	// edgeIndex[(from,to)] = half-edge index. Kept permanently: it serves
	// pairing on insertion and FindHalfEdge/FindTriangle.
	edgeIndex map[edgeKey]int

	// nodeHalfEdges[node] = outgoing half-edges in insertion order.
	// nil unless registerNodeHalfEdges.
	nodeHalfEdges map[int][]int
}

// New creates an empty Simplicial2 configured by opts.
// Complexity: O(capacity) for preallocation.
func New(opts ...Option) *Simplicial2 {
	s := &Simplicial2{}
	for _, opt := range opts {
		opt(s)
	}

	s.halfedges = make([]halfEdge, 0, 3*s.capacity)
	s.triangles = make([]triangle, 0, s.capacity)
	s.edgeIndex = make(map[edgeKey]int, 3*s.capacity)
	if s.registerNodeHalfEdges {
		s.nodeHalfEdges = make(map[int][]int)
	}

	return s
}
