// SPDX-License-Identifier: MIT
// File: skeleton.go
// Role: the Skeleton2D container, element access and insertion.
// Concurrency: a sync.RWMutex guards all slices; accessors take the read lock.

package skeleton2d

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors.
var (
	// ErrIndexOutOfRange is returned for a vertex index that was never allocated.
	ErrIndexOutOfRange = errors.New("skeleton2d: index out of range")

	// ErrInvalidRadius is returned for a negative, NaN or infinite radius.
	ErrInvalidRadius = errors.New("skeleton2d: invalid radius")

	// ErrInvalidCoords is returned for NaN or infinite coordinates.
	ErrInvalidCoords = errors.New("skeleton2d: invalid coordinates")

	// ErrSelfEdge is returned when both ends of an edge are the same vertex.
	ErrSelfEdge = errors.New("skeleton2d: self edge")

	// ErrDuplicateEdge is returned when the edge already exists.
	ErrDuplicateEdge = errors.New("skeleton2d: duplicate edge")
)

// Skeleton2D is a planar graph with per-vertex radius.
type Skeleton2D struct {
	mu        sync.RWMutex
	coords    []r2.Vec
	radii     []float64
	neighbors [][]int
	nbEdges   int
}

// New returns an empty skeleton.
func New() *Skeleton2D {
	return &Skeleton2D{}
}

// NbVertices returns the number of vertices.
func (s *Skeleton2D) NbVertices() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.coords)
}

// NbEdges returns the number of undirected edges.
func (s *Skeleton2D) NbEdges() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nbEdges
}

// VertexCoords returns the position of vertex i.
func (s *Skeleton2D) VertexCoords(i int) (r2.Vec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(i); err != nil {
		return r2.Vec{}, err
	}

	return s.coords[i], nil
}

// VertexRadius returns the radius of vertex i.
func (s *Skeleton2D) VertexRadius(i int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(i); err != nil {
		return 0, err
	}

	return s.radii[i], nil
}

// Neighbors returns a copy of the neighbours of vertex i in insertion order.
func (s *Skeleton2D) Neighbors(i int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(i); err != nil {
		return nil, err
	}

	return append([]int{}, s.neighbors[i]...), nil
}

// NbNeighbors returns the degree of vertex i.
func (s *Skeleton2D) NbNeighbors(i int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(i); err != nil {
		return 0, err
	}

	return len(s.neighbors[i]), nil
}

// AllCoords returns a copy of every vertex position, indexed by vertex.
func (s *Skeleton2D) AllCoords() []r2.Vec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]r2.Vec{}, s.coords...)
}

// AllRadii returns a copy of every vertex radius, indexed by vertex.
func (s *Skeleton2D) AllRadii() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]float64{}, s.radii...)
}

// AllNeighbors returns a deep copy of the adjacency lists, indexed by vertex.
// An isolated vertex has an empty, non-nil list.
func (s *Skeleton2D) AllNeighbors() [][]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]int, len(s.neighbors))
	for v, nbs := range s.neighbors {
		out[v] = append([]int{}, nbs...)
	}

	return out
}

// InsertVertex appends a vertex and returns its index.
// The radius must be finite and non-negative; coordinates must be finite.
func (s *Skeleton2D) InsertVertex(p r2.Vec, radius float64) (int, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return -1, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if !finite(p.X) || !finite(p.Y) {
		return -1, fmt.Errorf("%w: %v", ErrInvalidCoords, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coords = append(s.coords, p)
	s.radii = append(s.radii, radius)
	s.neighbors = append(s.neighbors, nil)

	return len(s.coords) - 1, nil
}

// InsertEdge joins v1 and v2. On error the skeleton is unchanged.
func (s *Skeleton2D) InsertEdge(v1, v2 int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(v1); err != nil {
		return err
	}
	if err := s.check(v2); err != nil {
		return err
	}
	if v1 == v2 {
		return fmt.Errorf("%w: %d", ErrSelfEdge, v1)
	}
	if s.adjacent(v1, v2) {
		return fmt.Errorf("%w: {%d, %d}", ErrDuplicateEdge, v1, v2)
	}
	s.neighbors[v1] = append(s.neighbors[v1], v2)
	s.neighbors[v2] = append(s.neighbors[v2], v1)
	s.nbEdges++

	return nil
}

// HasEdge reports whether v1 and v2 are joined. Unknown indices are never joined.
func (s *Skeleton2D) HasEdge(v1, v2 int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.check(v1) != nil || s.check(v2) != nil {
		return false
	}

	return s.adjacent(v1, v2)
}

// Edges lists every edge once as {lo, hi}, ordered by lo, then by the
// insertion order of hi in lo's neighbour list.
func (s *Skeleton2D) Edges() [][2]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][2]int, 0, s.nbEdges)
	for v, nbs := range s.neighbors {
		for _, w := range nbs {
			if v < w {
				out = append(out, [2]int{v, w})
			}
		}
	}

	return out
}

// EdgeLength returns the Euclidean distance between the centres of v1 and v2.
// The vertices need not be joined.
func (s *Skeleton2D) EdgeLength(v1, v2 int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check(v1); err != nil {
		return 0, err
	}
	if err := s.check(v2); err != nil {
		return 0, err
	}

	return r2.Norm(r2.Sub(s.coords[v2], s.coords[v1])), nil
}

// adjacent scans the shorter neighbour list. Caller holds the lock.
func (s *Skeleton2D) adjacent(v1, v2 int) bool {
	a, b := v1, v2
	if len(s.neighbors[b]) < len(s.neighbors[a]) {
		a, b = b, a
	}
	for _, w := range s.neighbors[a] {
		if w == b {
			return true
		}
	}

	return false
}

func (s *Skeleton2D) check(i int) error {
	if i < 0 || i >= len(s.coords) {
		return fmt.Errorf("%w: vertex %d (have %d)", ErrIndexOutOfRange, i, len(s.coords))
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
