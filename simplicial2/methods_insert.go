// File: methods_insert.go
// Role: Bulk construction and incremental insertion of triangles.
// Atomicity:
//   - validate() inspects the committed state plus the pending batch and never writes.
//   - commit() runs only after the whole call validated, so a failed call leaves
//     arenas and indices untouched.
// Determinism:
//   - Triangles are committed in input order; triangle t owns half-edges 3t..3t+2
//     and half-edge i of a triangle starts at its i-th node value.

package simplicial2

import "fmt"

// BuildFromTriangleList creates a Simplicial2 from an ordered list of node-value
// triples. Each triple becomes one triangle with half-edges (n0→n1, n1→n2, n2→n0);
// a half-edge is paired with a previously inserted half-edge of reversed endpoints.
//
// Construction is all-or-nothing: on error the partially validated container is
// discarded and nil is returned with an error wrapping ErrTopology or ErrInvalidNode.
//
// Complexity: O(T) expected time and space for T triangles.
func BuildFromTriangleList(triangles [][3]int, opts ...Option) (*Simplicial2, error) {
	// Capacity first so a caller-supplied WithCapacity still wins; the caller's
	// slice is not modified.
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithCapacity(len(triangles)))
	all = append(all, opts...)
	s := New(all...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.insertBatch(methodBuild, triangles); err != nil {
		return nil, err
	}

	return s, nil
}

// InsertTriangle adds one triangle (n0, n1, n2) and returns its index.
//
// Errors (container unchanged on any of them):
//   - ErrInvalidNode if a node value is negative.
//   - ErrDegenerateTriangle if two node values are equal.
//   - ErrNonManifoldEdge if a side of the triangle is already shared by two triangles.
//   - ErrDuplicateHalfEdge if a directed side already exists with the same orientation.
//
// Complexity: O(1) expected.
// Concurrency: write lock.
func (s *Simplicial2) InsertTriangle(n0, n1, n2 int) (int, error) {
	nodes := [3]int{n0, n1, n2}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.validate(nodes, nil); err != nil {
		return -1, fmt.Errorf("%s%v: %w", methodInsertTriangle, nodes, err)
	}

	return s.commit(nodes), nil
}

// InsertTriangles adds a batch of triangles atomically: either every triangle is
// inserted, in order, or none is. Triangles in the batch are validated against
// the container and against the earlier triangles of the same batch.
//
// Complexity: O(len(triangles)) expected.
// Concurrency: write lock.
func (s *Simplicial2) InsertTriangles(triangles [][3]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertBatch(methodInsertTriangles, triangles)
}

// insertBatch validates every triangle before committing any. Caller holds the write lock.
func (s *Simplicial2) insertBatch(method string, triangles [][3]int) error {
	pending := make(map[edgeKey]struct{}, 3*len(triangles))
	for i, nodes := range triangles {
		if err := s.validate(nodes, pending); err != nil {
			return fmt.Errorf("%s: triangle %d %v: %w", method, i, nodes, err)
		}
		for j := 0; j < 3; j++ {
			pending[edgeKey{from: nodes[j], to: nodes[(j+1)%3]}] = struct{}{}
		}
	}

	for _, nodes := range triangles {
		s.commit(nodes)
	}

	return nil
}

// validate reports whether nodes can be inserted on top of the committed state
// plus the directed edges in pending (nil for single insertions). It never writes.
func (s *Simplicial2) validate(nodes [3]int, pending map[edgeKey]struct{}) error {
	for _, n := range nodes {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidNode, n)
		}
	}
	if nodes[0] == nodes[1] || nodes[1] == nodes[2] || nodes[2] == nodes[0] {
		return ErrDegenerateTriangle
	}

	has := func(k edgeKey) bool {
		if _, ok := s.edgeIndex[k]; ok {
			return true
		}
		_, ok := pending[k]
		return ok
	}

	var k edgeKey
	for i := 0; i < 3; i++ {
		k = edgeKey{from: nodes[i], to: nodes[(i+1)%3]}
		if !has(k) {
			continue
		}
		// (a,b) and (b,a) both present means the edge is already glued:
		// a third triangle would need a second opposite.
		if has(edgeKey{from: k.to, to: k.from}) {
			return fmt.Errorf("%w: edge {%d,%d}", ErrNonManifoldEdge, k.from, k.to)
		}
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateHalfEdge, k.from, k.to)
	}

	return nil
}

// commit appends one validated triangle, pairs its half-edges and updates the
// indices. Caller holds the write lock.
func (s *Simplicial2) commit(nodes [3]int) int {
	t := len(s.triangles)
	base := len(s.halfedges)

	for i := 0; i < 3; i++ {
		s.halfedges = append(s.halfedges, halfEdge{
			first:    nodes[i],
			next:     base + (i+1)%3,
			opposite: NoOpposite,
			triangle: t,
		})
	}
	s.triangles = append(s.triangles, triangle{halfedges: [3]int{base, base + 1, base + 2}})

	var (
		h, r int
		from int
		to   int
		ok   bool
	)
	for i := 0; i < 3; i++ {
		h = base + i
		from, to = nodes[i], nodes[(i+1)%3]
		s.edgeIndex[edgeKey{from: from, to: to}] = h
		if r, ok = s.edgeIndex[edgeKey{from: to, to: from}]; ok {
			s.halfedges[h].opposite = r
			s.halfedges[r].opposite = h
		}
		if s.registerNodeHalfEdges {
			s.nodeHalfEdges[from] = append(s.nodeHalfEdges[from], h)
		}
	}

	return t
}
