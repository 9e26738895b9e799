// File: iter.go
// Role: Lightweight handles (IterNode2, IterHalfEdge2, IterTriangle2) bound to a
//       container and an index.
// Lifetime:
//   - Handles are values; copying one is free and never copies the container.
//   - Indices are never reused (no removal), so a handle obtained from a
//     container stays valid for that container's lifetime.
//   - A handle observes later insertions on its container. Take handles from
//     Clone() when two readers must agree on the topology behind an index.
//   - A failed lookup returns an unbound handle (no container, index -1).
//     Valid() reports false, navigation yields further unbound handles,
//     Opposite fails with ErrIndexOutOfRange and Value/NodeValues report -1.

package simplicial2

import "fmt"

// IterHalfEdge2 is a handle to one half-edge of a Simplicial2.
type IterHalfEdge2 struct {
	s     *Simplicial2
	index int
}

// IterTriangle2 is a handle to one triangle of a Simplicial2.
type IterTriangle2 struct {
	s     *Simplicial2
	index int
}

// IterNode2 is a handle to a node, anchored on one half-edge originating at it.
// Two IterNode2 values denote the same node iff their Value() are equal.
type IterNode2 struct {
	s        *Simplicial2
	halfedge int
}

// Unbound handles returned by failed lookups.
var (
	noHalfEdge = IterHalfEdge2{index: -1}
	noTriangle = IterTriangle2{index: -1}
	noNode     = IterNode2{halfedge: -1}
)

//–– IterHalfEdge2 ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Valid reports whether the handle is bound to a container.
func (he IterHalfEdge2) Valid() bool { return he.s != nil }

// Index returns the arena index of the half-edge.
func (he IterHalfEdge2) Index() int { return he.index }

// Simplicial returns the container the handle is bound to.
func (he IterHalfEdge2) Simplicial() *Simplicial2 { return he.s }

// FirstNode returns the node at the half-edge's origin.
func (he IterHalfEdge2) FirstNode() IterNode2 {
	if he.s == nil {
		return noNode
	}
	return IterNode2{s: he.s, halfedge: he.index}
}

// LastNode returns the node at the half-edge's destination, FirstNode of Next.
func (he IterHalfEdge2) LastNode() IterNode2 {
	if he.s == nil {
		return noNode
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return IterNode2{s: he.s, halfedge: he.s.halfedges[he.index].next}
}

// Next returns the following half-edge around the same triangle.
func (he IterHalfEdge2) Next() IterHalfEdge2 {
	if he.s == nil {
		return noHalfEdge
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return IterHalfEdge2{s: he.s, index: he.s.halfedges[he.index].next}
}

// Previous returns the preceding half-edge around the same triangle.
func (he IterHalfEdge2) Previous() IterHalfEdge2 {
	if he.s == nil {
		return noHalfEdge
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return IterHalfEdge2{s: he.s, index: he.s.previous(he.index)}
}

// Opposite returns the paired half-edge on the neighbouring triangle, or
// ErrUnboundHalfEdge when the half-edge lies on the boundary.
func (he IterHalfEdge2) Opposite() (IterHalfEdge2, error) {
	if he.s == nil {
		return noHalfEdge, fmt.Errorf("%w: unbound halfedge handle", ErrIndexOutOfRange)
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()
	o := he.s.halfedges[he.index].opposite
	if o == NoOpposite {
		return noHalfEdge, fmt.Errorf("%w: halfedge %d", ErrUnboundHalfEdge, he.index)
	}

	return IterHalfEdge2{s: he.s, index: o}, nil
}

// HasOpposite reports whether the half-edge is paired.
func (he IterHalfEdge2) HasOpposite() bool {
	if he.s == nil {
		return false
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return he.s.halfedges[he.index].opposite != NoOpposite
}

// IsBoundary reports whether a bound half-edge is unpaired. Unbound handles
// are not on any boundary.
func (he IterHalfEdge2) IsBoundary() bool { return he.s != nil && !he.HasOpposite() }

// Triangle returns the triangle bounded by the half-edge.
func (he IterHalfEdge2) Triangle() IterTriangle2 {
	if he.s == nil {
		return noTriangle
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return IterTriangle2{s: he.s, index: he.s.halfedges[he.index].triangle}
}

// String renders the half-edge as "HalfEdge(i: a -> b)".
func (he IterHalfEdge2) String() string {
	if he.s == nil {
		return "HalfEdge(unbound)"
	}
	he.s.mu.RLock()
	defer he.s.mu.RUnlock()

	return fmt.Sprintf("HalfEdge(%d: %d -> %d)", he.index, he.s.halfedges[he.index].first, he.s.last(he.index))
}

//–– IterTriangle2 ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Index returns the arena index of the triangle.
func (tri IterTriangle2) Index() int { return tri.index }

// Valid reports whether the handle is bound to a container.
func (tri IterTriangle2) Valid() bool { return tri.s != nil }

// Simplicial returns the container the handle is bound to.
func (tri IterTriangle2) Simplicial() *Simplicial2 { return tri.s }

// Halfedges returns the three bounding half-edges in stored cyclic order.
func (tri IterTriangle2) Halfedges() [3]IterHalfEdge2 {
	if tri.s == nil {
		return [3]IterHalfEdge2{noHalfEdge, noHalfEdge, noHalfEdge}
	}
	tri.s.mu.RLock()
	defer tri.s.mu.RUnlock()
	hs := tri.s.triangles[tri.index].halfedges

	return [3]IterHalfEdge2{
		{s: tri.s, index: hs[0]},
		{s: tri.s, index: hs[1]},
		{s: tri.s, index: hs[2]},
	}
}

// NodeValues returns the origin node values of Halfedges, in the same order.
func (tri IterTriangle2) NodeValues() [3]int {
	if tri.s == nil {
		return [3]int{-1, -1, -1}
	}
	tri.s.mu.RLock()
	defer tri.s.mu.RUnlock()

	return tri.s.nodeValues(tri.index)
}

// Nodes returns a node handle for each corner, in the same order as NodeValues.
func (tri IterTriangle2) Nodes() [3]IterNode2 {
	if tri.s == nil {
		return [3]IterNode2{noNode, noNode, noNode}
	}
	tri.s.mu.RLock()
	defer tri.s.mu.RUnlock()
	hs := tri.s.triangles[tri.index].halfedges

	return [3]IterNode2{
		{s: tri.s, halfedge: hs[0]},
		{s: tri.s, halfedge: hs[1]},
		{s: tri.s, halfedge: hs[2]},
	}
}

// Neighbors returns the triangles across each paired side, in half-edge order.
// Boundary sides contribute nothing, so the result has 0 to 3 entries.
func (tri IterTriangle2) Neighbors() []IterTriangle2 {
	if tri.s == nil {
		return nil
	}
	tri.s.mu.RLock()
	defer tri.s.mu.RUnlock()

	out := make([]IterTriangle2, 0, 3)
	for _, h := range tri.s.triangles[tri.index].halfedges {
		if o := tri.s.halfedges[h].opposite; o != NoOpposite {
			out = append(out, IterTriangle2{s: tri.s, index: tri.s.halfedges[o].triangle})
		}
	}

	return out
}

// String renders the triangle as "Triangle(t: [a b c])".
func (tri IterTriangle2) String() string {
	return fmt.Sprintf("Triangle(%d: %v)", tri.index, tri.NodeValues())
}

//–– IterNode2 ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Valid reports whether the handle is bound to a container.
func (n IterNode2) Valid() bool { return n.s != nil }

// Value returns the node value, or -1 for an unbound handle.
func (n IterNode2) Value() int {
	if n.s == nil {
		return -1
	}
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	return n.s.halfedges[n.halfedge].first
}

// Simplicial returns the container the handle is bound to.
func (n IterNode2) Simplicial() *Simplicial2 { return n.s }

// Halfedges returns every half-edge originating at the node, in insertion order.
// Complexity: O(deg) with WithNodeHalfEdges, O(H) otherwise.
func (n IterNode2) Halfedges() []IterHalfEdge2 {
	if n.s == nil {
		return nil
	}
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	hs := n.s.outgoing(n.s.halfedges[n.halfedge].first)
	out := make([]IterHalfEdge2, len(hs))
	for i, h := range hs {
		out[i] = IterHalfEdge2{s: n.s, index: h}
	}

	return out
}

// Degree returns the number of half-edges originating at the node.
func (n IterNode2) Degree() int {
	if n.s == nil {
		return 0
	}
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	return len(n.s.outgoing(n.s.halfedges[n.halfedge].first))
}

// String renders the node as "Node(v)".
func (n IterNode2) String() string {
	return fmt.Sprintf("Node(%d)", n.Value())
}
