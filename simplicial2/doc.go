// Package simplicial2 provides an index-based half-edge representation of an
// oriented, 2-manifold simplicial 2-complex: a set of triangles glued along
// shared edges, with optional boundary.
//
// The complex S = (N, H, T) is stored in two growable arenas:
//
//   - halfedges: one record per directed triangle side, holding its origin node
//     value, the index of the next half-edge around the same triangle, the index
//     of its opposite half-edge (NoOpposite on the boundary) and the owning triangle.
//   - triangles: one record per face, holding its three half-edges in cyclic order.
//
// Relations are integer indices into these arenas, never pointers, so a
// Simplicial2 can be copied, cloned and shared without cyclic ownership.
// No removal operator exists: an index, once returned, stays valid for the
// lifetime of the container.
//
// Node values are caller-supplied non-negative integers. They are labels only;
// they need not be contiguous, and no coordinates are attached to them.
//
// Configuration Options (Option):
//
//	– WithNodeHalfEdges()
//	    Maintains a node value → outgoing half-edges index. Node queries
//	    (FindNode, NodeHalfEdges, IterNode2.Halfedges) become O(1)/O(deg)
//	    instead of O(H) scans. Fixed for the container lifetime.
//
//	– WithCapacity(nTriangles int)
//	    Preallocates arenas and the directed-edge index.
//
// Construction:
//
//	New(opts...) *Simplicial2                                // empty container
//	BuildFromTriangleList(tris, opts...) (*Simplicial2, error) // bulk, all-or-nothing
//	InsertTriangle(n0, n1, n2) (int, error)                  // incremental, atomic
//	InsertTriangles(tris) error                              // batch, atomic
//
// Every insertion validates first and commits second: on error the container
// is exactly as it was before the call. Pairing follows the directed-edge
// index: a new half-edge (a,b) is glued to an existing half-edge (b,a).
//
// Navigation (handles):
//
//	IterHalfEdge2: FirstNode, LastNode, Next, Previous, Opposite, Triangle
//	IterTriangle2: Halfedges, NodeValues, Nodes, Neighbors
//	IterNode2:     Value, Halfedges, Degree
//
// Lookup:
//
//	GetHalfEdgeFromIndex(i), GetTriangleFromIndex(i)  // ErrIndexOutOfRange
//	FindNode(n), FindHalfEdge(n0, n1), FindTriangle(n0, n1, n2)
//	NbHalfEdges(), NbTriangles()
//
// Boundary convention: Opposite on a boundary half-edge returns
// ErrUnboundHalfEdge. It never returns ErrIndexOutOfRange for a valid index,
// so callers can tell "no neighbour" from "no such half-edge".
//
// Handles and mutation: a handle is a container pointer plus an index. It sees
// later insertions made through the same container, so a boundary half-edge
// may gain an opposite and a node may gain half-edges between two calls.
// Take handles from Clone() when a frozen view is required.
//
// Errors:
//
//	ErrIndexOutOfRange    – half-edge or triangle index not allocated
//	ErrTopology           – parent of the three topology errors below
//	ErrDegenerateTriangle – repeated node value inside one triangle
//	ErrDuplicateHalfEdge  – directed edge already present (inconsistent winding)
//	ErrNonManifoldEdge    – edge already shared by two triangles
//	ErrUnboundHalfEdge    – opposite requested on a boundary half-edge
//	ErrInvalidNode        – negative node value
//	ErrCorrupted          – CheckInvariants found a broken invariant
package simplicial2
