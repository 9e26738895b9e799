// Package builder provides deterministic, composable generators of
// triangulations on top of simplicial2.
//
// A Constructor emits a list of triangles over constructor-local indices.
// Build resolves the BuilderOptions once and applies every Constructor in
// order to one fresh simplicial2.Simplicial2:
//
//   - Topologies:
//     – Triangles(list):      caller-supplied local triangles.
//     – Fan(n), Wheel(n):     open and closed fans around hub 0.
//     – Strip(n):             zig-zag ribbon whose dual graph is a path.
//     – Grid(rows, cols):     triangulated square grid (diagonal a-e).
//     – PlatonicSolid(name):  closed shells (Tetrahedron, Octahedron, Cube, Icosahedron).
//   - Node schemes (NodeFn): IdentityNodeFn, StrideNodeFn, TableNodeFn.
//   - Options: WithNodeScheme, WithNodeOffset, WithFlippedWinding, WithSeed, WithRand.
//
// Guarantees:
//
//   - Each constructor inserts its triangles in one InsertTriangles call, so a
//     failing constructor leaves the complex as the previous one left it.
//   - Constructors share the node space; a later constructor glues onto an
//     earlier one through equal node values.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewNodes, ErrOptionViolation, ErrConstructFailed).
//   - Without WithSeed/WithRand, triangle i of each constructor is emitted in
//     the documented canonical order.
package builder
