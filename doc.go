// Package skeletal is an in-memory toolkit for oriented triangle complexes
// and the skeletal shapes that live alongside them.
//
// What is inside:
//
//	simplicial2/ - Simplicial2: index-based half-edge structure for oriented
//	               2-simplicial complexes (insertion, navigation, lookup,
//	               handles, invariant checks).
//	traverse/    - BFS/DFS over triangles through opposite pairs,
//	               edge-connected components, boundary loops.
//	builder/     - deterministic generators: fans, strips, grids, Platonic
//	               solids, composed through functional options.
//	mesh3d/      - indexed triangle mesh with R³ positions; converts to
//	               Simplicial2.
//	skeleton2d/  - planar skeleton: positioned vertices with radii and
//	               symmetric adjacency.
//
// Quick ASCII example:
//
//	2───────3
//	│ \  1  │
//	│  \    │      triangles (0,1,2) and (1,3,2) share the side 1-2:
//	│ 0 \   │      half-edge 1→2 of triangle 0 is opposite 2→1 of triangle 1.
//	│    \  │
//	0───────1
//
// Everything is thread-safe for concurrent readers with a single writer, and
// every failure is a sentinel error checked with errors.Is.
package skeletal
