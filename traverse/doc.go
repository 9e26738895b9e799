// Package traverse walks the triangles of a simplicial2.Simplicial2 through
// its opposite pairs (the dual graph), and its boundary through node fans.
//
// Two triangles are adjacent iff one of them owns a half-edge whose opposite
// belongs to the other. TriangleBFS and TriangleDFS explore this adjacency
// with hooks, depth limiting and crossing filters; Components partitions all
// triangles into edge-connected pieces; BoundaryLoops chains boundary
// half-edges into closed cycles.
//
// Determinism: neighbours are expanded in the stored half-edge order of each
// triangle, so visit order is reproducible for a given insertion order.
package traverse
