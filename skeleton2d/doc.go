// Package skeleton2d stores a planar skeleton: vertices carrying a position
// in R² and a radius, joined by undirected edges.
//
// Adjacency is symmetric: InsertEdge(a, b) makes b a neighbour of a and a a
// neighbour of b. Neighbour lists keep insertion order. Self-edges and
// repeated edges are rejected, so the skeleton is always a simple graph.
//
// Indices are stable; nothing is ever removed. Positions use gonum's
// spatial/r2 vectors.
package skeleton2d
