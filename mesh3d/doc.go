// Package mesh3d stores an indexed triangle mesh: vertex positions in R³ and
// faces as triples of vertex indices.
//
// Mesh3D is the geometric companion of simplicial2: its faces use vertex
// indices as node values, so ToSimplicial2 yields the half-edge topology of
// the mesh with no extra bookkeeping.
//
// Indices are stable: nothing is ever removed, vertex i and face f stay valid
// once inserted. Positions use gonum's spatial/r3 vectors.
//
// Concurrency: Mesh3D guards its slices with a sync.RWMutex; readers may run
// concurrently with each other and with a single writer.
package mesh3d
