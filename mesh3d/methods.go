// SPDX-License-Identifier: MIT
// File: methods.go
// Role: element access and insertion.

package mesh3d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// NbVertices returns the number of vertices.
func (m *Mesh3D) NbVertices() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vertices)
}

// NbFaces returns the number of faces.
func (m *Mesh3D) NbFaces() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.faces)
}

// Vertex returns the position of vertex i.
func (m *Mesh3D) Vertex(i int) (r3.Vec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.vertices) {
		return r3.Vec{}, fmt.Errorf("%w: vertex %d (have %d)", ErrIndexOutOfRange, i, len(m.vertices))
	}

	return m.vertices[i], nil
}

// Vertices returns a copy of all positions in index order.
func (m *Mesh3D) Vertices() []r3.Vec {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]r3.Vec{}, m.vertices...)
}

// Face returns the vertex indices of face f.
func (m *Mesh3D) Face(f int) ([3]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if f < 0 || f >= len(m.faces) {
		return [3]int{}, fmt.Errorf("%w: face %d (have %d)", ErrIndexOutOfRange, f, len(m.faces))
	}

	return m.faces[f], nil
}

// Faces returns a copy of all faces in index order.
func (m *Mesh3D) Faces() [][3]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([][3]int{}, m.faces...)
}

// InsertVertex appends a vertex and returns its index.
func (m *Mesh3D) InsertVertex(p r3.Vec) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vertices = append(m.vertices, p)

	return len(m.vertices) - 1
}

// InsertFace appends a face over existing vertices and returns its index.
// Faces must reference allocated vertices and three distinct indices.
// Orientation and manifoldness are not checked here; see ToSimplicial2.
func (m *Mesh3D) InsertFace(f [3]int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkFace(f); err != nil {
		return -1, err
	}
	m.faces = append(m.faces, f)

	return len(m.faces) - 1, nil
}

// checkFace validates f against the current vertex count. Caller holds the lock.
func (m *Mesh3D) checkFace(f [3]int) error {
	for _, v := range f {
		if v < 0 || v >= len(m.vertices) {
			return fmt.Errorf("%w: face %v references vertex %d (have %d)",
				ErrIndexOutOfRange, f, v, len(m.vertices))
		}
	}
	if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
		return fmt.Errorf("%w: %v", ErrDegenerateFace, f)
	}

	return nil
}
