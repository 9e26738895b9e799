// SPDX-License-Identifier: MIT
// File: types.go
// Role: sentinel errors and the Mesh3D container.

package mesh3d

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors.
var (
	// ErrIndexOutOfRange is returned for a vertex or face index that was never allocated.
	ErrIndexOutOfRange = errors.New("mesh3d: index out of range")

	// ErrDegenerateFace is returned when a face repeats a vertex index.
	ErrDegenerateFace = errors.New("mesh3d: degenerate face")
)

// Mesh3D is an indexed triangle mesh.
type Mesh3D struct {
	mu       sync.RWMutex
	vertices []r3.Vec
	faces    [][3]int
}

// New returns an empty mesh.
func New() *Mesh3D {
	return &Mesh3D{}
}

// FromArrays builds a mesh from vertex positions and faces. All faces are
// validated before any is stored; on error nil is returned.
func FromArrays(vertices []r3.Vec, faces [][3]int) (*Mesh3D, error) {
	m := &Mesh3D{
		vertices: append([]r3.Vec(nil), vertices...),
		faces:    make([][3]int, 0, len(faces)),
	}
	for _, f := range faces {
		if err := m.checkFace(f); err != nil {
			return nil, err
		}
		m.faces = append(m.faces, f)
	}

	return m, nil
}
