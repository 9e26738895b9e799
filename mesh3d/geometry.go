// SPDX-License-Identifier: MIT
// File: geometry.go
// Role: per-face and whole-mesh measures on top of gonum/spatial/r3.

package mesh3d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FaceNormal returns the unnormalised normal (b-a)×(c-a) of face f. Its
// direction follows the face winding; its length is twice the face area.
func (m *Mesh3D) FaceNormal(f int) (r3.Vec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.faceNormal(f)
}

// FaceArea returns the area of face f.
func (m *Mesh3D) FaceArea(f int) (float64, error) {
	n, err := m.FaceNormal(f)
	if err != nil {
		return 0, err
	}

	return r3.Norm(n) / 2, nil
}

// SurfaceArea returns the sum of all face areas.
func (m *Mesh3D) SurfaceArea() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total float64
	for f := range m.faces {
		n, _ := m.faceNormal(f)
		total += r3.Norm(n) / 2
	}

	return total
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh yields the zero box and false.
func (m *Mesh3D) Bounds() (r3.Box, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.vertices) == 0 {
		return r3.Box{}, false
	}
	lo, hi := m.vertices[0], m.vertices[0]
	for _, p := range m.vertices[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	return r3.Box{Min: lo, Max: hi}, true
}

func (m *Mesh3D) faceNormal(f int) (r3.Vec, error) {
	if f < 0 || f >= len(m.faces) {
		return r3.Vec{}, fmt.Errorf("%w: face %d (have %d)", ErrIndexOutOfRange, f, len(m.faces))
	}
	face := m.faces[f]
	a, b, c := m.vertices[face[0]], m.vertices[face[1]], m.vertices[face[2]]

	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), nil
}
