// SPDX-License-Identifier: MIT

package mesh3d

import "github.com/katalvlaran/skeletal/simplicial2"

// TriangleList returns the faces as a triangle list, ready for
// simplicial2.BuildFromTriangleList.
func (m *Mesh3D) TriangleList() [][3]int {
	return m.Faces()
}

// ToSimplicial2 builds the half-edge topology of the mesh. Vertex indices
// become node values and face f becomes triangle f. Inconsistent orientation
// or edges shared by more than two faces fail with simplicial2.ErrTopology.
func (m *Mesh3D) ToSimplicial2(opts ...simplicial2.Option) (*simplicial2.Simplicial2, error) {
	return simplicial2.BuildFromTriangleList(m.TriangleList(), opts...)
}
