// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// variants_platonic.go - canonical face data for triangulated Platonic solids.
//
// Determinism:
//   • Face lists are literal data; they are part of the public contract
//     (triangle i of a built solid is face i below).
//   • Every face is wound counter-clockwise seen from outside, so each edge
//     appears once in each direction.

package builder

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

// String provides a readable identifier for errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Cube:
		return "Cube"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4
	Octahedron                      // V=6,  E=12, F=8
	Cube                            // V=8,  E=18, F=12 (two triangles per square)
	Icosahedron                     // V=12, E=30, F=20
)

// platonicFaceSets maps each solid to its oriented triangle list.
var platonicFaceSets = map[PlatonicName][][3]int{
	Tetrahedron: {
		{0, 1, 2}, {1, 0, 3}, {2, 1, 3}, {0, 2, 3},
	},

	// Poles 0 (top) and 1 (bottom); equator ring 2-3-4-5.
	Octahedron: {
		{0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 2},
		{1, 3, 2}, {1, 4, 3}, {1, 5, 4}, {1, 2, 5},
	},

	// Bottom ring 0-1-2-3, top ring 4-5-6-7 with 4 above 0.
	// Square (a,b,c,d) is split into (a,b,c) and (a,c,d).
	Cube: {
		{0, 3, 2}, {0, 2, 1}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4},
		{1, 2, 6}, {1, 6, 5},
		{2, 3, 7}, {2, 7, 6},
		{3, 0, 4}, {3, 4, 7},
	},

	// Apex 0, upper ring 1..5, lower ring 6..10 (6 sits between 1 and 2),
	// nadir 11.
	Icosahedron: {
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		{1, 6, 2}, {2, 6, 7},
		{2, 7, 3}, {3, 7, 8},
		{3, 8, 4}, {4, 8, 9},
		{4, 9, 5}, {5, 9, 10},
		{5, 10, 1}, {1, 10, 6},
		{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
	},
}
