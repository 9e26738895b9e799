// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// impl_platonic.go - PlatonicSolid(name): closed, consistently oriented shells.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Cube, Icosahedron}; Cube faces are
//     split into two triangles each.
//   • Unknown name → ErrOptionViolation.
//   • Faces are emitted in the stable order of variants_platonic.go.
//   • Every result is closed (no boundary) with Euler characteristic 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// PlatonicSolid returns a Constructor that builds the chosen solid's surface.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		faces, ok := platonicFaceSets[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		return emit(s, cfg, MethodPlatonicSolid, faces)
	}
}
