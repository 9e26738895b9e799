// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// impl_triangles.go - Triangles(list): insert caller-supplied local triangles.
//
// Contract:
//   • Entries are local indices, mapped through the node scheme and offset.
//   • An empty list is a no-op.
//   • Insertion is atomic per call; conflicts surface as ErrConstructFailed
//     wrapping the simplicial2 topology sentinel.

package builder

import "github.com/katalvlaran/skeletal/simplicial2"

// Triangles returns a Constructor inserting a copy of list.
func Triangles(list [][3]int) Constructor {
	local := append([][3]int(nil), list...)
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		if len(local) == 0 {
			return nil
		}

		return emit(s, cfg, MethodTriangles, local)
	}
}
