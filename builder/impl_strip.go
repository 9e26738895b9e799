// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// impl_strip.go - Strip(n): a zig-zag ribbon of n triangles on nodes 0..n+1.
//
// Triangle i uses nodes i, i+1, i+2; odd triangles swap their first two nodes
// so every shared side appears once in each direction:
//
//	1---3---5
//	 \ / \ / \
//	  0---2---4 ...
//
// Counts: V = n+2, E = 2n+1, F = n. The dual graph is the path 0-1-...-(n-1).

package builder

import "github.com/katalvlaran/skeletal/simplicial2"

// Strip returns a Constructor that builds a strip of n triangles (n ≥ 1).
func Strip(n int) Constructor {
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		if err := validateMin(MethodStrip, "n", n, MinStripTriangles); err != nil {
			return err
		}
		local := make([][3]int, 0, n)
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				local = append(local, [3]int{i, i + 1, i + 2})
			} else {
				local = append(local, [3]int{i + 1, i, i + 2})
			}
		}

		return emit(s, cfg, MethodStrip, local)
	}
}
