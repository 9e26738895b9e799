// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// impl_fan.go - Fan(n) and Wheel(n): triangles sharing the hub node 0.
//
// Layout:
//   • Fan(n):   triangles (0, i, i+1) for i = 1..n. Open disc, rim nodes 1..n+1.
//   • Wheel(n): triangles (0, i, i%n+1) for i = 1..n. Closed fan: every spoke
//     is interior and the rim 1..n is the only boundary loop.
//
// Counts:
//   • Fan(n):   V = n+2, E = 2n+1, F = n, boundary half-edges n+2.
//   • Wheel(n): V = n+1, E = 2n,   F = n, boundary half-edges n.

package builder

import "github.com/katalvlaran/skeletal/simplicial2"

// Fan returns a Constructor that builds an open fan of n triangles (n ≥ 1).
func Fan(n int) Constructor {
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		if err := validateMin(MethodFan, "n", n, MinFanTriangles); err != nil {
			return err
		}
		local := make([][3]int, 0, n)
		for i := 1; i <= n; i++ {
			local = append(local, [3]int{0, i, i + 1})
		}

		return emit(s, cfg, MethodFan, local)
	}
}

// Wheel returns a Constructor that builds a closed fan of n triangles (n ≥ 3).
func Wheel(n int) Constructor {
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelTriangles); err != nil {
			return err
		}
		local := make([][3]int, 0, n)
		for i := 1; i <= n; i++ {
			local = append(local, [3]int{0, i, i%n + 1})
		}

		return emit(s, cfg, MethodWheel, local)
	}
}
