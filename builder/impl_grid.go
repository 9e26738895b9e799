// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// impl_grid.go - Grid(rows, cols): a triangulated square grid.
//
// Canonical model:
//   • Lattice points (r, c) for r∈[0..rows], c∈[0..cols] get local index
//     r*(cols+1)+c (row-major).
//   • Square (r, c) with corners a=(r,c), b=(r,c+1), d=(r+1,c), e=(r+1,c+1)
//     is split along a-e into (a, b, e) and (a, e, d).
//   • Squares are emitted row-major, two triangles each.
//
// Counts: V = (rows+1)(cols+1), F = 2·rows·cols,
// E = rows(cols+1) + cols(rows+1) + rows·cols, boundary half-edges 2(rows+cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// Grid returns a Constructor that builds a rows×cols triangulated grid.
func Grid(rows, cols int) Constructor {
	return func(s *simplicial2.Simplicial2, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewNodes)
		}

		id := func(r, c int) int { return r*(cols+1) + c }
		local := make([][3]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a, b := id(r, c), id(r, c+1)
				d, e := id(r+1, c), id(r+1, c+1)
				local = append(local, [3]int{a, b, e}, [3]int{a, e, d})
			}
		}

		return emit(s, cfg, MethodGrid, local)
	}
}
