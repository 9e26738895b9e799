// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(sopts, bopts, cons...). Creates s, resolves cfg, runs cons in order.
//   - Constructors only produce local triangle lists; emit() maps, orients, orders
//     and inserts them in one atomic InsertTriangles call.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical complexes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skeletal/simplicial2"
)

// Constructor applies a deterministic mutation to s using the resolved
// builderConfig. Constructors validate their parameters before touching s and
// return sentinel errors; they never panic.
type Constructor func(s *simplicial2.Simplicial2, cfg builderConfig) error

// Build creates a new Simplicial2 with options sopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned with a nil
// complex.
//
// Constructors share one node space: local index i of every constructor maps
// to the same node value, so later constructors can glue onto earlier ones.
func Build(sopts []simplicial2.Option, bopts []BuilderOption, cons ...Constructor) (*simplicial2.Simplicial2, error) {
	s := simplicial2.New(sopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// emit maps local triangles through cfg and inserts them as one batch.
// On failure s is unchanged and the error wraps both ErrConstructFailed and
// the simplicial2 sentinel.
func emit(s *simplicial2.Simplicial2, cfg builderConfig, method string, local [][3]int) error {
	tris := make([][3]int, len(local))
	for i, t := range local {
		a, b, c := cfg.node(t[0]), cfg.node(t[1]), cfg.node(t[2])
		if cfg.flip {
			b, c = c, b
		}
		tris[i] = [3]int{a, b, c}
	}
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(tris), func(i, j int) { tris[i], tris[j] = tris[j], tris[i] })
	}
	if err := s.InsertTriangles(tris); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
