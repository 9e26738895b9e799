// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nodeFn = IdentityNodeFn  (local index i ↦ node value i)
//   • offset = 0
//   • flip   = false           (triangles keep their canonical winding)
//   • rng    = nil             (triangles inserted in canonical order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node value strategy: local index -> node value.
	nodeFn NodeFn
	// Added to every mapped node value.
	offset int
	// Reverse the winding of every emitted triangle.
	flip bool
	// Shuffles insertion order when non-nil.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeFn: IdentityNodeFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// node maps a constructor-local index to the final node value.
func (c builderConfig) node(i int) int {
	return c.nodeFn(i) + c.offset
}
