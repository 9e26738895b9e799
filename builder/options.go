// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: shuffling happens only via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithNodeScheme sets the node value generator: local index -> node value.
// Panics on nil.
func WithNodeScheme(fn NodeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nodeFn = fn
	}
}

// WithNodeOffset shifts every node value by k. Panics if k < 0.
func WithNodeOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithNodeOffset(k<0)")
	}
	return func(c *builderConfig) {
		c.offset = k
	}
}

// WithFlippedWinding reverses the orientation of every emitted triangle
// ((a,b,c) becomes (a,c,b)). The resulting complex has the same shape with
// every half-edge reversed.
func WithFlippedWinding() BuilderOption {
	return func(c *builderConfig) {
		c.flip = true
	}
}

// WithRand inserts each constructor's triangles in an order drawn from r.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
// Topology does not depend on insertion order; triangle and half-edge
// indices do.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
