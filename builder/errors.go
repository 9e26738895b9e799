// SPDX-License-Identifier: MIT
// Package: skeletal/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid parameter value that is not a size,
// such as an unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates that the generated triangles could not be
// inserted (topology conflict with earlier constructors, negative node
// values) or that a nil constructor was passed to Build. The simplicial2
// cause is wrapped alongside.
var ErrConstructFailed = errors.New("builder: construction failed")
