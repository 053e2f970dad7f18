// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never by message text.
//   - Sentinels carry no parameters; constructors attach context via %w.
//   - Constructors return errors, they do not panic; validation panics are
//     confined to option constructors (WithX...).

package builder

import "errors"

// ErrNilConstructor reports a nil Constructor passed to Build.
// Usage: if errors.Is(err, builder.ErrNilConstructor) { /* fix the call */ }.
var ErrNilConstructor = errors.New("builder: nil constructor")

// ErrNoNodes reports a factory invoked with fewer node values than its shape
// needs (Nodes and Star need one, Path two, Cycle three, Clique two).
// Usage: if errors.Is(err, builder.ErrNoNodes) { /* supply more values */ }.
var ErrNoNodes = errors.New("builder: not enough node values")

// ErrTooManyNodes reports that a constructor pushed the node count past the
// WithMaxNodes cap. Build stops at the offending constructor.
// Usage: if errors.Is(err, builder.ErrTooManyNodes) { /* raise the cap */ }.
var ErrTooManyNodes = errors.New("builder: node cap exceeded")

// ErrNilWeightFunc reports an edge-producing factory that has no weight
// source: its own WeightFunc is nil and no WithDefaultWeight was set.
// Usage: if errors.Is(err, builder.ErrNilWeightFunc) { /* pass a WeightFunc */ }.
var ErrNilWeightFunc = errors.New("builder: weight function is nil")
