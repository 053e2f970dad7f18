// SPDX-License-Identifier: MIT
// options.go — functional options for Build.
//
// Option constructors validate eagerly and panic on meaningless inputs;
// constructors and Build itself only ever return errors.

package builder

import "cmp"

// BuildOption customizes Build by mutating the configuration before any
// constructor runs.
type BuildOption[N, E cmp.Ordered] func(*buildConfig[N, E])

// WithDefaultWeight sets the fallback WeightFunc used by every
// edge-producing factory whose own WeightFunc is nil. Panics on nil.
func WithDefaultWeight[N, E cmp.Ordered](fn WeightFunc[N, E]) BuildOption[N, E] {
	if fn == nil {
		panic("builder: WithDefaultWeight(nil)")
	}

	return func(c *buildConfig[N, E]) {
		c.defaultWeight = fn
	}
}

// WithMaxNodes caps the graph's node count, checked after each constructor;
// exceeding it fails the Build with ErrTooManyNodes. Panics on n < 1.
func WithMaxNodes[N, E cmp.Ordered](n int) BuildOption[N, E] {
	if n < 1 {
		panic("builder: WithMaxNodes(n<1)")
	}

	return func(c *buildConfig[N, E]) {
		c.maxNodes = n
	}
}
