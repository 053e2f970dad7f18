// SPDX-License-Identifier: MIT
// config.go — the immutable configuration Build resolves from its options.

package builder

import "cmp"

// buildConfig carries the resolved option state. It is passed to every
// Constructor by value; constructors never mutate it.
type buildConfig[N, E cmp.Ordered] struct {
	// defaultWeight backs any factory whose own WeightFunc is nil.
	// A nil default means weighted factories must bring their own.
	defaultWeight WeightFunc[N, E]

	// maxNodes caps the node count after each constructor; 0 is unbounded.
	maxNodes int
}

// newBuildConfig applies the options over the zero defaults.
func newBuildConfig[N, E cmp.Ordered](opts ...BuildOption[N, E]) buildConfig[N, E] {
	var cfg buildConfig[N, E]
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveWeight picks the factory's own WeightFunc over the configured
// default; the sentinel surfaces through the factory with its method context.
func (cfg buildConfig[N, E]) resolveWeight(fn WeightFunc[N, E]) (WeightFunc[N, E], error) {
	if fn != nil {
		return fn, nil
	}
	if cfg.defaultWeight != nil {
		return cfg.defaultWeight, nil
	}

	return nil, ErrNilWeightFunc
}
