// SPDX-License-Identifier: MIT
// api.go — the public entry point: the Constructor type and the Build
// orchestrator. Factories are declared in impl_*.go, one shape per file.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Constructor applies one deterministic mutation step to a graph under the
// resolved configuration. Constructors validate their parameters first and
// return sentinel errors; they never panic.
type Constructor[N, E cmp.Ordered] func(g *core.Graph[N, E], cfg buildConfig[N, E]) error

// Build resolves opts into a configuration and applies the constructors to g
// in order, returning g. A nil g starts from core.New. The first failure
// wins: its error is wrapped with "builder: Build" context and the graph is
// returned as mutated so far (constructors themselves are atomic, Build is
// not). A WithMaxNodes cap is checked after every constructor.
//
// Complexity: O(len(opts)) resolution plus the sum of constructor costs.
func Build[N, E cmp.Ordered](g *core.Graph[N, E], opts []BuildOption[N, E], cons ...Constructor[N, E]) (*core.Graph[N, E], error) {
	if g == nil {
		g = core.New[N, E]()
	}
	cfg := newBuildConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return g, fmt.Errorf("builder: Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return g, fmt.Errorf("builder: Build: %w", err)
		}
		if cfg.maxNodes > 0 && g.NodeCount() > cfg.maxNodes {
			return g, fmt.Errorf("builder: Build: constructor %d grew the graph to %d nodes, cap %d: %w",
				i, g.NodeCount(), cfg.maxNodes, ErrTooManyNodes)
		}
	}

	return g, nil
}
