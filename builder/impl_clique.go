// SPDX-License-Identifier: MIT
// impl_clique.go — the Clique(w, vals...) constructor.
//
// Contract:
//   - At least two values (else ErrNoNodes).
//   - Over k distinct values: k nodes and k·(k−1) edges — every ordered
//     pair (u, v) with u ≠ v, no self-loops.
//   - Weight policy as in Path.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodClique   = "Clique"
	minCliqueNodes = 2
)

// Clique returns a Constructor connecting every ordered pair of values.
// Complexity: O(len(vals)² · log E).
func Clique[N, E cmp.Ordered](w WeightFunc[N, E], vals ...N) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg buildConfig[N, E]) error {
		if len(vals) < minCliqueNodes {
			return fmt.Errorf("%s: got %d values, need at least %d: %w",
				methodClique, len(vals), minCliqueNodes, ErrNoNodes)
		}
		wf, err := cfg.resolveWeight(w)
		if err != nil {
			return fmt.Errorf("%s: %w", methodClique, err)
		}

		for _, v := range vals {
			g.AddNode(v)
		}
		for _, u := range vals {
			for _, v := range vals {
				if u == v {
					continue
				}
				if _, err = g.AddEdge(u, v, wf(u, v)); err != nil {
					return fmt.Errorf("%s: AddEdge(%v→%v): %w", methodClique, u, v, err)
				}
			}
		}

		return nil
	}
}
