// SPDX-License-Identifier: MIT
// impl_star.go — the Star(w, hub, leaves...) constructor.
//
// Contract:
//   - At least one leaf (else ErrNoNodes).
//   - Over a hub and k distinct leaves: 1+k nodes and k edges hub→leaf,
//     applied in argument order.
//   - Weight policy as in Path.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor fanning the hub out to every leaf.
// Complexity: O(len(leaves) · log E).
func Star[N, E cmp.Ordered](w WeightFunc[N, E], hub N, leaves ...N) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg buildConfig[N, E]) error {
		if len(leaves) < minStarLeaves {
			return fmt.Errorf("%s: got %d leaves, need at least %d: %w",
				methodStar, len(leaves), minStarLeaves, ErrNoNodes)
		}
		wf, err := cfg.resolveWeight(w)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}

		g.AddNode(hub)
		for _, leaf := range leaves {
			g.AddNode(leaf)
			if _, err = g.AddEdge(hub, leaf, wf(hub, leaf)); err != nil {
				return fmt.Errorf("%s: AddEdge(%v→%v): %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}
