// SPDX-License-Identifier: MIT
// impl_cycle.go — the Cycle(w, ring...) constructor.
//
// Contract:
//   - At least three ring values (else ErrNoNodes): anything shorter is a
//     Path or a self-loop, not a cycle.
//   - Over k distinct values: k nodes and k edges, the Path chain plus the
//     closing edge ring[k−1]→ring[0].
//   - Weight policy as in Path.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor closing the ring in argument order.
// Complexity: O(len(ring) · log E).
func Cycle[N, E cmp.Ordered](w WeightFunc[N, E], ring ...N) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg buildConfig[N, E]) error {
		if len(ring) < minCycleNodes {
			return fmt.Errorf("%s: got %d values, need at least %d: %w",
				methodCycle, len(ring), minCycleNodes, ErrNoNodes)
		}
		wf, err := cfg.resolveWeight(w)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		for _, v := range ring {
			g.AddNode(v)
		}
		for i := range ring {
			u, v := ring[i], ring[(i+1)%len(ring)]
			if _, err = g.AddEdge(u, v, wf(u, v)); err != nil {
				return fmt.Errorf("%s: AddEdge(%v→%v): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
