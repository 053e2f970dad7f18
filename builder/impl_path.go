// SPDX-License-Identifier: MIT
// impl_path.go — the Path(w, hops...) constructor.
//
// Contract:
//   - At least two hops (else ErrNoNodes).
//   - Over k distinct hops: k nodes and k−1 edges hop[i−1]→hop[i].
//   - Weight policy: w, or the configured default when w is nil
//     (ErrNilWeightFunc when neither exists).

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodPath  = "Path"
	minPathHops = 2
)

// Path returns a Constructor chaining the hops in argument order.
// Complexity: O(len(hops) · log E).
func Path[N, E cmp.Ordered](w WeightFunc[N, E], hops ...N) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg buildConfig[N, E]) error {
		if len(hops) < minPathHops {
			return fmt.Errorf("%s: got %d hops, need at least %d: %w",
				methodPath, len(hops), minPathHops, ErrNoNodes)
		}
		wf, err := cfg.resolveWeight(w)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}

		for _, v := range hops {
			g.AddNode(v)
		}
		for i := 1; i < len(hops); i++ {
			u, v := hops[i-1], hops[i]
			if _, err = g.AddEdge(u, v, wf(u, v)); err != nil {
				return fmt.Errorf("%s: AddEdge(%v→%v): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
