// SPDX-License-Identifier: MIT
// impl_nodes.go — the Nodes(vals...) constructor.
//
// Contract:
//   - At least one value (else ErrNoNodes).
//   - Values are inserted in argument order; duplicates collapse in core.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodNodes   = "Nodes"
	minNodeValues = 1
)

// Nodes returns a Constructor inserting each value as a node.
// Complexity: O(len(vals) · log V).
func Nodes[N, E cmp.Ordered](vals ...N) Constructor[N, E] {
	return func(g *core.Graph[N, E], _ buildConfig[N, E]) error {
		if len(vals) < minNodeValues {
			return fmt.Errorf("%s: got %d values, need at least %d: %w",
				methodNodes, len(vals), minNodeValues, ErrNoNodes)
		}
		for _, v := range vals {
			g.AddNode(v)
		}

		return nil
	}
}
