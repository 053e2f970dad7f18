// SPDX-License-Identifier: MIT
// impl_edges.go — the Edges(triples...) constructor.
//
// Contract:
//   - At least one triple (else ErrNoNodes).
//   - Triples apply in argument order; per triple the source node is
//     inserted first, then the destination, then the edge — so endpoints
//     always exist when the edge lands and core never rejects it.
//   - Duplicate nodes and duplicate triples collapse in core.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

const (
	methodEdges    = "Edges"
	minEdgeTriples = 1
)

// Edges returns a Constructor inserting the given (Src, Dst, Weight)
// triples, creating their endpoints as needed. Weights come from the
// triples themselves, so no WeightFunc participates.
// Complexity: O(len(list) · log E).
func Edges[N, E cmp.Ordered](list ...core.Edge[N, E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], _ buildConfig[N, E]) error {
		if len(list) < minEdgeTriples {
			return fmt.Errorf("%s: got %d triples, need at least %d: %w",
				methodEdges, len(list), minEdgeTriples, ErrNoNodes)
		}
		for _, e := range list {
			g.AddNode(e.Src)
			g.AddNode(e.Dst)
			if _, err := g.AddEdge(e.Src, e.Dst, e.Weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%v→%v): %w", methodEdges, e.Src, e.Dst, err)
			}
		}

		return nil
	}
}
