// SPDX-License-Identifier: MIT
// Package core_test verifies the public contracts of core.Graph: node and
// edge lifecycle, canonical ordering, range queries, replacement, value
// semantics, the cursor, and the text dump. Structural invariants of the
// backing tree are covered in-package by tree_test.go.

package core_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/core"
)

// mustAddEdge inserts an edge whose endpoints are known to be present and
// fails the test on any other outcome.
func mustAddEdge[N, E cmp.Ordered](t *testing.T, g *core.Graph[N, E], src, dst N, w E) {
	t.Helper()
	added, err := g.AddEdge(src, dst, w)
	require.NoError(t, err)
	require.True(t, added, "edge (%v, %v, %v) already present", src, dst, w)
}

// flightGraph is the shared query fixture: four cities, parallel edges and
// a self-loop, weights chosen so no two sort ties occur.
//
//	AMS→BER: 40, 55   AMS→CDG: 35   BER→AMS: 44   BER→BER: 9   CDG→AMS: 31
func flightGraph(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.NewFromNodes[string, int]("AMS", "BER", "CDG", "DUB")
	mustAddEdge(t, g, "AMS", "BER", 40)
	mustAddEdge(t, g, "AMS", "BER", 55)
	mustAddEdge(t, g, "AMS", "CDG", 35)
	mustAddEdge(t, g, "BER", "AMS", 44)
	mustAddEdge(t, g, "BER", "BER", 9)
	mustAddEdge(t, g, "CDG", "AMS", 31)

	return g
}

// walkForward collects the Begin→End cursor walk as value triples.
func walkForward[N, E cmp.Ordered](g *core.Graph[N, E]) []core.Edge[N, E] {
	var out []core.Edge[N, E]
	for it := g.Begin(); it != g.End(); it = it.Next() {
		out = append(out, it.Edge())
	}

	return out
}

// walkBackward collects the reverse walk, starting at End.Prev.
func walkBackward[N, E cmp.Ordered](g *core.Graph[N, E]) []core.Edge[N, E] {
	var out []core.Edge[N, E]
	it := g.End()
	for it.Prev() != it {
		it = it.Prev()
		out = append(out, it.Edge())
	}

	return out
}
