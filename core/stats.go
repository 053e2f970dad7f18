// SPDX-License-Identifier: MIT
// stats.go — diagnostic snapshot of a graph's shape and memory footprint.

package core

import (
	"fmt"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"
)

// GraphStats is a deterministic, read-only summary of a graph's shape plus
// its deep in-memory footprint. Obtain one with Stats.
type GraphStats struct {
	// Nodes and Edges are the store sizes.
	Nodes int
	Edges int

	// SelfLoops counts edges whose source and destination are the same node.
	SelfLoops int

	// DistinctPairs counts distinct ordered (src, dst) pairs carrying at
	// least one edge; Edges minus DistinctPairs is the parallel-edge surplus.
	DistinctPairs int

	// MaxOutDegree is the largest number of outgoing edges on any node.
	MaxOutDegree int

	// Bytes is the deep in-memory footprint of the container, or -1 when it
	// could not be measured.
	Bytes int
}

// Stats walks the edge store once and measures the container's footprint.
// Deterministic for a fixed graph state.
// Complexity: O(V + E) plus the reflective footprint scan.
func (g *Graph[N, E]) Stats() GraphStats {
	st := GraphStats{
		Nodes: g.nodes.size,
		Edges: g.edges.size,
		Bytes: size.Of(g),
	}
	var (
		runSrc  *tnode[N] // current source run
		runDeg  int
		pairSrc *tnode[N] // current (src, dst) run
		pairDst *tnode[N]
	)
	for e := g.edges.min(); e != nil; e = e.next() {
		r := e.item
		if r.src == r.dst {
			st.SelfLoops++
		}
		if r.src != pairSrc || r.dst != pairDst {
			st.DistinctPairs++
			pairSrc, pairDst = r.src, r.dst
		}
		if r.src != runSrc {
			runSrc, runDeg = r.src, 0
		}
		runDeg++
		if runDeg > st.MaxOutDegree {
			st.MaxOutDegree = runDeg
		}
	}
	return st
}

// String renders a compact one-line summary with a humanized footprint,
// e.g. "nodes=92 edges=334 loops=0 pairs=334 maxout=22 mem=41 kB".
func (s GraphStats) String() string {
	mem := "n/a"
	if s.Bytes >= 0 {
		mem = humanize.Bytes(uint64(s.Bytes))
	}
	return fmt.Sprintf("nodes=%d edges=%d loops=%d pairs=%d maxout=%d mem=%s",
		s.Nodes, s.Edges, s.SelfLoops, s.DistinctPairs, s.MaxOutDegree, mem)
}
