// format.go — the text dump.

package core

import (
	"fmt"
	"strings"
)

// String renders the graph in its stable diagnostic form: one block per node
// in ascending order — the node's %v form, " (", a newline, one
// "  <dst> | <weight>" line per outgoing edge in ascending (destination,
// weight) order, then ")" and a newline. A node without outgoing edges keeps
// its empty block; an empty graph renders as the empty string. External
// tooling may parse this format.
//
// The node walk and the edge walk advance together: edges are ordered by
// source first, so each node's block is the next contiguous run of the edge
// sequence.
// Complexity: O(V + E)
func (g *Graph[N, E]) String() string {
	var b strings.Builder
	e := g.edges.min()
	for n := g.nodes.min(); n != nil; n = n.next() {
		fmt.Fprintf(&b, "%v (\n", n.item)
		for e != nil && e.item.src == n {
			fmt.Fprintf(&b, "  %v | %v\n", e.item.dst.item, e.item.weight)
			e = e.next()
		}
		b.WriteString(")\n")
	}
	return b.String()
}
