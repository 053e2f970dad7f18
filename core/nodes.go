// nodes.go — node-store operations.

package core

// AddNode inserts v as a node; it reports whether v was newly added.
// Re-inserting a present value is a no-op returning false.
// Complexity: O(log V)
func (g *Graph[N, E]) AddNode(v N) bool {
	_, ok := g.nodes.insertNode(&tnode[N]{item: v})
	return ok
}

// HasNode reports whether v is a current node.
// Complexity: O(log V)
func (g *Graph[N, E]) HasNode(v N) bool {
	return g.findNode(v) != nil
}

// Nodes returns all node values in ascending order. The slice is a fresh
// snapshot; mutating it does not affect the graph.
// Complexity: O(V)
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, 0, g.nodes.size)
	for n := g.nodes.min(); n != nil; n = n.next() {
		out = append(out, n.item)
	}
	return out
}

// RemoveNode removes v together with every edge that has v as source or
// destination. It reports whether v was present; removing an absent node is
// not an error. Iterators to the removed edges are invalidated.
// Complexity: O(E + removed · log E)
func (g *Graph[N, E]) RemoveNode(v N) bool {
	n := g.findNode(v)
	if n == nil {
		return false
	}
	var victims []*tnode[edgeRec[N, E]]
	for e := g.edges.min(); e != nil; e = e.next() {
		if e.item.src == n || e.item.dst == n {
			victims = append(victims, e)
		}
	}
	for _, e := range victims {
		g.edges.remove(e)
	}
	g.nodes.remove(n)
	return true
}

// Empty reports whether the graph has no nodes. Edges cannot exist without
// nodes, so an empty graph has no edges either.
// Complexity: O(1)
func (g *Graph[N, E]) Empty() bool {
	return g.nodes.size == 0
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph[N, E]) NodeCount() int {
	return g.nodes.size
}
