// types.go — the container's data model: Graph, the exported Edge view, the
// stored records, and construction.

package core

import "cmp"

// Edge is the read-only value view of one directed edge: the (Src, Dst,
// Weight) triple. Iterator dereference, Edges snapshots, and NewFromEdges
// all speak this type.
type Edge[N, E cmp.Ordered] struct {
	// Src is the source node value.
	Src N

	// Dst is the destination node value.
	Dst N

	// Weight is the edge label; parallel Src→Dst edges differ by it.
	Weight E
}

// edgeRec is the stored edge record: endpoint references into the node store
// plus the owned weight. Endpoints are shared by reference — every edge on a
// node points at the node's one resident slot, so renaming the node never
// touches the weights of its edges.
type edgeRec[N, E cmp.Ordered] struct {
	src    *tnode[N]
	dst    *tnode[N]
	weight E
}

// compareEdgeRecs orders records by (source value, destination value, weight
// value) — the canonical edge order used everywhere: insertion, lookup,
// range queries, and iteration.
func compareEdgeRecs[N, E cmp.Ordered](a, b edgeRec[N, E]) int {
	if c := cmp.Compare(a.src.item, b.src.item); c != 0 {
		return c
	}
	if c := cmp.Compare(a.dst.item, b.dst.item); c != 0 {
		return c
	}
	return cmp.Compare(a.weight, b.weight)
}

// Graph is a directed weighted multigraph over node values of type N and
// edge weights of type E. Nodes are unique by value. Edges are unique by the
// full (src, dst, weight) triple, so parallel edges between one ordered pair
// must differ in weight; self-loops are allowed.
//
// A Graph must be created by New, NewFromNodes, or NewFromEdges; the zero
// value is not ready for use. Copy a graph with Clone — assigning a Graph
// value aliases its internal storage. The container does no internal
// locking: concurrent mutation needs external synchronization.
type Graph[N, E cmp.Ordered] struct {
	nodes *tree[N]
	edges *tree[edgeRec[N, E]]
}

func newStores[N, E cmp.Ordered]() (*tree[N], *tree[edgeRec[N, E]]) {
	return newTree(cmp.Compare[N]), newTree(compareEdgeRecs[N, E])
}

// New creates an empty Graph.
// Complexity: O(1)
func New[N, E cmp.Ordered]() *Graph[N, E] {
	g := &Graph[N, E]{}
	g.nodes, g.edges = newStores[N, E]()
	return g
}

// NewFromNodes creates a Graph holding the given node values, inserted in
// sequence order; duplicate values collapse to one node.
// Complexity: O(len(nodes) · log V)
func NewFromNodes[N, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := New[N, E]()
	for _, v := range nodes {
		g.AddNode(v)
	}
	return g
}

// NewFromEdges creates a Graph from the given triples, applied in sequence
// order: each triple's Src, then its Dst, is inserted as a node, then the
// edge itself. Duplicate nodes and duplicate triples collapse.
// Complexity: O(len(edges) · log E)
func NewFromEdges[N, E cmp.Ordered](edges ...Edge[N, E]) *Graph[N, E] {
	g := New[N, E]()
	for _, e := range edges {
		sn, _ := g.nodes.insertNode(&tnode[N]{item: e.Src})
		dn, _ := g.nodes.insertNode(&tnode[N]{item: e.Dst})
		g.insertEdge(sn, dn, e.Weight)
	}
	return g
}

// findNode resolves a node value to its resident slot, nil when absent.
func (g *Graph[N, E]) findNode(v N) *tnode[N] {
	return g.nodes.lookup(func(item N) int { return cmp.Compare(item, v) })
}

// insertEdge links a record for (sn, dn, w); reports whether it was new.
func (g *Graph[N, E]) insertEdge(sn, dn *tnode[N], w E) bool {
	rec := edgeRec[N, E]{src: sn, dst: dn, weight: w}
	_, ok := g.edges.insertNode(&tnode[edgeRec[N, E]]{item: rec})
	return ok
}

// bySrc compares edge records against a source-only prefix key.
func bySrc[N, E cmp.Ordered](src N) func(edgeRec[N, E]) int {
	return func(r edgeRec[N, E]) int { return cmp.Compare(r.src.item, src) }
}

// byPair compares edge records against a (source, destination) prefix key.
func byPair[N, E cmp.Ordered](src, dst N) func(edgeRec[N, E]) int {
	return func(r edgeRec[N, E]) int {
		if c := cmp.Compare(r.src.item, src); c != 0 {
			return c
		}
		return cmp.Compare(r.dst.item, dst)
	}
}

// byTriple compares edge records against a full (src, dst, weight) key.
func byTriple[N, E cmp.Ordered](src, dst N, w E) func(edgeRec[N, E]) int {
	return func(r edgeRec[N, E]) int {
		if c := cmp.Compare(r.src.item, src); c != 0 {
			return c
		}
		if c := cmp.Compare(r.dst.item, dst); c != 0 {
			return c
		}
		return cmp.Compare(r.weight, w)
	}
}
