// edges.go — edge-store operations: insertion, the three removal forms,
// exact lookup, and the ascending snapshot.

package core

import "fmt"

// AddEdge inserts the directed edge (src, dst, w). Both endpoints must
// already be nodes — AddEdge never creates nodes — and a missing endpoint is
// reported as ErrNodeNotFound. Inserting a triple that already exists
// returns false without mutation; parallel src→dst edges with distinct
// weights accumulate.
// Complexity: O(log E)
func (g *Graph[N, E]) AddEdge(src, dst N, w E) (bool, error) {
	sn, dn := g.findNode(src), g.findNode(dst)
	if sn == nil || dn == nil {
		return false, fmt.Errorf("core: AddEdge: src or dst is not a node: %w", ErrNodeNotFound)
	}
	return g.insertEdge(sn, dn, w), nil
}

// RemoveEdge removes the exact (src, dst, w) edge. Both endpoints must be
// current nodes even when the edge itself is absent; a missing edge is a
// false return, not an error.
// Complexity: O(log E)
func (g *Graph[N, E]) RemoveEdge(src, dst N, w E) (bool, error) {
	if g.findNode(src) == nil || g.findNode(dst) == nil {
		return false, fmt.Errorf("core: RemoveEdge: src or dst is not a node: %w", ErrNodeNotFound)
	}
	e := g.edges.lookup(byTriple(src, dst, w))
	if e == nil {
		return false, nil
	}
	g.edges.remove(e)
	return true, nil
}

// RemoveEdgeAt removes the edge it points at and returns the iterator to the
// next edge in ascending order, or End. it must be a dereferenceable
// iterator of this graph: End, the zero Iterator, and iterators of other
// graphs panic. Only iterators at the removed edge are invalidated.
// Complexity: O(log E)
func (g *Graph[N, E]) RemoveEdgeAt(it Iterator[N, E]) Iterator[N, E] {
	if it.edges != g.edges {
		panic("core: RemoveEdgeAt: iterator does not belong to this graph")
	}
	if it.cur == nil {
		panic("core: RemoveEdgeAt: end iterator")
	}
	succ := it.cur.next()
	g.edges.remove(it.cur)
	return Iterator[N, E]{edges: g.edges, cur: succ}
}

// RemoveEdgeRange removes every edge in the half-open range [from, to),
// which must be a valid ascending range of this graph, and returns to's
// position — the first edge after the removed range, or End.
// Complexity: O(removed · log E)
func (g *Graph[N, E]) RemoveEdgeRange(from, to Iterator[N, E]) Iterator[N, E] {
	if from.edges != g.edges || to.edges != g.edges {
		panic("core: RemoveEdgeRange: iterator does not belong to this graph")
	}
	for cur := from.cur; cur != nil && cur != to.cur; {
		succ := cur.next()
		g.edges.remove(cur)
		cur = succ
	}
	return to
}

// Find returns the iterator positioned at the exact (src, dst, w) edge, or
// End when no such edge exists — including when src or dst is not a node.
// Complexity: O(log E)
func (g *Graph[N, E]) Find(src, dst N, w E) Iterator[N, E] {
	return Iterator[N, E]{edges: g.edges, cur: g.edges.lookup(byTriple(src, dst, w))}
}

// Edges returns all edges as value triples in ascending (src, dst, weight)
// order. The slice is a fresh snapshot; mutating it does not affect the
// graph.
// Complexity: O(E)
func (g *Graph[N, E]) Edges() []Edge[N, E] {
	out := make([]Edge[N, E], 0, g.edges.size)
	for e := g.edges.min(); e != nil; e = e.next() {
		out = append(out, Edge[N, E]{Src: e.item.src.item, Dst: e.item.dst.item, Weight: e.item.weight})
	}
	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1)
func (g *Graph[N, E]) EdgeCount() int {
	return g.edges.size
}
