// iterator.go — the bidirectional edge cursor.
//
// Iterator is a comparable value: positions are compared with ==. It
// references the edge storage object rather than the Graph wrapper, which is
// what keeps cursors alive across Move and MoveFrom — the storage travels to
// the adopting graph, and the cursors follow it.

package core

import "cmp"

// Iterator is a bidirectional cursor over a graph's edges in ascending
// (src, dst, weight) order. Equality is positional: two iterators are equal
// iff they designate the same storage slot (or are both End of the same
// storage), however they were obtained. The zero Iterator is a detached
// sentinel that equals other zero Iterators and no valid position.
//
// An Iterator stays valid until the edge it points at is removed or
// relocated by a node removal, replacement, or merge; insertions never
// invalidate it.
type Iterator[N, E cmp.Ordered] struct {
	edges *tree[edgeRec[N, E]]
	cur   *tnode[edgeRec[N, E]]
}

// Begin returns the position of the first (smallest) edge, equal to End when
// the graph has no edges.
// Complexity: O(log E)
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return Iterator[N, E]{edges: g.edges, cur: g.edges.min()}
}

// End returns the one-past-the-last sentinel position. Advancing Begin past
// the final edge reaches a position equal to End.
// Complexity: O(1)
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{edges: g.edges}
}

// Next returns the position one edge after it in ascending order. End and
// the zero Iterator saturate: their Next is themselves.
// Complexity: amortized O(1)
func (it Iterator[N, E]) Next() Iterator[N, E] {
	if it.cur == nil {
		return it
	}
	return Iterator[N, E]{edges: it.edges, cur: it.cur.next()}
}

// Prev returns the position one edge before it: End's Prev is the last
// edge, and the first edge — like the zero Iterator — saturates to itself.
// Complexity: amortized O(1)
func (it Iterator[N, E]) Prev() Iterator[N, E] {
	if it.cur == nil {
		if it.edges == nil {
			return it
		}
		return Iterator[N, E]{edges: it.edges, cur: it.edges.max()}
	}
	if p := it.cur.prev(); p != nil {
		return Iterator[N, E]{edges: it.edges, cur: p}
	}
	return it
}

// Edge returns the (Src, Dst, Weight) value triple at the cursor. It panics
// on End and on the zero Iterator: there is no edge to read there.
// Complexity: O(1)
func (it Iterator[N, E]) Edge() Edge[N, E] {
	if it.cur == nil {
		panic("core: Iterator.Edge: end or zero iterator")
	}
	r := it.cur.item
	return Edge[N, E]{Src: r.src.item, Dst: r.dst.item, Weight: r.weight}
}
