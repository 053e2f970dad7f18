// replace.go — node replacement: the rename form and the merge form.
//
// Both share one mechanism: every edge referencing the old node slot is
// unlinked from the edge tree, re-pointed at the surviving slot, and
// reinserted. The reference swap changes the edge's ordering key, so an
// in-place pointer write would corrupt the tree order; unlink-reinsert is
// mandatory. Reinsertion deduplicates: a re-pointed edge equal to a resident
// triple is dropped. Edge weights are never copied or touched.

package core

import "fmt"

// ReplaceNode renames node oldVal to newVal. oldVal must be a current node;
// ErrNodeNotFound otherwise. When newVal is already a node the graph is left
// unchanged and ReplaceNode returns false; otherwise newVal is inserted,
// every edge referencing oldVal follows it, and ReplaceNode returns true.
// Iterators to the affected edges are invalidated.
// Complexity: O(E + affected · log E)
func (g *Graph[N, E]) ReplaceNode(oldVal, newVal N) (bool, error) {
	on := g.findNode(oldVal)
	if on == nil {
		return false, fmt.Errorf("core: ReplaceNode: old is not a node: %w", ErrNodeNotFound)
	}
	if g.findNode(newVal) != nil {
		return false, nil
	}
	nn, _ := g.nodes.insertNode(&tnode[N]{item: newVal})
	g.mergeSlots(on, nn)
	return true, nil
}

// MergeReplaceNode redirects every edge endpoint referencing oldVal to
// newVal and drops oldVal from the node store. Edges that become value-equal
// to a resident edge collapse to one — the only way the edge count can
// shrink without an explicit removal. Both values must be current nodes;
// ErrNodeNotFound otherwise. Merging a node into itself is a no-op.
// Iterators to the affected edges are invalidated.
// Complexity: O(E + affected · log E)
func (g *Graph[N, E]) MergeReplaceNode(oldVal, newVal N) error {
	on, nn := g.findNode(oldVal), g.findNode(newVal)
	if on == nil || nn == nil {
		return fmt.Errorf("core: MergeReplaceNode: old or new is not a node: %w", ErrNodeNotFound)
	}
	if on == nn {
		return nil
	}
	g.mergeSlots(on, nn)
	return nil
}

// mergeSlots re-points every edge referencing the from slot at the to slot
// and removes from out of the node store. Affected edges are collected
// first, then each is unlinked, re-pointed, and reinserted; an equal
// resident wins and the re-pointed slot is dropped.
func (g *Graph[N, E]) mergeSlots(from, to *tnode[N]) {
	var affected []*tnode[edgeRec[N, E]]
	for e := g.edges.min(); e != nil; e = e.next() {
		if e.item.src == from || e.item.dst == from {
			affected = append(affected, e)
		}
	}
	for _, e := range affected {
		g.edges.remove(e)
		if e.item.src == from {
			e.item.src = to
		}
		if e.item.dst == from {
			e.item.dst = to
		}
		g.edges.insertNode(e)
	}
	g.nodes.remove(from)
}
