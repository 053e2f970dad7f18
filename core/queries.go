// queries.go — connectivity and adjacency lookups over the ordered edge set.
//
// All three queries locate the contiguous block of edges sharing a key
// prefix by descending the edge tree with a partial comparison: because the
// full order is lexicographic on (src, dst, weight), the edges matching a
// (src) or (src, dst) prefix form exactly one block, found with a single
// lower-bound descent and read off by successor steps.

package core

import "fmt"

// Weights returns, in ascending order, the weight of every src→dst edge.
// Both endpoints must be current nodes; ErrNodeNotFound otherwise. Having no
// such edges is an empty result, not an error.
// Complexity: O(log E + matches)
func (g *Graph[N, E]) Weights(src, dst N) ([]E, error) {
	if g.findNode(src) == nil || g.findNode(dst) == nil {
		return nil, fmt.Errorf("core: Weights: src or dst is not a node: %w", ErrNodeNotFound)
	}
	key := byPair[N, E](src, dst)
	var out []E
	for e := g.edges.lowerBound(key); e != nil && key(e.item) == 0; e = e.next() {
		out = append(out, e.item.weight)
	}
	return out, nil
}

// IsConnected reports whether at least one src→dst edge exists. Both
// endpoints must be current nodes; ErrNodeNotFound otherwise.
// Complexity: O(log E)
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	if g.findNode(src) == nil || g.findNode(dst) == nil {
		return false, fmt.Errorf("core: IsConnected: src or dst is not a node: %w", ErrNodeNotFound)
	}
	key := byPair[N, E](src, dst)
	e := g.edges.lowerBound(key)
	return e != nil && key(e.item) == 0, nil
}

// Connections returns, ascending and duplicate-free, the destination of
// every outgoing src edge. src must be a current node; ErrNodeNotFound
// otherwise. The src block is ordered by destination, so parallel edges
// collapse by skipping repeats.
// Complexity: O(log E + out-degree)
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	if g.findNode(src) == nil {
		return nil, fmt.Errorf("core: Connections: src is not a node: %w", ErrNodeNotFound)
	}
	key := bySrc[N, E](src)
	var out []N
	for e := g.edges.lowerBound(key); e != nil && key(e.item) == 0; e = e.next() {
		if d := e.item.dst.item; len(out) == 0 || out[len(out)-1] != d {
			out = append(out, d)
		}
	}
	return out, nil
}
