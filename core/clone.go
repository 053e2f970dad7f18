// clone.go — deep copy, assignment, ownership transfer, equality, Clear.

package core

// Clone returns a deep copy: fresh node slots, fresh edge records, nothing
// shared with the receiver. Mutating either graph never affects the other.
// Both stores are rebuilt height-balanced from their ordered walks.
// Complexity: O(V + E)
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := New[N, E]()

	remap := make(map[*tnode[N]]*tnode[N], g.nodes.size)
	slots := make([]*tnode[N], 0, g.nodes.size)
	for n := g.nodes.min(); n != nil; n = n.next() {
		c := &tnode[N]{item: n.item}
		remap[n] = c
		slots = append(slots, c)
	}
	out.nodes.buildFrom(slots)

	recs := make([]*tnode[edgeRec[N, E]], 0, g.edges.size)
	for e := g.edges.min(); e != nil; e = e.next() {
		recs = append(recs, &tnode[edgeRec[N, E]]{item: edgeRec[N, E]{
			src:    remap[e.item.src],
			dst:    remap[e.item.dst],
			weight: e.item.weight,
		}})
	}
	out.edges.buildFrom(recs)
	return out
}

// CopyFrom replaces the receiver's contents with a deep copy of src, which
// must not be nil. Self-assignment and assignment from a value-equal graph
// are detected and do nothing, leaving the receiver's storage — and
// iterators into it — untouched. Otherwise the receiver adopts fresh
// storage and iterators into its previous contents no longer relate to it.
// Complexity: O(V + E)
func (g *Graph[N, E]) CopyFrom(src *Graph[N, E]) {
	if src == nil {
		panic("core: CopyFrom: nil source")
	}
	if g == src || g.Equal(src) {
		return
	}
	c := src.Clone()
	g.nodes, g.edges = c.nodes, c.edges
}

// Move returns a new graph owning the receiver's storage, leaving the
// receiver empty and valid as if freshly constructed. Iterators obtained
// before the move keep designating the same edges and compare equal to the
// returned graph's positions, End included.
// Complexity: O(1)
func (g *Graph[N, E]) Move() *Graph[N, E] {
	out := &Graph[N, E]{nodes: g.nodes, edges: g.edges}
	g.nodes, g.edges = newStores[N, E]()
	return out
}

// MoveFrom discards the receiver's contents and adopts src's storage; src
// must not be nil and is left empty and valid. Iterators into src's old
// contents follow the storage to the receiver. Self-move does nothing.
// Complexity: O(1)
func (g *Graph[N, E]) MoveFrom(src *Graph[N, E]) {
	if src == nil {
		panic("core: MoveFrom: nil source")
	}
	if g == src {
		return
	}
	g.nodes, g.edges = src.nodes, src.edges
	src.nodes, src.edges = newStores[N, E]()
}

// Equal reports value equality: equal node and edge counts with pairwise
// equal ascending node and edge sequences. Storage identity never
// participates; a nil argument is unequal to everything.
// Complexity: O(V + E), short-circuiting on the counts
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}
	if g.nodes.size != other.nodes.size || g.edges.size != other.edges.size {
		return false
	}
	for a, b := g.nodes.min(), other.nodes.min(); a != nil; a, b = a.next(), b.next() {
		if a.item != b.item {
			return false
		}
	}
	for a, b := g.edges.min(), other.edges.min(); a != nil; a, b = a.next(), b.next() {
		if a.item.src.item != b.item.src.item ||
			a.item.dst.item != b.item.dst.item ||
			a.item.weight != b.item.weight {
			return false
		}
	}
	return true
}

// Clear removes every node and edge wholesale. All iterators except End are
// invalidated; End positions taken before Clear stay equal to End positions
// taken after.
// Complexity: O(1) beyond garbage collection
func (g *Graph[N, E]) Clear() {
	g.nodes.clear()
	g.edges.clear()
}
