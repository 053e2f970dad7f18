// Package core provides a generic, value-semantic directed weighted
// multigraph: unique nodes of any ordered type N, edges labeled by any
// ordered weight type E, and one canonical order over everything.
//
// The Graph G = (V, E) keeps two ordered stores:
//
//   - Nodes, unique by value, ascending.
//   - Edges, unique by the full (src, dst, weight) triple, ascending
//     lexicographically — so parallel edges between one ordered pair differ
//     by weight, and self-loops are ordinary edges.
//
// Every read that yields a sequence — Nodes(), Edges(), Weights(),
// Connections(), the Iterator walk, the String() dump — follows those
// orders, so all results are deterministic for a fixed graph state.
//
// Why use core.Graph?
//
//   - Value semantics end to end: Equal compares contents, Clone detaches
//     them, Move transfers them; node and edge identity never leaks.
//   - Endpoint sharing: an edge references its endpoints' single resident
//     slots, so renaming a node (ReplaceNode, MergeReplaceNode) re-points
//     edges without touching their weights.
//   - A real bidirectional cursor: Begin/End with positional equality,
//     stable across insertions and across Move.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(v N) bool                    // O(log V)
//	HasNode(v N) bool                    // O(log V)
//	RemoveNode(v N) bool                 // O(E): cascades to incident edges
//	ReplaceNode(old, new N) (bool, error)// O(E): rename, edges follow
//	MergeReplaceNode(old, new N) error   // O(E): redirect + deduplicate
//
//	// Edge lifecycle
//	AddEdge(src, dst N, w E) (bool, error)   // O(log E); never creates nodes
//	RemoveEdge(src, dst N, w E) (bool, error)// O(log E)
//	RemoveEdgeAt(it Iterator) Iterator       // O(log E); returns successor
//	RemoveEdgeRange(from, to Iterator) Iterator
//
//	// Query
//	Find(src, dst N, w E) Iterator       // O(log E)
//	Weights(src, dst N) ([]E, error)     // O(log E + matches), ascending
//	IsConnected(src, dst N) (bool, error)// O(log E)
//	Connections(src N) ([]N, error)      // O(log E + out-degree), deduplicated
//	Nodes() []N, Edges() []Edge          // ascending snapshots
//	Empty(), NodeCount(), EdgeCount()    // O(1)
//
//	// Value semantics
//	Clone() *Graph                       // O(V+E) deep copy
//	CopyFrom(src *Graph)                 // assignment; self/equal no-op
//	Move() *Graph, MoveFrom(src *Graph)  // O(1) ownership transfer
//	Equal(other *Graph) bool             // O(V+E)
//	Clear()                              // O(1)
//
//	// Diagnostics
//	String() string                      // the stable text dump
//	Stats() GraphStats                   // shape + memory footprint
//
// Errors: operations whose preconditions name nodes report ErrNodeNotFound
// (wrapped with fixed per-operation context) when a named node is absent,
// and leave the graph unchanged. Expected outcomes of normal use —
// duplicate inserts, a missing edge to remove — are boolean results.
//
// The container performs no internal locking and assumes exclusive access
// during mutation; guard it externally when sharing across goroutines.
package core
