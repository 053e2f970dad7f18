// Package gravl is a generic, value-semantic directed weighted multigraph
// for Go: unique nodes of any ordered type, edges labeled by any ordered
// weight, and one canonical order over everything.
//
// What you get:
//
//   - Core container: insert/remove/replace nodes and edges, merge nodes
//     with duplicate collapse, deep Clone, O(1) Move, value Equal
//   - Deterministic reads: every sequence — nodes, edges, weights,
//     connections, the text dump — comes back in ascending order
//   - A real bidirectional cursor with positional equality, stable across
//     insertions and across ownership transfer
//   - Composable construction: Path, Cycle, Star, Clique and friends via
//     the builder package
//
// Why choose gravl?
//
//   - Value semantics end to end — node and edge identity never leaks
//   - Multigraph by contract: parallel edges differ by weight, self-loops
//     are ordinary edges
//   - Pure Go generics over cmp.Ordered — no reflection on the hot path
//
// Everything is organized under two subpackages:
//
//	core/    — the Graph container, iterator, queries, dump, stats
//	builder/ — deterministic shape constructors composed through Build
//
// Quick ASCII example:
//
//	    hub──a
//	     │   │
//	     └───b
//
//	a Star(hub; a, b) plus one a→b edge.
//
// Runnable walkthroughs live in examples/; see README.md for the full
// feature matrix.
//
//	go get github.com/katalvlaran/gravl
package gravl
