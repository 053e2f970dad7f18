// SPDX-License-Identifier: MIT

// Package builder assembles core graphs from composable, deterministic
// constructors.
//
// One orchestrator — Build — creates (or reuses) a core.Graph, resolves the
// functional options into an immutable configuration, and applies the given
// constructors in order. Factories return Constructor closures:
//
//	Nodes(vals...)            — insert node values
//	Edges(triples...)         — insert triples, endpoints first
//	Path(w, hops...)          — hop[0]→hop[1]→…→hop[k-1]
//	Cycle(w, ring...)         — a Path plus the closing edge
//	Star(w, hub, leaves...)   — hub→leaf for every leaf
//	Clique(w, vals...)        — every ordered pair, no self-loops
//
// Weights come from a WeightFunc per factory; a nil WeightFunc falls back to
// the configuration default (WithDefaultWeight). ConstWeight covers the
// common fixed-label case.
//
// Determinism: the same constructor order, arguments, and options always
// produce value-equal graphs (core keys everything by value, and no factory
// draws randomness).
//
// Errors are package sentinels (ErrNilConstructor, ErrNoNodes,
// ErrTooManyNodes, ErrNilWeightFunc), wrapped with constructor context;
// branch with errors.Is. Core precondition failures pass through wrapped,
// so errors.Is(err, core.ErrNodeNotFound) keeps working.
package builder
