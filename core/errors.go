// errors.go — the container's error surface.
//
// Policy: package-level sentinels only, branched with errors.Is; failing
// operations attach a fixed operation-specific message via %w wrapping.
// Expected outcomes of normal use — duplicate inserts, a missing edge to
// remove, an already-taken replacement name — are boolean results, never
// errors.

package core

import "errors"

// ErrNodeNotFound is the precondition-violation kind: an operation
// referenced a node value that is not currently in the graph. An operation
// reporting it has not mutated the graph.
//
// Usage: if errors.Is(err, core.ErrNodeNotFound) { /* caller bug */ }.
var ErrNodeNotFound = errors.New("core: node not found")
