package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/core"
)

func TestAddEdge_MissingEndpointIsPreconditionError(t *testing.T) {
	g := core.NewFromNodes[int, string](1, 2, 3)

	added, err := g.AddEdge(1, 5, "x")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, added)

	// A rejected operation leaves the graph observably unchanged.
	assert.Equal(t, 3, g.NodeCount(), "AddEdge must never create nodes")
	assert.Zero(t, g.EdgeCount())

	_, err = g.AddEdge(5, 1, "x")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddEdge_DuplicatesParallelsAndLoops(t *testing.T) {
	g := core.NewFromNodes[string, int]("A", "B")

	mustAddEdge(t, g, "A", "B", 1)

	added, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	assert.False(t, added, "exact duplicate triple is a no-op")
	assert.Equal(t, 1, g.EdgeCount())

	mustAddEdge(t, g, "A", "B", 2) // parallel edge, distinct weight
	mustAddEdge(t, g, "A", "A", 3) // self-loop
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRemoveEdge(t *testing.T) {
	g := flightGraph(t)

	removed, err := g.RemoveEdge("AMS", "BER", 40)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 5, g.EdgeCount())

	// The parallel 55 edge is untouched.
	ws, err := g.Weights("AMS", "BER")
	require.NoError(t, err)
	assert.Equal(t, []int{55}, ws)

	removed, err = g.RemoveEdge("AMS", "BER", 40)
	require.NoError(t, err)
	assert.False(t, removed, "absent edge is a boolean miss, not an error")

	_, err = g.RemoveEdge("AMS", "NOPE", 40)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 5, g.EdgeCount())
}

func TestRemoveEdgeAt_ReturnsSuccessor(t *testing.T) {
	g := flightGraph(t)
	want := g.Edges()

	it := g.Find("AMS", "BER", 40) // the first edge in canonical order
	require.NotEqual(t, g.End(), it)

	next := g.RemoveEdgeAt(it)
	require.NotEqual(t, g.End(), next)
	assert.Equal(t, want[1], next.Edge(), "successor of the removed edge")
	assert.Equal(t, len(want)-1, g.EdgeCount())

	// Removing the last edge yields End.
	last := g.End().Prev()
	assert.Equal(t, g.End(), g.RemoveEdgeAt(last))
}

func TestRemoveEdgeAt_PanicsOnMisuse(t *testing.T) {
	g := flightGraph(t)
	other := flightGraph(t)

	assert.Panics(t, func() { g.RemoveEdgeAt(g.End()) })
	assert.Panics(t, func() { g.RemoveEdgeAt(core.Iterator[string, int]{}) })
	assert.Panics(t, func() { g.RemoveEdgeAt(other.Begin()) }, "foreign iterator")
}

func TestRemoveEdgeRange(t *testing.T) {
	g := flightGraph(t)
	all := g.Edges()

	// Drop the middle of the sequence: [1, 4).
	from := g.Begin().Next()
	to := from.Next().Next().Next()
	got := g.RemoveEdgeRange(from, to)

	assert.Equal(t, to, got, "returns the first position after the removed range")
	assert.Equal(t, []core.Edge[string, int]{all[0], all[4], all[5]}, g.Edges())

	// Empty range removes nothing.
	it := g.Begin()
	assert.Equal(t, it, g.RemoveEdgeRange(it, it))
	assert.Equal(t, 3, g.EdgeCount())

	// Full range empties the edge store.
	assert.Equal(t, g.End(), g.RemoveEdgeRange(g.Begin(), g.End()))
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 4, g.NodeCount(), "nodes are untouched")
}

func TestFind(t *testing.T) {
	g := flightGraph(t)

	it := g.Find("BER", "BER", 9)
	require.NotEqual(t, g.End(), it)
	assert.Equal(t, core.Edge[string, int]{Src: "BER", Dst: "BER", Weight: 9}, it.Edge())

	assert.Equal(t, g.End(), g.Find("AMS", "BER", 41), "weight mismatch")
	assert.Equal(t, g.End(), g.Find("DUB", "AMS", 1), "no such edge")
	assert.Equal(t, g.End(), g.Find("XXX", "AMS", 1), "absent node is a plain miss")
}

func TestEdgesSnapshot(t *testing.T) {
	g := flightGraph(t)

	want := []core.Edge[string, int]{
		{Src: "AMS", Dst: "BER", Weight: 40},
		{Src: "AMS", Dst: "BER", Weight: 55},
		{Src: "AMS", Dst: "CDG", Weight: 35},
		{Src: "BER", Dst: "AMS", Weight: 44},
		{Src: "BER", Dst: "BER", Weight: 9},
		{Src: "CDG", Dst: "AMS", Weight: 31},
	}
	got := g.Edges()
	require.Equal(t, want, got, "ascending (src, dst, weight)")

	got[0].Weight = -1
	assert.Equal(t, want, g.Edges(), "mutating the snapshot must not reach the graph")
}
