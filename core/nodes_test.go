package core_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/core"
)

func TestAddNode_UniquenessAndOrder(t *testing.T) {
	g := core.New[int, string]()
	rng := rand.New(rand.NewSource(11))

	values := rng.Perm(100)
	for _, v := range values {
		require.True(t, g.AddNode(v), "first insert of %d", v)
	}
	for _, v := range values {
		assert.False(t, g.AddNode(v), "re-insert of %d must be a no-op", v)
	}

	got := g.Nodes()
	require.Len(t, got, 100, "node count equals distinct values inserted")
	assert.True(t, sort.IntsAreSorted(got), "Nodes() must be ascending")
	assert.Equal(t, 100, g.NodeCount())
}

func TestHasNode(t *testing.T) {
	g := core.NewFromNodes[string, int]("A", "B")
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"))
	assert.False(t, g.HasNode("C"))
}

func TestRemoveNode_CascadesToIncidentEdges(t *testing.T) {
	g := core.NewFromNodes[int, int](1, 2, 3)
	mustAddEdge(t, g, 1, 1, 0)
	mustAddEdge(t, g, 1, 2, 0)
	mustAddEdge(t, g, 2, 1, 0)

	require.True(t, g.RemoveNode(1))

	assert.Equal(t, []int{2, 3}, g.Nodes())
	assert.Zero(t, g.EdgeCount(), "every edge touching 1 must be gone")
	assert.Empty(t, g.Edges())
}

func TestRemoveNode_KeepsUnrelatedEdges(t *testing.T) {
	g := flightGraph(t)
	require.True(t, g.RemoveNode("AMS"))

	assert.Equal(t, []string{"BER", "CDG", "DUB"}, g.Nodes())
	assert.Equal(t,
		[]core.Edge[string, int]{{Src: "BER", Dst: "BER", Weight: 9}},
		g.Edges(), "only the BER self-loop avoids AMS")
}

func TestRemoveNode_AbsentIsFalseNotError(t *testing.T) {
	g := core.NewFromNodes[int, int](1)
	assert.False(t, g.RemoveNode(7))
	assert.Equal(t, []int{1}, g.Nodes())
}

func TestEmptyAndCounts(t *testing.T) {
	g := core.New[string, int]()
	assert.True(t, g.Empty())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())

	g.AddNode("A")
	assert.False(t, g.Empty())
	assert.Equal(t, 1, g.NodeCount())

	g.RemoveNode("A")
	assert.True(t, g.Empty())
}

func TestNodesSnapshotIsDetached(t *testing.T) {
	g := core.NewFromNodes[int, int](1, 2, 3)
	snap := g.Nodes()
	snap[0] = 99
	assert.Equal(t, []int{1, 2, 3}, g.Nodes(), "mutating the snapshot must not reach the graph")
}
