package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/taskgraph/core"
)

// TestHasCycle_EmptyAndSingle treats trivial graphs as acyclic.
func TestHasCycle_EmptyAndSingle(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasCycle())

	_, err := g.AddVertex(0, "solo")
	require.NoError(t, err)
	assert.False(t, g.HasCycle())
}

// TestHasCycle_DAG reports no cycle on the diamond.
func TestHasCycle_DAG(t *testing.T) {
	assert.False(t, buildDiamond(t).HasCycle())
}

// TestHasCycle_Triangle detects the 3-cycle 0→1→2→0.
func TestHasCycle_Triangle(t *testing.T) {
	g := core.NewGraph()
	for i := int64(0); i < 3; i++ {
		_, err := g.AddVertex(i, "task")
		require.NoError(t, err)
	}
	for _, pair := range [][2]int64{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	assert.True(t, g.HasCycle())
}

// TestHasCycle_SelfLoop counts a self-loop as a cycle.
func TestHasCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex(0, "loop")
	require.NoError(t, err)
	_, err = g.AddEdge(0, 0, 0)
	require.NoError(t, err)

	assert.True(t, g.HasCycle())
}

// TestHasCycle_CrossEdge must not mistake a shared descendant
// (a black cross-edge target) for a back-edge.
func TestHasCycle_CrossEdge(t *testing.T) {
	g := core.NewGraph()
	for i := int64(0); i < 4; i++ {
		_, err := g.AddVertex(i, "task")
		require.NoError(t, err)
	}
	// 0→1→3 and 0→2→3: 3 is reached twice but never while gray.
	for _, pair := range [][2]int64{{0, 1}, {1, 3}, {0, 2}, {2, 3}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	assert.False(t, g.HasCycle())
}

// TestHasCycle_CycleInSecondComponent finds a cycle outside the first
// DFS tree.
func TestHasCycle_CycleInSecondComponent(t *testing.T) {
	g := core.NewGraph()
	for i := int64(0); i < 5; i++ {
		_, err := g.AddVertex(i, "task")
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)
	for _, pair := range [][2]int64{{2, 3}, {3, 4}, {4, 2}} {
		_, err = g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	assert.True(t, g.HasCycle())
}

// TestHasCycle_DeepChain keeps working far past any plausible call
// stack: the walker is iterative.
func TestHasCycle_DeepChain(t *testing.T) {
	const n = 200_000
	g := core.NewGraph()
	for i := int64(0); i < n; i++ {
		_, err := g.AddVertex(i, fmt.Sprintf("t%d", i))
		require.NoError(t, err)
	}
	for i := int64(0); i < n-1; i++ {
		_, err := g.AddEdge(i, i+1, 0)
		require.NoError(t, err)
	}
	assert.False(t, g.HasCycle())

	// Closing the chain turns it into one giant cycle.
	_, err := g.AddEdge(n-1, 0, 0)
	require.NoError(t, err)
	assert.True(t, g.HasCycle())
}
