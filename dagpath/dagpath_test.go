package dagpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/dagpath"
)

// buildDurationDAG wires the running example: vertices 0..4 with durations
// [2,3,1,4,2], edges 0→1, 0→2, 1→3, 2→3, 3→4, node-duration mode.
func buildDurationDAG(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, d := range []int64{2, 3, 1, 4, 2} {
		_, err := g.AddVertex(int64(i), "task", core.WithDuration(d))
		require.NoError(t, err)
	}
	for _, p := range [][2]int64{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

// buildWeightedDAG wires the same shape in edge-weight mode with weights
// 0→1:2, 0→2:5, 1→3:4, 2→3:1, 3→4:3.
func buildWeightedDAG(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithEdgeWeights())
	for i := int64(0); i < 5; i++ {
		_, err := g.AddVertex(i, "task")
		require.NoError(t, err)
	}
	for _, e := range [][3]int64{{0, 1, 2}, {0, 2, 5}, {1, 3, 4}, {2, 3, 1}, {3, 4, 3}} {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

// vertexIDs flattens a path to its IDs for compact assertions.
func vertexIDs(path []*core.Vertex) []int64 {
	ids := make([]int64, len(path))
	for i, v := range path {
		ids[i] = v.ID()
	}

	return ids
}

// TestNew_Validation rejects nil and cyclic graphs, self-loops included.
func TestNew_Validation(t *testing.T) {
	_, err := dagpath.New(nil)
	assert.ErrorIs(t, err, dagpath.ErrNilGraph)

	g := core.NewGraph()
	_, err = g.AddVertex(0, "a")
	require.NoError(t, err)
	_, err = g.AddVertex(1, "b")
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, 0)
	require.NoError(t, err)
	_, err = dagpath.New(g)
	assert.ErrorIs(t, err, dagpath.ErrCyclicGraph)

	loop := core.NewGraph()
	_, err = loop.AddVertex(0, "a")
	require.NoError(t, err)
	_, err = loop.AddEdge(0, 0, 0)
	require.NoError(t, err)
	_, err = dagpath.New(loop)
	assert.ErrorIs(t, err, dagpath.ErrCyclicGraph)
}

// TestShortestFrom_Weighted checks exact distances on the weighted diamond.
func TestShortestFrom_Weighted(t *testing.T) {
	g := buildWeightedDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.ShortestFrom(0, dagpath.WithPaths())
	require.NoError(t, err)

	assert.Equal(t, int64(0), r.DistanceTo(0))
	assert.Equal(t, int64(2), r.DistanceTo(1))
	assert.Equal(t, int64(5), r.DistanceTo(2))
	assert.Equal(t, int64(6), r.DistanceTo(3), "both routes total 6, first relaxation keeps the predecessor")
	assert.Equal(t, int64(9), r.DistanceTo(4))

	path, err := s.ReconstructPath(r, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 4}, vertexIDs(path))
}

// TestShortestFrom_UnknownSource fails with ErrVertexNotFound.
func TestShortestFrom_UnknownSource(t *testing.T) {
	g := buildWeightedDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	_, err = s.ShortestFrom(99)
	assert.ErrorIs(t, err, dagpath.ErrVertexNotFound)
}

// TestShortestFrom_Unreachable leaves isolated vertices at the sentinel.
func TestShortestFrom_Unreachable(t *testing.T) {
	g := buildWeightedDAG(t)
	_, err := g.AddVertex(5, "island")
	require.NoError(t, err)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.ShortestFrom(0)
	require.NoError(t, err)
	assert.Equal(t, dagpath.UnreachableShortest, r.DistanceTo(5))
	assert.False(t, r.IsReachable(5))
	assert.True(t, r.IsReachable(4))
}

// TestLongestFrom_Durations charges from-vertex durations as step costs.
func TestLongestFrom_Durations(t *testing.T) {
	g := buildDurationDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.LongestFrom(0, dagpath.WithPaths())
	require.NoError(t, err)

	assert.Equal(t, int64(0), r.DistanceTo(0))
	assert.Equal(t, int64(2), r.DistanceTo(1))
	assert.Equal(t, int64(2), r.DistanceTo(2))
	assert.Equal(t, int64(5), r.DistanceTo(3), "via 1: 2+3 beats via 2: 2+1")
	assert.Equal(t, int64(9), r.DistanceTo(4))

	path, err := s.ReconstructPath(r, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 4}, vertexIDs(path))
}

// TestLongestFrom_WeightsNegated applies the sign-flip strategy in
// edge-weight mode: every distance is the negated accumulated weight.
func TestLongestFrom_WeightsNegated(t *testing.T) {
	g := buildWeightedDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.LongestFrom(0)
	require.NoError(t, err)

	assert.Equal(t, int64(-2), r.DistanceTo(1))
	assert.Equal(t, int64(-5), r.DistanceTo(2))
	assert.Equal(t, int64(-6), r.DistanceTo(3))
	assert.Equal(t, int64(-9), r.DistanceTo(4))
}

// TestLongestFrom_SkipsUnreachable never expands sentinel-distance
// vertices, so an unreachable island cannot poison its successors.
func TestLongestFrom_SkipsUnreachable(t *testing.T) {
	g := buildDurationDAG(t)
	_, err := g.AddVertex(5, "island", core.WithDuration(100))
	require.NoError(t, err)
	_, err = g.AddVertex(6, "downstream", core.WithDuration(1))
	require.NoError(t, err)
	_, err = g.AddEdge(5, 6, 0)
	require.NoError(t, err)

	s, err := dagpath.New(g)
	require.NoError(t, err)
	r, err := s.LongestFrom(0)
	require.NoError(t, err)

	assert.Equal(t, dagpath.UnreachableLongest, r.DistanceTo(5))
	assert.Equal(t, dagpath.UnreachableLongest, r.DistanceTo(6))
	assert.False(t, r.IsReachable(6))
}

// TestCriticalPath_Durations reproduces the running example: path 0→1→3→4
// with total duration 2+3+4+2 = 11.
func TestCriticalPath_Durations(t *testing.T) {
	g := buildDurationDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.CriticalPath()
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 3, 4}, vertexIDs(r.Path))
	assert.Equal(t, int64(11), r.Length)
	assert.Equal(t, int64(0), r.SourceID)
	assert.Equal(t, int64(4), r.SinkID)
	assert.False(t, r.Empty())
}

// TestCriticalPath_Empty returns an empty result for an empty graph.
func TestCriticalPath_Empty(t *testing.T) {
	s, err := dagpath.New(core.NewGraph())
	require.NoError(t, err)

	r, err := s.CriticalPath()
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, int64(0), r.Length)
	assert.Equal(t, int64(-1), r.SourceID)
	assert.Equal(t, int64(-1), r.SinkID)
}

// TestCriticalPath_SingleVertex counts the lone task's own duration.
func TestCriticalPath_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex(0, "solo", core.WithDuration(7))
	require.NoError(t, err)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	r, err := s.CriticalPath()
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, vertexIDs(r.Path))
	assert.Equal(t, int64(7), r.Length)
	assert.Equal(t, int64(0), r.SourceID)
	assert.Equal(t, int64(0), r.SinkID)
}

// TestCriticalPath_MultipleSources tries every source and keeps the best.
func TestCriticalPath_MultipleSources(t *testing.T) {
	// Two chains: 0→1 (durations 1,1) and 2→3→4 (durations 5,5,5).
	g := core.NewGraph()
	for i, d := range []int64{1, 1, 5, 5, 5} {
		_, err := g.AddVertex(int64(i), "task", core.WithDuration(d))
		require.NoError(t, err)
	}
	for _, p := range [][2]int64{{0, 1}, {2, 3}, {3, 4}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	s, err := dagpath.New(g)
	require.NoError(t, err)
	r, err := s.CriticalPath()
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4}, vertexIDs(r.Path))
	assert.Equal(t, int64(15), r.Length)
	assert.Equal(t, int64(2), r.SourceID)
	assert.Equal(t, int64(4), r.SinkID)
}

// TestReconstructPath_Failures covers missing predecessors and
// unreachable targets.
func TestReconstructPath_Failures(t *testing.T) {
	g := buildWeightedDAG(t)
	_, err := g.AddVertex(5, "island")
	require.NoError(t, err)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	bare, err := s.ShortestFrom(0)
	require.NoError(t, err)
	_, err = s.ReconstructPath(bare, 4)
	assert.ErrorIs(t, err, dagpath.ErrNoPredecessors)

	withPaths, err := s.ShortestFrom(0, dagpath.WithPaths())
	require.NoError(t, err)
	path, err := s.ReconstructPath(withPaths, 5)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = s.ReconstructPath(withPaths, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, vertexIDs(path), "source to itself")
}

// TestReachabilityMatchesBFS cross-checks IsReachable against a plain
// breadth-first traversal on a branching DAG.
func TestReachabilityMatchesBFS(t *testing.T) {
	g := core.NewGraph()
	for i := int64(0); i < 8; i++ {
		_, err := g.AddVertex(i, "task", core.WithDuration(1))
		require.NoError(t, err)
	}
	for _, p := range [][2]int64{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {5, 6}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	reachable := map[int64]bool{0: true}
	frontier := []int64{0}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		for _, e := range g.OutgoingEdges(id) {
			if !reachable[e.To] {
				reachable[e.To] = true
				frontier = append(frontier, e.To)
			}
		}
	}

	s, err := dagpath.New(g)
	require.NoError(t, err)
	for _, longest := range []bool{false, true} {
		var r *dagpath.Result
		if longest {
			r, err = s.LongestFrom(0)
		} else {
			r, err = s.ShortestFrom(0)
		}
		require.NoError(t, err)
		for _, id := range g.VertexIDs() {
			assert.Equal(t, reachable[id], r.IsReachable(id),
				"vertex %d, longest=%v", id, longest)
		}
	}
}

// TestMetrics counts one relaxation per reachable edge on the diamond.
func TestMetrics(t *testing.T) {
	g := buildDurationDAG(t)
	s, err := dagpath.New(g)
	require.NoError(t, err)

	_, err = s.LongestFrom(0)
	require.NoError(t, err)
	m := s.Metrics()
	assert.Equal(t, 5, m.Relaxations)
	assert.Positive(t, m.TopologicalOperations)
}
