package scc

import (
	"errors"
	"time"

	"github.com/citygrid/taskgraph/core"
)

var (
	// ErrNilGraph is returned by New when the graph is nil.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrNoComponents indicates a query that needs a completed
	// component run before any FindTarjan/FindKosaraju call.
	ErrNoComponents = errors.New("scc: no components computed yet")
)

// Metrics is an immutable snapshot of the most recent component run.
type Metrics struct {
	// DFSVisits counts vertices first discovered across all passes.
	DFSVisits int

	// EdgesTraversed counts edge examinations across all passes.
	EdgesTraversed int

	// Components is the number of groups in the partition.
	Components int

	// LargestSize and SmallestSize bound the group sizes; both are 0
	// on an empty graph.
	LargestSize  int
	SmallestSize int

	// AverageSize is the mean group size, 0 on an empty graph.
	AverageSize float64

	// Trivial counts single-vertex groups.
	Trivial int

	// StronglyConnected is true iff exactly one group spans every vertex.
	StronglyConnected bool

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Finder computes strongly connected components of one graph.
//
// A Finder is stateful: the latest partition, component lookup table,
// condensation, and metrics stick around until the next Find run.
// It is not safe for concurrent use.
type Finder struct {
	graph *core.Graph

	components   [][]*core.Vertex
	componentOf  map[int64]int
	condensation *core.Graph
	metrics      Metrics
}

// New creates a Finder for the given graph. A nil graph is a usage
// error, rejected before any traversal.
func New(g *core.Graph) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Finder{graph: g, componentOf: make(map[int64]int)}, nil
}

// Components returns the groups from the latest run (nil before any
// run). The returned slice is a copy; the groups themselves are the
// immutable run output and must not be mutated.
func (f *Finder) Components() [][]*core.Vertex {
	if f.components == nil {
		return nil
	}
	out := make([][]*core.Vertex, len(f.components))
	copy(out, f.components)

	return out
}

// ComponentOf returns the component index of the vertex in the latest
// partition, or -1 when the vertex is unknown or no run has happened.
func (f *Finder) ComponentOf(id int64) int {
	if idx, ok := f.componentOf[id]; ok {
		return idx
	}

	return -1
}

// Component returns the member group containing the vertex, or nil.
func (f *Finder) Component(id int64) []*core.Vertex {
	idx := f.ComponentOf(id)
	if idx < 0 {
		return nil
	}

	return f.components[idx]
}

// Condensation returns the condensation graph built by
// BuildCondensation, or nil if none has been built since the last run.
func (f *Finder) Condensation() *core.Graph {
	return f.condensation
}

// Metrics returns the snapshot of the latest run.
func (f *Finder) Metrics() Metrics {
	return f.metrics
}

// reset clears all run state. Every Find run starts from scratch; in
// particular a stale condensation never survives a fresh partition.
func (f *Finder) reset() {
	f.components = nil
	f.componentOf = make(map[int64]int)
	f.condensation = nil
	f.metrics = Metrics{}
}

// finish derives the aggregate metrics once a run's groups are final.
func (f *Finder) finish(start time.Time) {
	m := &f.metrics
	m.Components = len(f.components)
	m.Elapsed = time.Since(start)

	if len(f.components) == 0 {
		return
	}

	total := 0
	m.SmallestSize = len(f.components[0])
	for _, comp := range f.components {
		size := len(comp)
		total += size
		if size > m.LargestSize {
			m.LargestSize = size
		}
		if size < m.SmallestSize {
			m.SmallestSize = size
		}
		if size == 1 {
			m.Trivial++
		}
	}
	m.AverageSize = float64(total) / float64(len(f.components))
	m.StronglyConnected = len(f.components) == 1 && total == f.graph.VertexCount()
}
