package toposort

import (
	"errors"
	"time"

	"github.com/citygrid/taskgraph/core"
)

var (
	// ErrNilGraph is returned by New when the graph is nil.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the graph is not acyclic; no partial
	// order is ever returned alongside it.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrNilFinder indicates a condensation-aware call with a nil SCC finder.
	ErrNilFinder = errors.New("toposort: scc finder is nil")

	// ErrNoCondensation indicates CondensationOrder was called before
	// any condensation graph was built.
	ErrNoCondensation = errors.New("toposort: condensation not built")
)

// Metrics is an immutable snapshot of the most recent sort run.
type Metrics struct {
	// Operations counts vertex and edge touches, the original cost proxy.
	Operations int

	// Pushes and Pops count frontier-queue traffic (Kahn only).
	Pushes int
	Pops   int

	// CycleFound reports whether the run aborted on a cycle.
	CycleFound bool

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Sorter computes topological orderings of one graph.
// It is stateful only through the per-run Metrics snapshot and is not
// safe for concurrent use.
type Sorter struct {
	graph   *core.Graph
	metrics Metrics
}

// New creates a Sorter for the given graph. A nil graph is a usage
// error, rejected immediately.
func New(g *core.Graph) (*Sorter, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Sorter{graph: g}, nil
}

// Metrics returns the snapshot of the latest sort run.
func (s *Sorter) Metrics() Metrics {
	return s.metrics
}
