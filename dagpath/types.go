package dagpath

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/citygrid/taskgraph/core"
)

// Sentinel errors returned by the DAG path solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dagpath: graph is nil")

	// ErrCyclicGraph indicates that the graph contains at least one cycle
	// and therefore cannot be processed in topological order.
	ErrCyclicGraph = errors.New("dagpath: graph must be acyclic")

	// ErrVertexNotFound indicates that the requested source vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("dagpath: source vertex not found in graph")

	// ErrNoPredecessors indicates that path reconstruction was requested on
	// a Result computed without WithPaths.
	ErrNoPredecessors = errors.New("dagpath: result carries no predecessor information")
)

// Distance sentinels for unreachable vertices. A distance equal to the
// sentinel of the active direction after a run means the vertex cannot be
// reached from the source.
const (
	// UnreachableShortest marks a vertex never reached in shortest mode.
	UnreachableShortest = int64(math.MaxInt64)

	// UnreachableLongest marks a vertex never reached in longest mode.
	UnreachableLongest = int64(math.MinInt64)
)

// Options configures a single ShortestFrom/LongestFrom run.
//
// Paths – if true, record a predecessor map alongside the distances so the
// actual path to any reachable vertex can be rebuilt afterwards.
type Options struct {
	Paths bool
}

// Option is a functional option for a path computation.
type Option func(*Options)

// WithPaths enables predecessor tracking in the result. Without it the
// Predecessors map is nil and ReconstructPath fails with ErrNoPredecessors.
func WithPaths() Option {
	return func(o *Options) {
		o.Paths = true
	}
}

// Result holds the outcome of a single-source distance computation.
type Result struct {
	// SourceID is the vertex the distances are measured from.
	SourceID int64

	// Longest reports whether this run maximized rather than minimized.
	Longest bool

	// Distances maps every vertex ID to its best distance from the source.
	// Unreached vertices keep the direction's sentinel value.
	Distances map[int64]int64

	// Predecessors maps a vertex to the vertex it was relaxed from on its
	// best path. Nil unless the run was configured with WithPaths.
	Predecessors map[int64]int64
}

// DistanceTo returns the computed distance to target, or the direction's
// unreachable sentinel when the target is unknown.
func (r *Result) DistanceTo(target int64) int64 {
	if d, ok := r.Distances[target]; ok {
		return d
	}
	if r.Longest {
		return UnreachableLongest
	}

	return UnreachableShortest
}

// IsReachable reports whether target was reached from the source.
func (r *Result) IsReachable(target int64) bool {
	d := r.DistanceTo(target)
	if r.Longest {
		return d != UnreachableLongest
	}

	return d != UnreachableShortest
}

// CriticalPathResult holds the longest source-to-sink path over the whole
// graph. An empty Path with SourceID and SinkID of -1 means the graph has
// no vertices.
type CriticalPathResult struct {
	// Path lists the vertices of the critical path in execution order.
	Path []*core.Vertex

	// Length is the total length of the path. In node-duration mode it is
	// the sum of every path vertex's duration, sink included.
	Length int64

	// SourceID and SinkID are the endpoints of the path.
	SourceID int64
	SinkID   int64
}

// Empty reports whether no path was found.
func (r *CriticalPathResult) Empty() bool {
	return len(r.Path) == 0
}

// String renders a one-line summary for logs.
func (r *CriticalPathResult) String() string {
	return fmt.Sprintf("CriticalPath{length=%d, vertices=%d, source=%d, sink=%d}",
		r.Length, len(r.Path), r.SourceID, r.SinkID)
}

// Metrics captures counters from the most recent solver call.
type Metrics struct {
	// Relaxations counts edge relaxation attempts.
	Relaxations int

	// TopologicalOperations counts the work done by the embedded sort.
	TopologicalOperations int

	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}
