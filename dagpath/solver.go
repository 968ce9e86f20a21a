package dagpath

import (
	"time"

	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/toposort"
)

// Solver computes DAG-restricted shortest and longest paths on one graph.
// The zero value is not usable; construct with New.
type Solver struct {
	graph   *core.Graph
	sorter  *toposort.Sorter
	metrics Metrics
}

// New binds a solver to g. The graph must be acyclic; a self-loop counts
// as a cycle.
func New(g *core.Graph) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.HasCycle() {
		return nil, ErrCyclicGraph
	}
	sorter, err := toposort.New(g)
	if err != nil {
		return nil, err
	}

	return &Solver{graph: g, sorter: sorter}, nil
}

// Metrics returns the snapshot of the latest solver call.
func (s *Solver) Metrics() Metrics {
	return s.metrics
}

// ShortestFrom computes shortest distances from source to every vertex.
func (s *Solver) ShortestFrom(source int64, opts ...Option) (*Result, error) {
	return s.compute(source, false, opts...)
}

// LongestFrom computes longest distances from source to every vertex.
func (s *Solver) LongestFrom(source int64, opts ...Option) (*Result, error) {
	return s.compute(source, true, opts...)
}

// compute runs one relaxation pass over the topological order.
func (s *Solver) compute(source int64, longest bool, opts ...Option) (*Result, error) {
	start := time.Now()
	s.metrics = Metrics{}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if !s.graph.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	// 1) Topological order. New already rejected cyclic graphs, but the
	//    graph may have been mutated since; surface the sort error as-is.
	order, err := s.sorter.SortKahn()
	if err != nil {
		return nil, err
	}
	s.metrics.TopologicalOperations = s.sorter.Metrics().Operations

	// 2) Initialize distances to the direction's sentinel.
	unreachable := UnreachableShortest
	if longest {
		unreachable = UnreachableLongest
	}
	dist := make(map[int64]int64, s.graph.VertexCount())
	for _, id := range s.graph.VertexIDs() {
		dist[id] = unreachable
	}
	dist[source] = 0

	var pred map[int64]int64
	if o.Paths {
		pred = make(map[int64]int64)
	}

	// 3) Relax outgoing edges in topological order. Vertices still at the
	//    sentinel have no path from the source and must not be expanded.
	cost := stepCostFor(s.graph, longest)
	for _, v := range order {
		from := v.ID()
		base := dist[from]
		if base == unreachable {
			continue
		}
		for _, e := range s.graph.OutgoingEdges(from) {
			s.metrics.Relaxations++
			candidate := base + cost(s.graph, e)
			current := dist[e.To]
			if (longest && candidate > current) || (!longest && candidate < current) {
				dist[e.To] = candidate
				if pred != nil {
					pred[e.To] = from
				}
			}
		}
	}

	s.metrics.Elapsed = time.Since(start)

	return &Result{
		SourceID:     source,
		Longest:      longest,
		Distances:    dist,
		Predecessors: pred,
	}, nil
}

// ReconstructPath rebuilds the vertex sequence from the result's source to
// target by walking the predecessor map backwards. It returns an empty
// slice when target is not reachable from the source.
func (s *Solver) ReconstructPath(r *Result, target int64) ([]*core.Vertex, error) {
	if r == nil || r.Predecessors == nil {
		return nil, ErrNoPredecessors
	}

	var reversed []*core.Vertex
	current := target
	for current != r.SourceID {
		v, ok := s.graph.Vertex(current)
		if !ok {
			return []*core.Vertex{}, nil
		}
		reversed = append(reversed, v)
		prev, ok := r.Predecessors[current]
		if !ok {
			// Chain broke before reaching the source: no path exists.
			return []*core.Vertex{}, nil
		}
		current = prev
	}

	src, ok := s.graph.Vertex(r.SourceID)
	if !ok {
		return []*core.Vertex{}, nil
	}
	reversed = append(reversed, src)

	path := make([]*core.Vertex, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path, nil
}
