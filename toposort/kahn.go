package toposort

import (
	"fmt"
	"time"

	"github.com/citygrid/taskgraph/core"
)

// SortKahn produces a topological order by in-degree elimination.
//
// Every vertex's in-degree is computed once; vertices at zero join a
// FIFO frontier (seeded in ascending ID order for determinism). Each
// pop appends to the output and decrements the in-degree of its
// successors, enqueueing any that reach zero. If the frontier drains
// before every vertex is output, the remainder sits on a cycle and the
// sort fails with ErrCycleDetected.
func (s *Sorter) SortKahn() ([]*core.Vertex, error) {
	start := time.Now()
	s.metrics = Metrics{}

	// 1. In-degrees in one pass over the edge list.
	inDegree := make(map[int64]int, s.graph.VertexCount())
	for _, e := range s.graph.Edges() {
		inDegree[e.To]++
	}

	// 2. Seed the frontier with zero-in-degree vertices, sorted by ID.
	var queue []int64
	for _, id := range s.graph.VertexIDs() {
		s.metrics.Operations++
		if inDegree[id] == 0 {
			queue = append(queue, id)
			s.metrics.Pushes++
		}
	}

	// 3. Drain the frontier.
	order := make([]*core.Vertex, 0, s.graph.VertexCount())
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		s.metrics.Pops++
		s.metrics.Operations++

		v, _ := s.graph.Vertex(id)
		order = append(order, v)

		for _, e := range s.graph.OutgoingEdges(id) {
			s.metrics.Operations++
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
				s.metrics.Pushes++
			}
		}
	}

	s.metrics.Elapsed = time.Since(start)

	// 4. A short output means at least one vertex never reached
	//    in-degree zero: a cycle. Hard failure, no partial order.
	if len(order) != s.graph.VertexCount() {
		s.metrics.CycleFound = true

		return nil, fmt.Errorf("%w: %d of %d vertices ordered",
			ErrCycleDetected, len(order), s.graph.VertexCount())
	}

	return order, nil
}
