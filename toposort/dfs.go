package toposort

import (
	"fmt"
	"time"

	"github.com/citygrid/taskgraph/core"
)

// Vertex visitation states for the DFS sorter.
const (
	white = iota // not yet discovered
	gray         // on the current traversal path
	black        // finished
)

// dfsFrame is one suspended DFS call: a vertex, its outgoing edges,
// and a cursor into them.
type dfsFrame struct {
	id    int64
	edges []*core.Edge
	next  int
}

// SortDFS produces a topological order by reversed DFS postorder.
//
// Vertices are pushed onto the postorder when they finish; reversing
// that sequence yields the order. An edge into a vertex that is still
// gray (on the current traversal path, not merely finished) closes a
// cycle and aborts with ErrCycleDetected. The walk is iterative, so
// call-stack depth does not bound the graph.
func (s *Sorter) SortDFS() ([]*core.Vertex, error) {
	start := time.Now()
	s.metrics = Metrics{}

	state := make(map[int64]int, s.graph.VertexCount())
	postorder := make([]int64, 0, s.graph.VertexCount())

	for _, root := range s.graph.VertexIDs() {
		if state[root] != white {
			continue
		}
		if err := s.dfsFrom(root, state, &postorder); err != nil {
			s.metrics.CycleFound = true
			s.metrics.Elapsed = time.Since(start)

			return nil, err
		}
	}

	// Reverse postorder: last finished first.
	order := make([]*core.Vertex, 0, len(postorder))
	for i := len(postorder) - 1; i >= 0; i-- {
		s.metrics.Operations++
		v, _ := s.graph.Vertex(postorder[i])
		order = append(order, v)
	}

	s.metrics.Elapsed = time.Since(start)

	return order, nil
}

// dfsFrom explores one DFS tree from root, appending finished vertices
// to the shared postorder.
func (s *Sorter) dfsFrom(root int64, state map[int64]int, postorder *[]int64) error {
	state[root] = gray
	s.metrics.Operations++
	frames := []dfsFrame{{id: root, edges: s.graph.OutgoingEdges(root)}}

	for len(frames) > 0 {
		fr := &frames[len(frames)-1]

		if fr.next < len(fr.edges) {
			to := fr.edges[fr.next].To
			fr.next++
			s.metrics.Operations++

			switch state[to] {
			case gray:
				// Back-edge to an ancestor: cycle.
				return fmt.Errorf("%w: back-edge %d→%d", ErrCycleDetected, fr.id, to)
			case white:
				state[to] = gray
				s.metrics.Operations++
				frames = append(frames, dfsFrame{id: to, edges: s.graph.OutgoingEdges(to)})
			}

			continue
		}

		// Finished: emit in postorder.
		state[fr.id] = black
		*postorder = append(*postorder, fr.id)
		frames = frames[:len(frames)-1]
	}

	return nil
}
