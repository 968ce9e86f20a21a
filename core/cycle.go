package core

// Vertex visitation states for the iterative DFS walkers.
const (
	white = iota // not yet discovered
	gray         // on the current recursion path
	black        // fully explored
)

// cycleFrame is one suspended DFS call: the vertex and a cursor into
// its outgoing bucket. Encoding the recursion as explicit frames keeps
// the walk correct on arbitrarily deep graphs where real recursion
// would exhaust the call stack.
type cycleFrame struct {
	id   int64
	next int
}

// HasCycle reports whether the graph contains a directed cycle.
//
// The detector runs a DFS over every component with three-color state;
// a back-edge into a gray vertex (one currently on the DFS path, not
// merely finished) signals a cycle. Self-loops are cycles.
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) HasCycle() bool {
	state := make(map[int64]int, len(g.vertices))

	// Drive DFS from every undiscovered vertex, in sorted ID order for
	// a deterministic walk.
	for _, root := range g.VertexIDs() {
		if state[root] != white {
			continue
		}
		if g.cycleFrom(root, state) {
			return true
		}
	}

	return false
}

// cycleFrom runs one DFS tree from root and reports whether it closes
// a cycle. state is shared across trees.
func (g *Graph) cycleFrom(root int64, state map[int64]int) bool {
	stack := []cycleFrame{{id: root}}
	state[root] = gray

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		bucket := g.adjacency[f.id]

		// All outgoing edges examined: retire the frame.
		if f.next >= len(bucket) {
			state[f.id] = black
			stack = stack[:len(stack)-1]

			continue
		}

		to := bucket[f.next].To
		f.next++

		switch state[to] {
		case gray:
			// Back-edge to an ancestor on the current path.
			return true
		case white:
			state[to] = gray
			stack = append(stack, cycleFrame{id: to})
		}
	}

	return false
}
