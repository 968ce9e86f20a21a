package core

// Transpose returns a new graph with identical vertices (value copies,
// no shared pointers) and every edge reversed. The costing mode carries
// over. The receiver is not modified.
// Complexity: O(V+E).
func (g *Graph) Transpose() *Graph {
	t := NewGraph()
	t.useNodeDurations = g.useNodeDurations

	// 1. Copy vertices by value so mutations on the transpose never
	//    leak back into the original.
	for id, v := range g.vertices {
		t.vertices[id] = v.clone()
		t.adjacency[id] = nil
	}

	// 2. Reverse every edge, preserving weight and kind.
	for _, e := range g.edges {
		rev := e.clone()
		rev.From, rev.To = e.To, e.From
		t.edges = append(t.edges, rev)
		t.adjacency[rev.From] = append(t.adjacency[rev.From], rev)
	}

	return t
}

// Clone returns a deep copy of the graph: vertices and edges are value
// copies, and the adjacency index is rebuilt.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.useNodeDurations = g.useNodeDurations

	for id, v := range g.vertices {
		c.vertices[id] = v.clone()
		c.adjacency[id] = nil
	}
	for _, e := range g.edges {
		ce := e.clone()
		c.edges = append(c.edges, ce)
		c.adjacency[ce.From] = append(c.adjacency[ce.From], ce)
	}

	return c
}
