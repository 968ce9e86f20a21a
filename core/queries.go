package core

import "sort"

// Vertex returns the vertex with the given ID, with an existence flag.
func (g *Graph) Vertex(id int64) (*Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether the graph contains the given ID.
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexIDs returns every vertex ID sorted ascending. The sorted order
// is what keeps every traversal in this module deterministic for a
// given input graph.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Vertices returns every vertex sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, id := range g.VertexIDs() {
		out = append(out, g.vertices[id])
	}

	return out
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutgoingEdges returns a copy of the vertex's adjacency bucket in
// insertion order. Unknown IDs yield an empty slice.
// Complexity: O(deg+(v)).
func (g *Graph) OutgoingEdges(id int64) []*Edge {
	bucket := g.adjacency[id]
	out := make([]*Edge, len(bucket))
	copy(out, bucket)

	return out
}

// IncomingEdges returns every edge ending at the vertex, in edge-list
// order. Computed by a linear scan; no reverse index is maintained.
// Complexity: O(E).
func (g *Graph) IncomingEdges(id int64) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.To == id {
			out = append(out, e)
		}
	}

	return out
}

// InDegree returns the number of edges ending at the vertex.
// Complexity: O(E) (linear scan, same contract as IncomingEdges).
func (g *Graph) InDegree(id int64) int {
	n := 0
	for _, e := range g.edges {
		if e.To == id {
			n++
		}
	}

	return n
}

// OutDegree returns the number of edges leaving the vertex.
// Complexity: O(1).
func (g *Graph) OutDegree(id int64) int {
	return len(g.adjacency[id])
}

// EdgeWeight returns the weight of the first edge from→to, or 0 when
// no such edge exists.
func (g *Graph) EdgeWeight(from, to int64) int64 {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight
		}
	}

	return 0
}

// Duration returns the duration of the vertex, or 0 when the ID is unknown.
func (g *Graph) Duration(id int64) int64 {
	if v, ok := g.vertices[id]; ok {
		return v.Duration()
	}

	return 0
}
