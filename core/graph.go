package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was supplied.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNilEdge indicates a nil *Edge was supplied.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrNegativeID indicates a vertex ID below zero.
	ErrNegativeID = errors.New("core: negative vertex ID")

	// ErrEmptyName indicates a vertex name that is empty after trimming.
	ErrEmptyName = errors.New("core: empty vertex name")

	// ErrDuplicateVertex indicates an AddVertex collision on an existing ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is the in-memory directed task-dependency graph.
//
// It owns a mapping from ID to Vertex, the ordered list of Edges, and
// an adjacency index from vertex ID to outgoing edges (insertion order
// preserved per vertex). The adjacency index is always consistent with
// the edge list: every edge appears in its source's bucket exactly once.
//
// A Graph is not safe for concurrent mutation; see the package doc for
// the sharing contract.
type Graph struct {
	useNodeDurations bool

	vertices  map[int64]*Vertex
	edges     []*Edge
	adjacency map[int64][]*Edge
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithEdgeWeights switches downstream path solvers to edge-weight
// costing. The default mode weights by task duration.
func WithEdgeWeights() GraphOption {
	return func(g *Graph) { g.useNodeDurations = false }
}

// NewGraph creates an empty Graph. Node-duration mode is the default,
// matching the common case of scheduling by task length.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		useNodeDurations: true,
		vertices:         make(map[int64]*Vertex),
		adjacency:        make(map[int64][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// UseNodeDurations reports whether path solvers weight steps by task
// duration (true) or by edge weight (false).
func (g *Graph) UseNodeDurations() bool { return g.useNodeDurations }

// SetUseNodeDurations switches the costing mode. It affects only
// algorithm runs started after the call.
func (g *Graph) SetUseNodeDurations(use bool) { g.useNodeDurations = use }

// AddVertex creates a new task vertex and inserts it into the graph.
// It fails with ErrDuplicateVertex when the ID is already taken, and
// propagates NewVertex validation errors.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64, name string, opts ...VertexOption) (*Vertex, error) {
	v, err := NewVertex(id, name, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.AddVertexRecord(v); err != nil {
		return nil, err
	}

	return v, nil
}

// AddVertexRecord inserts an already-constructed Vertex.
// Fails with ErrNilVertex on nil input and ErrDuplicateVertex on an ID
// collision; the graph is unchanged on failure.
func (g *Graph) AddVertexRecord(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if _, exists := g.vertices[v.ID()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, v.ID())
	}

	g.vertices[v.ID()] = v
	g.adjacency[v.ID()] = nil

	return nil
}

// RemoveVertex deletes the vertex and cascades: every edge referencing
// it disappears from the edge list and from all adjacency buckets.
// Returns false when the ID is unknown.
// Complexity: O(V+E).
func (g *Graph) RemoveVertex(id int64) bool {
	if _, exists := g.vertices[id]; !exists {
		return false
	}

	// 1. Drop the vertex and its own outgoing bucket.
	delete(g.vertices, id)
	delete(g.adjacency, id)

	// 2. Purge the edge list of anything touching id.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept

	// 3. Purge other vertices' buckets of edges into id.
	for from, bucket := range g.adjacency {
		filtered := bucket[:0]
		for _, e := range bucket {
			if e.To != id {
				filtered = append(filtered, e)
			}
		}
		g.adjacency[from] = filtered
	}

	return true
}

// AddEdge creates a directed dependency from one existing vertex to
// another and appends it to the edge list and the source's adjacency
// bucket. Both endpoints must already exist (ErrVertexNotFound).
// Self-loops are permitted by construction.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, weight int64, opts ...EdgeOption) (*Edge, error) {
	if _, ok := g.vertices[from]; !ok {
		return nil, fmt.Errorf("%w: edge source %d", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, fmt.Errorf("%w: edge destination %d", ErrVertexNotFound, to)
	}

	e := &Edge{From: from, To: to, Weight: weight, Kind: DepOther}
	for _, opt := range opts {
		opt(e)
	}

	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)

	return e, nil
}

// AddEdgeRecord inserts an already-constructed Edge under the same
// endpoint rules as AddEdge.
func (g *Graph) AddEdgeRecord(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if _, ok := g.vertices[e.From]; !ok {
		return fmt.Errorf("%w: edge source %d", ErrVertexNotFound, e.From)
	}
	if _, ok := g.vertices[e.To]; !ok {
		return fmt.Errorf("%w: edge destination %d", ErrVertexNotFound, e.To)
	}

	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e)

	return nil
}

// RemoveEdge deletes every edge running from→to, keeping the edge list
// and adjacency index consistent. Returns false when no such edge exists.
// Complexity: O(E).
func (g *Graph) RemoveEdge(from, to int64) bool {
	bucket, ok := g.adjacency[from]
	if !ok {
		return false
	}

	filtered := bucket[:0]
	removed := false
	for _, e := range bucket {
		if e.To == to {
			removed = true

			continue
		}
		filtered = append(filtered, e)
	}
	if !removed {
		return false
	}
	g.adjacency[from] = filtered

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	return true
}
