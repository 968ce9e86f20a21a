// Package core defines the central Graph, Vertex, and Edge types for
// task-dependency analysis, and provides the primitives every algorithm
// package builds on: construction, mutation with cascading removal,
// degree and adjacency queries, transposition, cloning, cycle detection,
// and a statistics snapshot.
//
// A Graph is a directed multigraph-free structure: vertices are tasks
// keyed by a unique non-negative integer ID, edges are ordered
// (from, to) dependency pairs with an integer weight. A graph-level
// mode flag (UseNodeDurations) selects whether downstream path solvers
// cost a step by the source task's duration or by the edge weight.
//
// Traversal state is never stored on the model: algorithms carry their
// own visited sets, so a Graph may be shared by any number of
// concurrent read-only analyses. Mutation and analysis on the same
// instance must still be serialized by the caller.
//
// Determinism:
//
//   - VertexIDs() and Vertices() return vertices sorted by ID ascending.
//   - Edges() and OutgoingEdges() preserve insertion order.
//
// Errors:
//
//	ErrNilVertex        - vertex pointer is nil.
//	ErrNegativeID       - vertex ID is negative.
//	ErrEmptyName        - vertex name is empty after trimming.
//	ErrDuplicateVertex  - vertex ID already present.
//	ErrVertexNotFound   - operation referenced a missing vertex.
package core
