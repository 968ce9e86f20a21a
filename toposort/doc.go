// Package toposort orders the vertices of a directed task graph so
// that every dependency edge u→v places u before v.
//
// Two interchangeable algorithms are provided. SortKahn repeatedly
// removes zero-in-degree vertices from a frontier queue; SortDFS runs
// a depth-first pass and reverses the postorder. Both are individually
// correct but are not required to produce the same order. Either one
// fails with ErrCycleDetected on cyclic input, never returning a
// partial order: Kahn detects the cycle by a short output, DFS by a
// back-edge into a vertex still on the traversal path.
//
// Derived queries cover source and sink vertices and per-vertex levels
// (length of the longest dependency chain above a vertex), computed in
// one forward pass over a supplied valid order.
//
// Cyclic graphs can still be fully ordered through an SCC condensation:
// CondensationOrder sorts the component DAG and ExpandOrder inflates
// each component index back to its member vertices, giving a complete
// ordering of the original graph. CompleteOrder chains the two and
// builds the condensation on demand.
//
// The DFS variant uses an explicit work stack, so it is safe on
// arbitrarily deep graphs.
//
// Complexity:
//
//   - Time:   O(V + E) for either sort.
//   - Memory: O(V).
package toposort
