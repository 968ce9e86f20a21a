// Package scc computes strongly connected components of a directed
// task graph and builds the condensation: the acyclic graph obtained
// by contracting each component to a single vertex.
//
// Two interchangeable algorithms are provided. FindTarjan runs a single
// DFS pass maintaining discovery indices and low-links against an
// explicit component stack; FindKosaraju runs one DFS pass to record a
// finishing order, then a second pass over the transposed graph in
// reverse finishing order. Both produce the same partition of vertices;
// only the order in which groups (and members within a group) appear
// may differ, and that order carries no meaning.
//
// The condensation gives every component one vertex whose ID is the
// component index, whose name encodes the component size, and whose
// duration is the sum of member durations. Multiple original edges
// between the same pair of components collapse to a single edge with
// the first-seen weight. The condensation of any graph is acyclic, so
// it can be handed straight to the toposort and dagpath packages when
// the original graph is cyclic.
//
// Both DFS passes use explicit work stacks, so component detection is
// safe on arbitrarily deep graphs.
//
// Complexity:
//
//   - Time:   O(V + E) for either algorithm, plus O(V + E) for the condensation.
//   - Memory: O(V).
package scc
