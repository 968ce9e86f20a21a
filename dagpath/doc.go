// Package dagpath computes single-source shortest and longest paths on
// directed acyclic task graphs, and derives the overall critical path.
//
// Overview:
//
//   - A Solver is bound to one acyclic *core.Graph at construction; a graph
//     containing any cycle (including a self-loop) is rejected up front.
//   - Distances are computed by relaxing edges in topological order, which
//     handles negative step costs and runs in O(V + E) after the sort.
//   - ShortestFrom and LongestFrom return a Result with a distance map and,
//     when WithPaths is set, a predecessor map for path reconstruction.
//   - CriticalPath tries every source vertex (in-degree 0), runs the
//     longest-path relaxation with predecessor tracking, and keeps the single
//     best (source, sink, length, path) over all sources and sinks.
//
// Step cost:
//
// The cost contributed by an edge depends on the graph mode and the search
// direction. The four combinations are encoded in an explicit strategy table
// (see stepcost.go) rather than inline conditionals:
//
//   - node durations, shortest: the edge weight.
//   - node durations, longest:  the duration of the edge's from-vertex.
//   - edge weights, shortest:   the edge weight.
//   - edge weights, longest:    the negated edge weight.
//
// In node-duration mode the critical-path length additionally includes the
// sink vertex's own duration, so the reported length is the total duration
// of every task on the path.
//
// Unreachability:
//
// A vertex whose distance is still UnreachableShortest (shortest mode) or
// UnreachableLongest (longest mode) after the run cannot be reached from the
// source. Relaxation never starts from such a vertex, in either direction.
//
// Complexity:
//
//	– Time:  O(V + E) per ShortestFrom/LongestFrom call (after a Kahn sort,
//	         itself O(V + E)); CriticalPath multiplies by the source count.
//	– Space: O(V) for the distance and predecessor maps.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the provided graph pointer is nil.
//   - ErrCyclicGraph    if the graph contains a cycle.
//   - ErrVertexNotFound if the requested source vertex does not exist.
//   - ErrNoPredecessors if path reconstruction is requested on a Result
//     computed without WithPaths.
package dagpath
