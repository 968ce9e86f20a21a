// Package taskgraph analyzes task dependency networks: directed graphs
// whose vertices are tasks with durations and whose edges are typed
// dependencies.
//
// 🚀 What is taskgraph?
//
//	An in-memory analysis toolkit that brings together:
//		• Core primitives: tasks, typed dependencies, statistics snapshots
//		• Strongly connected components: Tarjan & Kosaraju + condensation
//		• Topological ordering: Kahn & DFS, with a component-level fallback
//		• DAG paths: shortest & longest distances, critical path extraction
//		• Generators: random, DAG, pipeline, complete and clustered graphs
//		• Persistence: JSON (with repair on decode) and HCL definitions
//
// ✨ Why choose taskgraph?
//
//   - Deterministic – every traversal iterates vertex IDs in sorted order
//   - Explicit costs – task durations or edge weights, chosen per graph
//   - Measured – every algorithm reports counters and wall time
//
// Everything is organized under focused subpackages:
//
//	core/      — Graph, Vertex, Edge types, kinds and statistics
//	scc/       — strongly connected components and the condensation
//	toposort/  — topological sorts, levels, sources and sinks
//	dagpath/   — DAG shortest/longest distances and the critical path
//	builder/   — seeded graph generators behind functional options
//	graphjson/ — JSON document codec with malformed-input repair
//	graphhcl/  — HCL graph definitions
//	metrics/   — a process-wide counter and timer registry
//
// Quick ASCII example:
//
//	    0───▶1
//	    │    │
//	    ▼    ▼
//	    2───▶3───▶4
//
//	a diamond of five tasks; the critical path is the longest
//	duration-weighted route from a source to a sink.
//
//	go get github.com/citygrid/taskgraph
package taskgraph
