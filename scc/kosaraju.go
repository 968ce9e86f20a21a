package scc

import (
	"time"

	"github.com/citygrid/taskgraph/core"
)

// kosarajuFrame is one suspended DFS call of the finishing-order pass.
type kosarajuFrame struct {
	id    int64
	edges []*core.Edge
	next  int
}

// FindKosaraju computes the strongly connected components with the
// two-pass algorithm: a first DFS over the original graph records the
// finishing order, then a second DFS over the transposed graph,
// processing vertices in reverse finishing order, grows one component
// per fresh tree.
//
// The partition is identical to FindTarjan's; group order differs.
// The result replaces any previous run's state.
func (f *Finder) FindKosaraju() [][]*core.Vertex {
	start := time.Now()
	f.reset()

	// Pass 1: postorder finishing times on the original graph.
	finishOrder := f.finishingOrder()

	// Pass 2: reverse finishing order over the transpose.
	transpose := f.graph.Transpose()
	visited := make(map[int64]bool, f.graph.VertexCount())

	for i := len(finishOrder) - 1; i >= 0; i-- {
		id := finishOrder[i]
		if visited[id] {
			continue
		}
		f.collectComponent(id, transpose, visited)
	}

	f.finish(start)

	return f.Components()
}

// finishingOrder runs an iterative full DFS and returns vertex IDs in
// the order they finished (postorder across all trees).
func (f *Finder) finishingOrder() []int64 {
	n := f.graph.VertexCount()
	visited := make(map[int64]bool, n)
	order := make([]int64, 0, n)

	for _, root := range f.graph.VertexIDs() {
		if visited[root] {
			continue
		}

		visited[root] = true
		f.metrics.DFSVisits++
		frames := []kosarajuFrame{{id: root, edges: f.graph.OutgoingEdges(root)}}

		for len(frames) > 0 {
			fr := &frames[len(frames)-1]

			if fr.next < len(fr.edges) {
				to := fr.edges[fr.next].To
				fr.next++
				f.metrics.EdgesTraversed++

				if !visited[to] {
					visited[to] = true
					f.metrics.DFSVisits++
					frames = append(frames, kosarajuFrame{id: to, edges: f.graph.OutgoingEdges(to)})
				}

				continue
			}

			// Vertex finished: record and pop.
			order = append(order, fr.id)
			frames = frames[:len(frames)-1]
		}
	}

	return order
}

// collectComponent grows one component from root by DFS over the
// transposed graph. Members resolve against the original graph so the
// returned groups share vertex instances with it.
func (f *Finder) collectComponent(root int64, transpose *core.Graph, visited map[int64]bool) {
	compIdx := len(f.components)
	var members []*core.Vertex

	stack := []int64{root}
	visited[root] = true

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.metrics.DFSVisits++
		f.componentOf[id] = compIdx
		v, _ := f.graph.Vertex(id)
		members = append(members, v)

		for _, e := range transpose.OutgoingEdges(id) {
			f.metrics.EdgesTraversed++
			if !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}

	f.components = append(f.components, members)
}
