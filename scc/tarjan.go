package scc

import (
	"time"

	"github.com/citygrid/taskgraph/core"
)

// tarjanFrame is one suspended DFS call of the index/low-link walk:
// the vertex, its outgoing edges, and a cursor into them.
type tarjanFrame struct {
	id    int64
	edges []*core.Edge
	next  int
}

// FindTarjan computes the strongly connected components with the
// index/low-link algorithm in a single DFS pass.
//
// Each vertex receives a discovery index and a low-link, the smallest
// index reachable through its DFS subtree and back-edges into the
// component stack. A vertex whose low-link equals its own index roots a
// completed component, which is popped off the stack down to and
// including itself. The recursion is encoded as explicit frames.
//
// The result replaces any previous run's state.
func (f *Finder) FindTarjan() [][]*core.Vertex {
	start := time.Now()
	f.reset()

	n := f.graph.VertexCount()
	index := make(map[int64]int, n)
	lowlink := make(map[int64]int, n)
	onStack := make(map[int64]bool, n)
	compStack := make([]int64, 0, n)
	counter := 0

	// Sorted roots keep component numbering deterministic per input.
	for _, root := range f.graph.VertexIDs() {
		if _, seen := index[root]; !seen {
			counter = f.strongConnect(root, counter, index, lowlink, onStack, &compStack)
		}
	}

	f.finish(start)

	return f.Components()
}

// strongConnect explores one DFS tree rooted at root and emits every
// component completed within it. Returns the advanced index counter.
func (f *Finder) strongConnect(
	root int64,
	counter int,
	index, lowlink map[int64]int,
	onStack map[int64]bool,
	compStack *[]int64,
) int {
	discover := func(id int64) {
		f.metrics.DFSVisits++
		index[id] = counter
		lowlink[id] = counter
		counter++
		*compStack = append(*compStack, id)
		onStack[id] = true
	}

	discover(root)
	frames := []tarjanFrame{{id: root, edges: f.graph.OutgoingEdges(root)}}

	for len(frames) > 0 {
		fr := &frames[len(frames)-1]

		// 1. Advance to the next unexamined edge, if any.
		if fr.next < len(fr.edges) {
			to := fr.edges[fr.next].To
			fr.next++
			f.metrics.EdgesTraversed++

			if _, seen := index[to]; !seen {
				// Tree edge: descend.
				discover(to)
				frames = append(frames, tarjanFrame{id: to, edges: f.graph.OutgoingEdges(to)})
			} else if onStack[to] {
				// Back/cross edge into the current stack: pull the
				// neighbor's index into our low-link.
				if index[to] < lowlink[fr.id] {
					lowlink[fr.id] = index[to]
				}
			}

			continue
		}

		// 2. Frame exhausted: maybe emit a component, then return to
		//    the parent, propagating the low-link.
		if lowlink[fr.id] == index[fr.id] {
			f.popComponent(fr.id, onStack, compStack)
		}
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := &frames[len(frames)-1]
			if lowlink[fr.id] < lowlink[parent.id] {
				lowlink[parent.id] = lowlink[fr.id]
			}
		}
	}

	return counter
}

// popComponent pops the component stack down to and including root and
// records the group.
func (f *Finder) popComponent(root int64, onStack map[int64]bool, compStack *[]int64) {
	compIdx := len(f.components)
	var members []*core.Vertex

	for {
		top := (*compStack)[len(*compStack)-1]
		*compStack = (*compStack)[:len(*compStack)-1]
		onStack[top] = false
		f.componentOf[top] = compIdx

		v, _ := f.graph.Vertex(top)
		members = append(members, v)

		if top == root {
			break
		}
	}

	f.components = append(f.components, members)
}
