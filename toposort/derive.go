package toposort

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/scc"
)

// Sources returns every vertex with in-degree 0, sorted by ID.
func (s *Sorter) Sources() []*core.Vertex {
	var out []*core.Vertex
	for _, id := range s.graph.VertexIDs() {
		if s.graph.InDegree(id) == 0 {
			v, _ := s.graph.Vertex(id)
			out = append(out, v)
		}
	}

	return out
}

// Sinks returns every vertex with out-degree 0, sorted by ID.
func (s *Sorter) Sinks() []*core.Vertex {
	var out []*core.Vertex
	for _, id := range s.graph.VertexIDs() {
		if s.graph.OutDegree(id) == 0 {
			v, _ := s.graph.Vertex(id)
			out = append(out, v)
		}
	}

	return out
}

// Levels assigns each vertex its dependency depth within the supplied
// topological order: 0 for sources, otherwise 1 plus the maximum level
// of any predecessor.
//
// The computation is a single forward pass and relies on the order
// being a valid topological order of this graph (predecessors always
// appear before successors); the result is undefined otherwise.
func (s *Sorter) Levels(order []*core.Vertex) map[int64]int {
	levels := make(map[int64]int, len(order))

	for _, v := range order {
		maxPred := -1
		for _, e := range s.graph.IncomingEdges(v.ID()) {
			if lvl, ok := levels[e.From]; ok && lvl > maxPred {
				maxPred = lvl
			}
		}
		levels[v.ID()] = maxPred + 1
	}

	return levels
}

// CondensationOrder computes the topological order of the finder's
// condensation graph and returns it as component indices.
//
// The condensation must already exist (BuildCondensation), otherwise
// ErrNoCondensation is returned. The condensation is acyclic by
// construction, so the underlying sort cannot fail on a cycle.
func (s *Sorter) CondensationOrder(f *scc.Finder) ([]int, error) {
	if f == nil {
		return nil, ErrNilFinder
	}
	cond := f.Condensation()
	if cond == nil {
		return nil, ErrNoCondensation
	}

	condSorter, err := New(cond)
	if err != nil {
		return nil, err
	}
	order, err := condSorter.SortKahn()
	if err != nil {
		return nil, fmt.Errorf("toposort: condensation sort: %w", err)
	}

	out := make([]int, 0, len(order))
	for _, v := range order {
		s.metrics.Operations++
		out = append(out, int(v.ID()))
	}

	return out, nil
}

// ExpandOrder inflates a component-index order back into the original
// graph's vertices, keeping each component's internal member grouping
// as produced by the finder. Unknown component indices are skipped.
func (s *Sorter) ExpandOrder(f *scc.Finder, componentOrder []int) []*core.Vertex {
	if f == nil {
		return nil
	}
	components := f.Components()

	var out []*core.Vertex
	for _, idx := range componentOrder {
		s.metrics.Operations++
		if idx < 0 || idx >= len(components) {
			continue
		}
		out = append(out, components[idx]...)
	}

	return out
}

// CompleteOrder produces a full ordering of the original graph even
// when it is cyclic: the condensation (built on demand) is sorted and
// expanded back to member vertices.
func (s *Sorter) CompleteOrder(f *scc.Finder) ([]*core.Vertex, error) {
	if f == nil {
		return nil, ErrNilFinder
	}
	if f.Condensation() == nil {
		if _, err := f.BuildCondensation(); err != nil {
			return nil, fmt.Errorf("toposort: building condensation: %w", err)
		}
	}

	componentOrder, err := s.CondensationOrder(f)
	if err != nil {
		return nil, err
	}

	return s.ExpandOrder(f, componentOrder), nil
}
