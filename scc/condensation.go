package scc

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
)

// BuildCondensation contracts each strongly connected component to a
// single vertex and returns the resulting graph.
//
// The condensation vertex for component i has ID i, a name encoding
// the component size, and the sum of member durations as its duration.
// For every original edge whose endpoints land in different components
// exactly one contracted edge is created per (source, destination)
// component pair; when several original edges map to the same pair,
// the first one seen supplies the weight and the rest are dropped.
//
// When no component run has happened yet, FindTarjan is executed first
// rather than failing. The costing mode of the original graph carries
// over to the condensation.
func (f *Finder) BuildCondensation() (*core.Graph, error) {
	// 0. Lazily default to the index/low-link algorithm.
	if f.components == nil {
		f.FindTarjan()
	}

	opts := []core.GraphOption{}
	if !f.graph.UseNodeDurations() {
		opts = append(opts, core.WithEdgeWeights())
	}
	cond := core.NewGraph(opts...)

	// 1. One vertex per component, duration = Σ member durations.
	for i, comp := range f.components {
		total := int64(0)
		for _, v := range comp {
			total += v.Duration()
		}
		name := fmt.Sprintf("SCC-%d (size: %d)", i, len(comp))
		if _, err := cond.AddVertex(int64(i), name, core.WithDuration(total)); err != nil {
			return nil, fmt.Errorf("scc: condensation vertex %d: %w", i, err)
		}
	}

	// 2. Contract inter-component edges, first-seen weight wins.
	type pair struct{ from, to int }
	added := make(map[pair]struct{})

	for fromComp, comp := range f.components {
		for _, v := range comp {
			for _, e := range f.graph.OutgoingEdges(v.ID()) {
				toComp := f.componentOf[e.To]
				if toComp == fromComp {
					continue
				}
				key := pair{from: fromComp, to: toComp}
				if _, dup := added[key]; dup {
					continue
				}
				added[key] = struct{}{}
				if _, err := cond.AddEdge(int64(fromComp), int64(toComp), e.Weight); err != nil {
					return nil, fmt.Errorf("scc: condensation edge %d→%d: %w", fromComp, toComp, err)
				}
			}
		}
	}

	f.condensation = cond

	return cond, nil
}
