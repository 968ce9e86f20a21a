package dagpath

import "github.com/citygrid/taskgraph/core"

// stepCost computes the cost a single edge contributes to a path.
type stepCost func(g *core.Graph, e *core.Edge) int64

// costKey selects one of the four (graph mode, search direction) strategies.
type costKey struct {
	nodeDurations bool
	longest       bool
}

// stepCosts is the full strategy table. Keeping the four combinations
// explicit makes each relaxation rule auditable on its own:
//
//   - durations+shortest falls back to the edge weight, since a shortest
//     search still needs a per-edge cost field.
//   - durations+longest charges the from-vertex's duration and ignores the
//     edge weight entirely, which is what critical-path analysis wants.
//   - weights+longest negates the weight so the same forward relaxation
//     loop serves both directions.
var stepCosts = map[costKey]stepCost{
	{nodeDurations: true, longest: false}: func(_ *core.Graph, e *core.Edge) int64 {
		return e.Weight
	},
	{nodeDurations: true, longest: true}: func(g *core.Graph, e *core.Edge) int64 {
		return g.Duration(e.From)
	},
	{nodeDurations: false, longest: false}: func(_ *core.Graph, e *core.Edge) int64 {
		return e.Weight
	},
	{nodeDurations: false, longest: true}: func(_ *core.Graph, e *core.Edge) int64 {
		return -e.Weight
	},
}

// stepCostFor picks the strategy for the graph's mode and the direction.
func stepCostFor(g *core.Graph, longest bool) stepCost {
	return stepCosts[costKey{nodeDurations: g.UseNodeDurations(), longest: longest}]
}
