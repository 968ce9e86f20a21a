package core

// Stats is a point-in-time snapshot of graph shape and connectivity,
// intended for quick admission checks and report output.
type Stats struct {
	// VertexCount and EdgeCount mirror the graph size.
	VertexCount int
	EdgeCount   int

	// Density is E / (V·(V−1)), 0 for graphs with fewer than two vertices.
	Density float64

	// HasCycle reports whether any directed cycle exists.
	HasCycle bool

	// Connected reports weak connectivity: every vertex reachable from
	// every other when edge direction is ignored.
	Connected bool

	// UseNodeDurations mirrors the graph costing mode.
	UseNodeDurations bool

	// MaxInDegree and MaxOutDegree are the largest degrees observed.
	MaxInDegree  int
	MaxOutDegree int

	// KindDistribution counts vertices per task kind.
	KindDistribution map[TaskKind]int
}

// Stats computes a statistics snapshot. The cycle and connectivity
// checks each traverse the graph, so this is an O(V·E) operation
// dominated by the in-degree scan; use it for reporting, not hot paths.
func (g *Graph) Stats() Stats {
	s := Stats{
		VertexCount:      len(g.vertices),
		EdgeCount:        len(g.edges),
		Density:          g.density(),
		HasCycle:         g.HasCycle(),
		Connected:        g.weaklyConnected(),
		UseNodeDurations: g.useNodeDurations,
		KindDistribution: make(map[TaskKind]int),
	}

	for id, v := range g.vertices {
		s.KindDistribution[v.Kind()]++
		if d := g.InDegree(id); d > s.MaxInDegree {
			s.MaxInDegree = d
		}
		if d := g.OutDegree(id); d > s.MaxOutDegree {
			s.MaxOutDegree = d
		}
	}

	return s
}

// density returns E / (V·(V−1)) for V ≥ 2, else 0.
func (g *Graph) density() float64 {
	n := len(g.vertices)
	if n <= 1 {
		return 0
	}

	return float64(len(g.edges)) / float64(n*(n-1))
}

// weaklyConnected reports whether the graph is connected when edge
// direction is ignored. Empty graphs count as connected.
func (g *Graph) weaklyConnected() bool {
	if len(g.vertices) == 0 {
		return true
	}

	// Build an undirected neighbor index once; IncomingEdges per vertex
	// would make this quadratic.
	neighbors := make(map[int64][]int64, len(g.vertices))
	for _, e := range g.edges {
		neighbors[e.From] = append(neighbors[e.From], e.To)
		neighbors[e.To] = append(neighbors[e.To], e.From)
	}

	start := g.VertexIDs()[0]
	seen := map[int64]struct{}{start: {}}
	queue := []int64{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors[id] {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}

	return len(seen) == len(g.vertices)
}
