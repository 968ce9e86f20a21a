package builder

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
)

const methodDAG = "DAG"

// DAG returns a Constructor that samples a random graph like Random and
// then prunes it to a guaranteed acyclic topology: every vertex gets a
// random rank, and only edges that run from a lower rank to a higher
// rank survive. The realized density therefore lands below the request,
// by roughly half on average.
func DAG(n int, density float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := Random(n, density)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodDAG, err)
		}

		// A random permutation of 0..n-1 acts as an implicit topological
		// order; edges against the order are removed.
		ranks := make([]int, n)
		for i := range ranks {
			ranks[i] = i
		}
		if cfg.rng != nil {
			cfg.rng.Shuffle(n, func(i, j int) {
				ranks[i], ranks[j] = ranks[j], ranks[i]
			})
		}

		var violating [][2]int64
		for _, e := range g.Edges() {
			if ranks[int(e.From)] >= ranks[int(e.To)] {
				violating = append(violating, [2]int64{e.From, e.To})
			}
		}
		for _, pair := range violating {
			g.RemoveEdge(pair[0], pair[1])
		}

		return nil
	}
}

// Pipeline returns a Constructor that builds a strict linear chain
// 0→1→…→n-1, the degenerate DAG with exactly one execution order.
func Pipeline(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Pipeline"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if err := addTaskVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
			if _, err := g.AddEdge(int64(i), int64(i+1), weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, i, i+1, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete DAG on n
// vertices: an edge i→j for every i < j. Useful as a worst-case input
// for relaxation and ordering benchmarks.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Complete"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if err := addTaskVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
				if _, err := g.AddEdge(int64(i), int64(j), weight); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, i, j, err)
				}
			}
		}

		return nil
	}
}
