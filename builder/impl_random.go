package builder

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
)

const (
	methodRandom      = "Random"
	minRandomVertices = 1
	densityMin        = 0.0
	densityMax        = 1.0
)

// Random returns a Constructor that samples a directed task graph over n
// vertices, targeting density*n*(n-1) edges. Self-loops and duplicate
// edges are never generated; cycles may occur. Edge trials draw (from,
// to) pairs from the RNG until the target is met or the attempt budget
// is exhausted, so the result is deterministic for a fixed seed.
func Random(n int, density float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandom, n, minRandomVertices, ErrTooFewVertices)
		}
		if density < densityMin || density > densityMax {
			return fmt.Errorf("%s: density=%.3f not in [%.1f,%.1f]: %w",
				methodRandom, density, densityMin, densityMax, ErrInvalidDensity)
		}
		if cfg.rng == nil && density > densityMin {
			return fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
		}

		if err := addTaskVertices(methodRandom, g, cfg, n); err != nil {
			return err
		}
		if density == densityMin || n == 1 {
			return nil
		}

		maxPossible := n * (n - 1)
		target := int(float64(maxPossible) * density)

		// The attempt budget bounds the rejection sampling: with many
		// duplicate draws on dense graphs the loop still terminates.
		created, attempts, maxAttempts := 0, 0, maxPossible*2
		seen := make(map[[2]int64]bool, target)
		for created < target && attempts < maxAttempts {
			attempts++
			from := int64(cfg.rng.Intn(n))
			to := int64(cfg.rng.Intn(n))
			if from == to || seen[[2]int64{from, to}] {
				continue
			}

			weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
			if _, err := g.AddEdge(from, to, weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandom, from, to, err)
			}
			seen[[2]int64{from, to}] = true
			created++
		}

		return nil
	}
}
