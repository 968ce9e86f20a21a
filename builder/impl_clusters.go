package builder

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
)

const methodClusters = "Clusters"

// Clusters returns a Constructor that plants exactly `components`
// strongly connected clusters over n vertices. Vertices are split into
// contiguous blocks, each block is closed into a directed ring (plus a
// few extra internal edges), and additional edges run only from lower
// blocks to higher blocks, so the clusters stay the only cycles and the
// condensation of the result is a DAG over `components` vertices.
func Clusters(n, components int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodClusters, n, ErrTooFewVertices)
		}
		if components < 1 || components > n {
			return fmt.Errorf("%s: %d components over %d vertices: %w",
				methodClusters, components, n, ErrTooManyComponents)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodClusters, ErrNeedRandSource)
		}

		if err := addTaskVertices(methodClusters, g, cfg, n); err != nil {
			return err
		}

		blocks := splitContiguous(n, components)
		for _, block := range blocks {
			if err := closeRing(methodClusters, g, cfg, block); err != nil {
				return err
			}
		}

		return linkBlocks(methodClusters, g, cfg, blocks)
	}
}

// splitContiguous partitions 0..n-1 into k contiguous blocks whose sizes
// differ by at most one, earlier blocks taking the remainder.
func splitContiguous(n, k int) [][]int64 {
	base, remainder := n/k, n%k
	blocks := make([][]int64, k)
	next := int64(0)
	for i := 0; i < k; i++ {
		size := base
		if i < remainder {
			size++
		}
		block := make([]int64, size)
		for j := range block {
			block[j] = next
			next++
		}
		blocks[i] = block
	}

	return blocks
}

// closeRing makes one block strongly connected: a directed ring through
// every member, then a quarter of the possible internal edges on top.
// A single vertex is trivially strongly connected and left alone.
func closeRing(method string, g *core.Graph, cfg builderConfig, block []int64) error {
	size := len(block)
	if size == 1 {
		return nil
	}

	for i, from := range block {
		to := block[(i+1)%size]
		weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
		if _, err := g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("%s: ring AddEdge(%d→%d): %w", method, from, to, err)
		}
	}

	extra := size * (size - 1) / 4
	for i := 0; i < extra; i++ {
		from := block[cfg.rng.Intn(size)]
		to := block[cfg.rng.Intn(size)]
		if from == to || g.EdgeWeight(from, to) != 0 {
			continue
		}
		weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
		if _, err := g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("%s: extra AddEdge(%d→%d): %w", method, from, to, err)
		}
	}

	return nil
}

// linkBlocks draws edges between distinct blocks, always from a lower
// block index to a higher one, so no cycle can span two blocks.
func linkBlocks(method string, g *core.Graph, cfg builderConfig, blocks [][]int64) error {
	attempts := len(blocks) * 2
	for i := 0; i < attempts; i++ {
		fromBlock := cfg.rng.Intn(len(blocks))
		toBlock := cfg.rng.Intn(len(blocks))
		if fromBlock >= toBlock {
			continue
		}

		from := blocks[fromBlock][cfg.rng.Intn(len(blocks[fromBlock]))]
		to := blocks[toBlock][cfg.rng.Intn(len(blocks[toBlock]))]
		if g.EdgeWeight(from, to) != 0 {
			continue
		}
		weight := randomIn(cfg.rng, cfg.minWeight, cfg.maxWeight)
		if _, err := g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("%s: link AddEdge(%d→%d): %w", method, from, to, err)
		}
	}

	return nil
}
