package dagpath

import (
	"math"
	"time"
)

// CriticalPath finds the longest path between any source (in-degree 0) and
// any reachable sink over the whole graph. Ties keep the first candidate in
// iteration order: sources by ascending ID, then sinks by ascending ID.
//
// In node-duration mode the reported length includes the sink vertex's own
// duration, so it equals the total duration of every task on the path.
func (s *Solver) CriticalPath() (*CriticalPathResult, error) {
	start := time.Now()

	best := &CriticalPathResult{SourceID: -1, SinkID: -1}
	bestLength := int64(math.MinInt64)
	aggregate := Metrics{}

	for _, source := range s.sorter.Sources() {
		result, err := s.LongestFrom(source.ID(), WithPaths())
		if err != nil {
			return nil, err
		}
		aggregate.Relaxations += s.metrics.Relaxations
		aggregate.TopologicalOperations += s.metrics.TopologicalOperations

		for _, sinkID := range s.graph.VertexIDs() {
			distance := result.Distances[sinkID]
			if distance == UnreachableLongest {
				continue
			}
			length := distance
			if s.graph.UseNodeDurations() {
				length += s.graph.Duration(sinkID)
			}
			if length <= bestLength {
				continue
			}
			path, err := s.ReconstructPath(result, sinkID)
			if err != nil {
				return nil, err
			}
			bestLength = length
			best = &CriticalPathResult{
				Path:     path,
				Length:   length,
				SourceID: source.ID(),
				SinkID:   sinkID,
			}
		}
	}

	aggregate.Elapsed = time.Since(start)
	s.metrics = aggregate

	if best.SourceID == -1 {
		best.Length = 0
	}

	return best, nil
}
