package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/citygrid/taskgraph/dagpath"
	"github.com/citygrid/taskgraph/scc"
	"github.com/citygrid/taskgraph/toposort"
)

// Timer names used by the Record helpers.
const (
	TimerSCC      = "scc"
	TimerToposort = "toposort"
	TimerDAGPath  = "dagpath"
)

// Snapshot is a point-in-time copy of the registry contents.
type Snapshot struct {
	Counters map[string]int64
	Timers   map[string]time.Duration
	Custom   map[string]any
	Uptime   time.Duration
}

// Snapshot copies the current registry state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Snapshot{
		Counters: make(map[string]int64, len(r.counters)),
		Timers:   make(map[string]time.Duration, len(r.timers)),
		Custom:   make(map[string]any, len(r.custom)),
		Uptime:   time.Since(r.created),
	}
	for name, c := range r.counters {
		s.Counters[name] = c.Load()
	}
	for name, d := range r.timers {
		s.Timers[name] = d
	}
	for name, v := range r.custom {
		s.Custom[name] = v
	}

	return s
}

// Report writes a sorted plain-text summary of the registry to w.
func (r *Registry) Report(w io.Writer) error {
	s := r.Snapshot()

	if _, err := fmt.Fprintf(w, "=== METRICS REPORT ===\nuptime: %s\n\ncounters:\n", s.Uptime.Round(time.Millisecond)); err != nil {
		return err
	}
	for _, name := range sortedKeys(s.Counters) {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", name, s.Counters[name]); err != nil {
			return err
		}
	}

	if len(s.Timers) > 0 {
		if _, err := fmt.Fprintf(w, "\ntimers:\n"); err != nil {
			return err
		}
		for _, name := range sortedKeys(s.Timers) {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", name, s.Timers[name]); err != nil {
				return err
			}
		}
	}

	if len(s.Custom) > 0 {
		if _, err := fmt.Fprintf(w, "\ncustom:\n"); err != nil {
			return err
		}
		for _, name := range sortedKeys(s.Custom) {
			if _, err := fmt.Fprintf(w, "  %s: %v\n", name, s.Custom[name]); err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// RecordSCC accumulates one SCC run into the registry.
func (r *Registry) RecordSCC(m scc.Metrics) {
	r.Add(DFSVisits, int64(m.DFSVisits))
	r.Add(EdgesTraversed, int64(m.EdgesTraversed))
	r.Set(SCCComponents, int64(m.Components))
	r.RecordTiming(TimerSCC, m.Elapsed)
}

// RecordSort accumulates one topological sort run into the registry.
func (r *Registry) RecordSort(m toposort.Metrics) {
	r.Add(TopologicalOperations, int64(m.Operations))
	r.Add(KahnPops, int64(m.Pops))
	r.Add(KahnPushes, int64(m.Pushes))
	if m.CycleFound {
		r.Inc(CycleDetections)
	}
	r.RecordTiming(TimerToposort, m.Elapsed)
}

// RecordPaths accumulates one path-solver run into the registry.
func (r *Registry) RecordPaths(m dagpath.Metrics) {
	r.Add(Relaxations, int64(m.Relaxations))
	r.Add(TopologicalOperations, int64(m.TopologicalOperations))
	r.RecordTiming(TimerDAGPath, m.Elapsed)
}
