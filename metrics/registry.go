package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Canonical counter names shared by the analysis packages.
const (
	DFSVisits             = "dfs_visits"
	EdgesTraversed        = "edges_traversed"
	Relaxations           = "relaxations"
	TopologicalOperations = "topological_operations"
	KahnPops              = "kahn_pops"
	KahnPushes            = "kahn_pushes"
	SCCComponents         = "scc_components"
	CycleDetections       = "cycle_detections"
	PathReconstructions   = "path_reconstructions"
)

// canonicalCounters are pre-registered so an empty registry still
// reports every well-known name with a zero value.
var canonicalCounters = []string{
	DFSVisits,
	EdgesTraversed,
	Relaxations,
	TopologicalOperations,
	KahnPops,
	KahnPushes,
	SCCComponents,
	CycleDetections,
	PathReconstructions,
}

// Registry aggregates counters, timers and custom values for one
// analysis session.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	timers   map[string]time.Duration
	starts   map[string]time.Time
	custom   map[string]any
	created  time.Time
}

// New returns a registry with every canonical counter registered at 0.
func New() *Registry {
	r := &Registry{
		counters: make(map[string]*atomic.Int64, len(canonicalCounters)),
		timers:   make(map[string]time.Duration),
		starts:   make(map[string]time.Time),
		custom:   make(map[string]any),
		created:  time.Now(),
	}
	for _, name := range canonicalCounters {
		r.counters[name] = new(atomic.Int64)
	}

	return r
}

// counter returns the named counter, creating it on first use.
func (r *Registry) counter(name string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.counters[name]; ok {
		return c
	}
	c = new(atomic.Int64)
	r.counters[name] = c

	return c
}

// Inc increments the named counter by 1.
func (r *Registry) Inc(name string) {
	r.counter(name).Add(1)
}

// Add increments the named counter by delta.
func (r *Registry) Add(name string, delta int64) {
	r.counter(name).Add(delta)
}

// Set overwrites the named counter.
func (r *Registry) Set(name string, value int64) {
	r.counter(name).Store(value)
}

// Counter returns the current value of the named counter, 0 if unknown.
func (r *Registry) Counter(name string) int64 {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if !ok {
		return 0
	}

	return c.Load()
}

// StartTimer marks the start of the named stopwatch.
func (r *Registry) StartTimer(name string) {
	r.mu.Lock()
	r.starts[name] = time.Now()
	r.mu.Unlock()
}

// StopTimer records and returns the elapsed time since StartTimer.
// A stop without a matching start records nothing and returns 0.
func (r *Registry) StopTimer(name string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, ok := r.starts[name]
	if !ok {
		return 0
	}
	delete(r.starts, name)
	elapsed := time.Since(start)
	r.timers[name] = elapsed

	return elapsed
}

// RecordTiming stores an externally measured duration under name.
func (r *Registry) RecordTiming(name string, d time.Duration) {
	r.mu.Lock()
	r.timers[name] = d
	r.mu.Unlock()
}

// Elapsed returns the last recorded duration for name, 0 if none.
func (r *Registry) Elapsed(name string) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.timers[name]
}

// Measure times fn under the named timer and returns the elapsed time.
func (r *Registry) Measure(name string, fn func()) time.Duration {
	r.StartTimer(name)
	fn()

	return r.StopTimer(name)
}

// SetCustom stores a free-form metric value.
func (r *Registry) SetCustom(name string, value any) {
	r.mu.Lock()
	r.custom[name] = value
	r.mu.Unlock()
}

// Custom returns a free-form metric value and whether it was set.
func (r *Registry) Custom(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.custom[name]

	return v, ok
}

// Reset clears everything back to the canonical zero state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters = make(map[string]*atomic.Int64, len(canonicalCounters))
	for _, name := range canonicalCounters {
		r.counters[name] = new(atomic.Int64)
	}
	r.timers = make(map[string]time.Duration)
	r.starts = make(map[string]time.Time)
	r.custom = make(map[string]any)
	r.created = time.Now()
}
