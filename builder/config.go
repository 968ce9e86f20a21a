package builder

import (
	"math/rand"

	"github.com/citygrid/taskgraph/core"
)

// builderConfig aggregates all generation knobs. It is resolved once per
// BuildGraph call and passed to constructors by value.
type builderConfig struct {
	// rng drives every stochastic choice; nil means no randomness, which
	// stochastic constructors reject with ErrNeedRandSource.
	rng *rand.Rand

	// Inclusive duration range for generated vertices.
	minDuration int64
	maxDuration int64

	// Inclusive weight range for generated edges.
	minWeight int64
	maxWeight int64

	// nameFn renders the display name for a generated task.
	nameFn func(r *rand.Rand, kind core.TaskKind) string
}

// Deterministic defaults. The ranges mirror the typical city-maintenance
// workloads the generators are modelled after.
const (
	defaultMinDuration = int64(1)
	defaultMaxDuration = int64(10)
	defaultMinWeight   = int64(1)
	defaultMaxWeight   = int64(5)
)

// taskKinds are the categories assigned to generated vertices, cycled
// through deterministically under a fixed seed.
var taskKinds = []core.TaskKind{
	core.KindStreetCleaning,
	core.KindRepairs,
	core.KindMaintenance,
	core.KindSensorMonitoring,
	core.KindDataAnalytics,
	core.KindTransport,
	core.KindSafety,
	core.KindUtilities,
}

// taskLocations complete the generated task names.
var taskLocations = []string{
	"Downtown",
	"Suburbs",
	"Industrial Zone",
	"Residential Area",
	"City Center",
	"Park",
	"Highway",
	"Bridge",
}

// newBuilderConfig applies options in order over the defaults; later
// options override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		minDuration: defaultMinDuration,
		maxDuration: defaultMaxDuration,
		minWeight:   defaultMinWeight,
		maxWeight:   defaultMaxWeight,
		nameFn:      defaultTaskName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultTaskName renders "<Kind display name>: <location>", picking the
// location from the shared table. A nil RNG always picks the first entry.
func defaultTaskName(r *rand.Rand, kind core.TaskKind) string {
	location := taskLocations[0]
	if r != nil {
		location = taskLocations[r.Intn(len(taskLocations))]
	}

	return kind.DisplayName() + ": " + location
}

// randomKind picks a task kind; a nil RNG yields the first entry.
func randomKind(r *rand.Rand) core.TaskKind {
	if r == nil {
		return taskKinds[0]
	}

	return taskKinds[r.Intn(len(taskKinds))]
}

// randomIn draws uniformly from the inclusive range [lo, hi].
// A nil RNG collapses to lo.
func randomIn(r *rand.Rand, lo, hi int64) int64 {
	if r == nil || hi <= lo {
		return lo
	}

	return lo + r.Int63n(hi-lo+1)
}
