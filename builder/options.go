package builder

import (
	"math/rand"

	"github.com/citygrid/taskgraph/core"
)

// Option customizes a builderConfig before construction begins.
// Option constructors validate their arguments and panic on meaningless
// input; constructors themselves never panic at runtime.
type Option func(*builderConfig)

// WithSeed attaches a freshly seeded RNG. Use in tests and fixtures to
// lock generated topologies.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithDurationRange bounds generated vertex durations to [lo, hi].
// Panics when lo is negative or hi < lo.
func WithDurationRange(lo, hi int64) Option {
	if lo < 0 || hi < lo {
		panic("builder: WithDurationRange(lo, hi) requires 0 <= lo <= hi")
	}

	return func(c *builderConfig) {
		c.minDuration, c.maxDuration = lo, hi
	}
}

// WithWeightRange bounds generated edge weights to [lo, hi].
// Panics when hi < lo.
func WithWeightRange(lo, hi int64) Option {
	if hi < lo {
		panic("builder: WithWeightRange(lo, hi) requires lo <= hi")
	}

	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithNameFn overrides the task-name scheme. Panics on nil.
func WithNameFn(fn func(r *rand.Rand, kind core.TaskKind) string) Option {
	if fn == nil {
		panic("builder: WithNameFn(nil)")
	}

	return func(c *builderConfig) {
		c.nameFn = fn
	}
}
