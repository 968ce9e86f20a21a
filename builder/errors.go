package builder

import "errors"

// Sentinel errors for the builder package. Constructors wrap these with
// method context via %w; callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates a vertex count below the minimum the
	// requested constructor supports.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidDensity indicates a density outside the closed interval [0,1].
	ErrInvalidDensity = errors.New("builder: density out of range")

	// ErrNeedRandSource indicates that a stochastic constructor was run
	// without an RNG; set one with WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrTooManyComponents indicates a planted-cluster count larger than
	// the number of vertices available to fill the clusters.
	ErrTooManyComponents = errors.New("builder: component count exceeds vertex count")

	// ErrConstructFailed indicates a nil constructor or an unrecoverable
	// failure while assembling the graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
