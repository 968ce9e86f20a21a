// Package builder provides functional-options-style constructors for
// assembling task graphs: random graphs of a chosen density, guaranteed
// DAGs, graphs with planted strongly connected clusters, complete DAGs,
// and linear pipelines.
//
// The package follows one uniform shape:
//
//   - Constructor: a function that mutates a *core.Graph using the
//     resolved builderConfig. Constructors validate early, return
//     sentinel errors, and never panic at runtime.
//   - BuildGraph: the single orchestrator. It creates the graph, resolves
//     all options into an immutable builderConfig, and applies the
//     constructors in order.
//   - Options: WithSeed / WithRand freeze the random stream; duration and
//     weight ranges bound the generated values; WithNameFn overrides the
//     task-name scheme.
//
// Determinism: the same options, seed, and constructor order always
// produce an identical graph. Vertices are added in ascending ID order
// and edge trials follow a stable documented order, so fixtures in tests
// and examples can rely on exact topologies.
//
// Generated vertices carry realistic city-service names ("Repairs:
// Downtown", "Transport: Highway") with a matching task kind, and
// durations drawn uniformly from the configured range. Edge weights are
// drawn from the weight range regardless of the graph mode, since a
// node-duration graph still stores edge weights for shortest-path use.
//
// Errors (sentinel):
//
//   - ErrTooFewVertices    if a vertex count is below the constructor minimum.
//   - ErrInvalidDensity    if a density lies outside [0,1].
//   - ErrNeedRandSource    if a stochastic constructor runs without an RNG.
//   - ErrTooManyComponents if the cluster count exceeds the vertex count.
package builder
