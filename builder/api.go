package builder

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors wrapped with method context, and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with the given graph options,
// resolves the builder configuration, and applies all constructors in
// order. The first constructor error aborts the build; no partial
// cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addTaskVertices inserts vertices 0..n-1 with generated names, kinds and
// durations. Shared by every topology constructor.
func addTaskVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		kind := randomKind(cfg.rng)
		name := cfg.nameFn(cfg.rng, kind)
		duration := randomIn(cfg.rng, cfg.minDuration, cfg.maxDuration)
		if _, err := g.AddVertex(int64(i), name,
			core.WithDuration(duration), core.WithKind(kind)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return nil
}
