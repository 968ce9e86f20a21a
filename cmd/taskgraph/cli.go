package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/citygrid/taskgraph/builder"
	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/graphhcl"
	"github.com/citygrid/taskgraph/graphjson"
)

// ErrUnknownShape is returned when the -shape flag names no generator.
var ErrUnknownShape = errors.New("taskgraph: unknown graph shape")

// ErrUnknownFormat is returned when an input file has an extension the
// loaders do not recognize.
var ErrUnknownFormat = errors.New("taskgraph: unknown input format")

// cliConfig collects the parsed command-line state.
type cliConfig struct {
	input       string
	shape       string
	vertices    int
	density     float64
	components  int
	seed        int64
	edgeWeights bool
	output      string
	verbose     bool
}

// parseArgs reads the flag set. The second return value is true when
// the invocation only asked for usage text and no work remains.
func parseArgs(outW io.Writer, args []string) (cliConfig, bool, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("taskgraph", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.StringVar(&cfg.input, "input", "", "load a graph from a .json or .hcl file instead of generating one")
	fs.StringVar(&cfg.shape, "shape", "dag", "generated graph shape: random, dag, pipeline, complete or clusters")
	fs.IntVar(&cfg.vertices, "vertices", 12, "vertex count for generated graphs")
	fs.Float64Var(&cfg.density, "density", 0.3, "edge density in [0,1] for random and dag shapes")
	fs.IntVar(&cfg.components, "components", 3, "component count for the clusters shape")
	fs.Int64Var(&cfg.seed, "seed", 1, "random seed for generated graphs")
	fs.BoolVar(&cfg.edgeWeights, "edge-weights", false, "cost edges by weight instead of task duration")
	fs.StringVar(&cfg.output, "output", "", "write the analyzed graph to this .json path")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprintln(outW, "Usage: taskgraph [flags]")
		fmt.Fprintln(outW, "Analyzes a task dependency graph: components, ordering and critical path.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}
		return cfg, false, err
	}
	return cfg, false, nil
}

// loadGraph produces the graph under analysis, either from an input
// file or from one of the builder constructors.
func loadGraph(cfg cliConfig) (*core.Graph, error) {
	if cfg.input != "" {
		switch strings.ToLower(filepath.Ext(cfg.input)) {
		case ".json":
			return graphjson.Load(cfg.input)
		case ".hcl":
			return graphhcl.LoadFile(cfg.input)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.input)
		}
	}

	var cons builder.Constructor
	switch cfg.shape {
	case "random":
		cons = builder.Random(cfg.vertices, cfg.density)
	case "dag":
		cons = builder.DAG(cfg.vertices, cfg.density)
	case "pipeline":
		cons = builder.Pipeline(cfg.vertices)
	case "complete":
		cons = builder.Complete(cfg.vertices)
	case "clusters":
		cons = builder.Clusters(cfg.vertices, cfg.components)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, cfg.shape)
	}

	var gopts []core.GraphOption
	if cfg.edgeWeights {
		gopts = append(gopts, core.WithEdgeWeights())
	}
	return builder.BuildGraph(gopts, []builder.Option{builder.WithSeed(cfg.seed)}, cons)
}
