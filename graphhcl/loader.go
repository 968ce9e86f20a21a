package graphhcl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/citygrid/taskgraph/core"
)

// ErrBadTaskLabel indicates a task block whose label is not a valid
// non-negative integer vertex ID.
var ErrBadTaskLabel = errors.New("graphhcl: task label must be a non-negative integer")

// fileRoot mirrors the top-level blocks of a graph file.
type fileRoot struct {
	Graph        *graphBlock        `hcl:"graph,block"`
	Tasks        []*taskBlock       `hcl:"task,block"`
	Dependencies []*dependencyBlock `hcl:"dependency,block"`
}

type graphBlock struct {
	UseNodeDurations *bool `hcl:"use_node_durations,optional"`
}

type taskBlock struct {
	Label       string `hcl:"id,label"`
	Name        string `hcl:"name"`
	Duration    int64  `hcl:"duration,optional"`
	Kind        string `hcl:"kind,optional"`
	Description string `hcl:"description,optional"`
}

type dependencyBlock struct {
	From        int64  `hcl:"from"`
	To          int64  `hcl:"to"`
	Weight      int64  `hcl:"weight,optional"`
	Kind        string `hcl:"kind,optional"`
	Description string `hcl:"description,optional"`
}

// Parse decodes HCL source into a graph. The filename is used only for
// diagnostics.
func Parse(src []byte, filename string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphhcl: parse %s: %w", filename, diags)
	}

	return decode(file, filename)
}

// LoadFile reads and decodes one graph file.
func LoadFile(path string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphhcl: parse %s: %w", path, diags)
	}

	return decode(file, path)
}

// LoadDir decodes every *.hcl file in dir, in lexical file-name order.
func LoadDir(dir string) ([]*core.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("graphhcl: read dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".hcl") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	graphs := make([]*core.Graph, 0, len(names))
	for _, name := range names {
		g, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

func decode(file *hcl.File, filename string) (*core.Graph, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(file.Body, kindEvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphhcl: decode %s: %w", filename, diags)
	}

	var gopts []core.GraphOption
	if root.Graph != nil && root.Graph.UseNodeDurations != nil && !*root.Graph.UseNodeDurations {
		gopts = append(gopts, core.WithEdgeWeights())
	}
	g := core.NewGraph(gopts...)

	for _, task := range root.Tasks {
		id, err := strconv.ParseInt(task.Label, 10, 64)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrBadTaskLabel, task.Label, filename)
		}
		_, err = g.AddVertex(id, task.Name,
			core.WithDuration(task.Duration),
			core.WithKind(core.ParseTaskKind(task.Kind)),
			core.WithDescription(task.Description))
		if err != nil {
			return nil, fmt.Errorf("graphhcl: task %q in %s: %w", task.Label, filename, err)
		}
	}

	for _, dep := range root.Dependencies {
		_, err := g.AddEdge(dep.From, dep.To, dep.Weight,
			core.WithEdgeKind(core.ParseDependencyKind(dep.Kind)),
			core.WithEdgeDescription(dep.Description))
		if err != nil {
			return nil, fmt.Errorf("graphhcl: dependency %d→%d in %s: %w",
				dep.From, dep.To, filename, err)
		}
	}

	return g, nil
}

// kindEvalContext exposes every kind token as a variable bound to its
// own name, so tokens can be written without quotes.
func kindEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for k := core.KindOther; k.Valid(); k++ {
		vars[k.String()] = cty.StringVal(k.String())
	}
	for d := core.DepOther; d.Valid(); d++ {
		vars[d.String()] = cty.StringVal(d.String())
	}

	return &hcl.EvalContext{Variables: vars}
}
