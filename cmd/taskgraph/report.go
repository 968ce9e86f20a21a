package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/dagpath"
	"github.com/citygrid/taskgraph/metrics"
	"github.com/citygrid/taskgraph/scc"
	"github.com/citygrid/taskgraph/toposort"
)

// analyze runs the full pipeline over g and prints a report: shape
// statistics, strongly connected components, a topological or
// component-level order, and the critical path when the graph is
// acyclic.
func analyze(w io.Writer, g *core.Graph) error {
	reg := metrics.New()

	printStats(w, g.Stats())

	finder, err := scc.New(g)
	if err != nil {
		return err
	}
	components := finder.FindTarjan()
	reg.RecordSCC(finder.Metrics())
	crossCheckKosaraju(g, len(components))
	printComponents(w, components)

	if err := printOrder(w, g, finder, reg); err != nil {
		return err
	}

	if err := printCriticalPath(w, g, reg); err != nil {
		return err
	}

	return reg.Report(w)
}

// printStats renders the graph statistics block.
func printStats(w io.Writer, s core.Stats) {
	fmt.Fprintln(w, "=== GRAPH STATISTICS ===")
	fmt.Fprintf(w, "Vertices:      %d\n", s.VertexCount)
	fmt.Fprintf(w, "Edges:         %d\n", s.EdgeCount)
	fmt.Fprintf(w, "Density:       %.4f\n", s.Density)
	fmt.Fprintf(w, "Cyclic:        %t\n", s.HasCycle)
	fmt.Fprintf(w, "Connected:     %t\n", s.Connected)
	fmt.Fprintf(w, "Cost mode:     %s\n", costMode(s.UseNodeDurations))
	fmt.Fprintf(w, "Max in/out:    %d/%d\n", s.MaxInDegree, s.MaxOutDegree)

	kinds := make([]core.TaskKind, 0, len(s.KindDistribution))
	for k := range s.KindDistribution {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-14s %d\n", k.DisplayName()+":", s.KindDistribution[k])
	}
	fmt.Fprintln(w)
}

func costMode(useNodeDurations bool) string {
	if useNodeDurations {
		return "task durations"
	}
	return "edge weights"
}

// crossCheckKosaraju reruns component detection with the second
// algorithm and debug-logs a mismatch. Both passes must agree on the
// partition size; a disagreement indicates graph mutation mid-analysis.
func crossCheckKosaraju(g *core.Graph, want int) {
	finder, err := scc.New(g)
	if err != nil {
		return
	}
	if got := len(finder.FindKosaraju()); got != want {
		slog.Warn("component partitions disagree", "tarjan", want, "kosaraju", got)
	}
}

// printComponents renders the strongly connected component partition,
// largest group first, singletons summarized on one line.
func printComponents(w io.Writer, components [][]*core.Vertex) {
	fmt.Fprintf(w, "=== STRONGLY CONNECTED COMPONENTS (%d) ===\n", len(components))

	sorted := make([][]*core.Vertex, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	singletons := 0
	for _, comp := range sorted {
		if len(comp) == 1 {
			singletons++
			continue
		}
		fmt.Fprintf(w, "  [%s]\n", joinIDs(comp))
	}
	if singletons > 0 {
		fmt.Fprintf(w, "  %d singleton component(s)\n", singletons)
	}
	fmt.Fprintln(w)
}

// printOrder renders a vertex order. Acyclic graphs get a direct Kahn
// sort; cyclic graphs fall back to the component-level order derived
// from the condensation.
func printOrder(w io.Writer, g *core.Graph, finder *scc.Finder, reg *metrics.Registry) error {
	sorter, err := toposort.New(g)
	if err != nil {
		return err
	}

	order, err := sorter.SortKahn()
	switch {
	case err == nil:
		reg.RecordSort(sorter.Metrics())
		fmt.Fprintln(w, "=== TOPOLOGICAL ORDER ===")
	case errors.Is(err, toposort.ErrCycleDetected):
		reg.RecordSort(sorter.Metrics())
		slog.Debug("graph is cyclic, ordering components instead")
		order, err = sorter.CompleteOrder(finder)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "=== COMPONENT ORDER (graph is cyclic) ===")
	default:
		return err
	}

	fmt.Fprintf(w, "  %s\n\n", joinIDs(order))
	return nil
}

// printCriticalPath renders the critical path. Cyclic graphs have no
// meaningful longest path, so the section is skipped with a note.
func printCriticalPath(w io.Writer, g *core.Graph, reg *metrics.Registry) error {
	fmt.Fprintln(w, "=== CRITICAL PATH ===")

	solver, err := dagpath.New(g)
	if err != nil {
		if errors.Is(err, dagpath.ErrCyclicGraph) {
			fmt.Fprintln(w, "  skipped: graph contains cycles")
			fmt.Fprintln(w)
			return nil
		}
		return err
	}

	result, err := solver.CriticalPath()
	if err != nil {
		return err
	}
	reg.RecordPaths(solver.Metrics())
	if !result.Empty() {
		reg.Inc(metrics.PathReconstructions)
	}

	if result.Empty() {
		fmt.Fprintln(w, "  empty graph")
		fmt.Fprintln(w)
		return nil
	}

	fmt.Fprintf(w, "  %s\n", result)
	for _, v := range result.Path {
		fmt.Fprintf(w, "  %3d  %-24s %s (%d)\n", v.ID(), v.Name(), v.Kind().DisplayName(), v.Duration())
	}
	fmt.Fprintln(w)
	return nil
}

// joinIDs formats vertex IDs as a comma-separated list.
func joinIDs(vs []*core.Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v.ID())
	}
	return strings.Join(parts, ", ")
}
