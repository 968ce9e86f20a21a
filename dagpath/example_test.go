// Package dagpath_test provides runnable examples for the DAG path solver.
package dagpath_test

import (
	"fmt"

	"github.com/citygrid/taskgraph/core"

	"github.com/citygrid/taskgraph/dagpath"
)

// ExampleSolver_CriticalPath finds the heaviest duration-weighted route
// through a five-task diamond.
// Complexity: O(S·(V+E)) over the S in-degree-0 sources.
func ExampleSolver_CriticalPath() {
	// 1) Build the diamond in node-duration mode (the default).
	g := core.NewGraph()
	durations := []int64{2, 3, 1, 4, 2}
	for id, d := range durations {
		g.AddVertex(int64(id), fmt.Sprintf("task-%d", id), core.WithDuration(d))
	}
	// 2) Wire the two branches: 0→1→3 and 0→2→3, both ending in 3→4.
	for _, e := range [][2]int64{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		g.AddEdge(e[0], e[1], 0)
	}

	// 3) The constructor rejects cyclic graphs up front.
	solver, err := dagpath.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The 0→1→3→4 branch wins: 2+3+4+2 beats 2+1+4+2.
	result, err := solver.CriticalPath()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: CriticalPath{length=11, vertices=4, source=0, sink=4}
}

// ExampleSolver_ShortestFrom computes single-source shortest distances
// over edge weights and reconstructs one path.
// Complexity: O(V+E) after the embedded topological sort.
func ExampleSolver_ShortestFrom() {
	// 1) Edge-weight mode costs every step by the edge itself.
	g := core.NewGraph(core.WithEdgeWeights())
	for id := int64(0); id < 4; id++ {
		g.AddVertex(id, fmt.Sprintf("task-%d", id))
	}
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 3, 4)
	g.AddEdge(2, 3, 1)

	solver, err := dagpath.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) WithPaths retains the predecessor map for reconstruction.
	result, err := solver.ShortestFrom(0, dagpath.WithPaths())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) 0→1→3 costs 6; the 0→2→3 alternative also costs 6 but relaxes later.
	path, err := solver.ReconstructPath(result, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range path {
		fmt.Printf("%d ", v.ID())
	}
	fmt.Printf("dist=%d\n", result.DistanceTo(3))
	// Output: 0 1 3 dist=6
}
