package graphhcl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/taskgraph/core"
	"github.com/citygrid/taskgraph/graphhcl"
)

const fixture = `
graph {
  use_node_durations = true
}

task "0" {
  name        = "Street Cleaning: Downtown"
  duration    = 5
  kind        = STREET_CLEANING
  description = "morning shift"
}

task "1" {
  name     = "Repairs: City Center"
  duration = 3
  kind     = "REPAIRS"
}

dependency {
  from   = 0
  to     = 1
  weight = 2
  kind   = TASK_DEPENDENCY
}
`

// TestParse decodes tasks, dependencies and settings from one file.
func TestParse(t *testing.T) {
	g, err := graphhcl.Parse([]byte(fixture), "fixture.hcl")
	require.NoError(t, err)

	assert.True(t, g.UseNodeDurations())
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())

	v, ok := g.Vertex(0)
	require.True(t, ok)
	assert.Equal(t, "Street Cleaning: Downtown", v.Name())
	assert.Equal(t, int64(5), v.Duration())
	assert.Equal(t, core.KindStreetCleaning, v.Kind())
	assert.Equal(t, "morning shift", v.Description())

	// Quoted token decodes the same as the bare form.
	v, ok = g.Vertex(1)
	require.True(t, ok)
	assert.Equal(t, core.KindRepairs, v.Kind())

	e := g.Edges()[0]
	assert.Equal(t, int64(2), e.Weight)
	assert.Equal(t, core.DepTaskDependency, e.Kind)
}

// TestParse_EdgeWeightMode honors the graph settings block.
func TestParse_EdgeWeightMode(t *testing.T) {
	src := `
graph {
  use_node_durations = false
}

task "0" {
  name = "a"
}
`
	g, err := graphhcl.Parse([]byte(src), "mode.hcl")
	require.NoError(t, err)
	assert.False(t, g.UseNodeDurations())
}

// TestParse_DefaultsAndFallbacks covers optional attributes and unknown
// quoted kind tokens.
func TestParse_DefaultsAndFallbacks(t *testing.T) {
	src := `
task "3" {
  name = "bare minimum"
  kind = "TELEPORTATION"
}
`
	g, err := graphhcl.Parse([]byte(src), "minimal.hcl")
	require.NoError(t, err)

	v, ok := g.Vertex(3)
	require.True(t, ok)
	assert.Zero(t, v.Duration())
	assert.Equal(t, core.KindOther, v.Kind())
	assert.True(t, g.UseNodeDurations(), "no graph block keeps the default mode")
}

// TestParse_Failures covers syntax, label, duplicate and endpoint errors.
func TestParse_Failures(t *testing.T) {
	_, err := graphhcl.Parse([]byte(`task "0" {`), "broken.hcl")
	assert.Error(t, err)

	_, err = graphhcl.Parse([]byte("task \"north\" {\n  name = \"a\"\n}\n"), "label.hcl")
	assert.ErrorIs(t, err, graphhcl.ErrBadTaskLabel)

	dup := `
task "0" {
  name = "a"
}

task "0" {
  name = "b"
}
`
	_, err = graphhcl.Parse([]byte(dup), "dup.hcl")
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	dangling := `
task "0" {
  name = "a"
}

dependency {
  from = 0
  to   = 9
}
`
	_, err = graphhcl.Parse([]byte(dangling), "dangling.hcl")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestLoadDir reads *.hcl files in lexical order and skips the rest.
func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(fixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"),
		[]byte("task \"0\" {\n  name = \"solo\"\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.json"), []byte("{}"), 0o644))

	graphs, err := graphhcl.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	assert.Equal(t, 1, graphs[0].VertexCount(), "a.hcl first")
	assert.Equal(t, 2, graphs[1].VertexCount())
}
