package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygrid/taskgraph/core"
)

// TestNewVertex_Valid verifies construction with defaults and options.
func TestNewVertex_Valid(t *testing.T) {
	v, err := core.NewVertex(3, "  Repair: Bridge  ",
		core.WithDuration(7),
		core.WithKind(core.KindRepairs),
		core.WithDescription(" fix the north span "),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.ID())
	assert.Equal(t, "Repair: Bridge", v.Name(), "name must be trimmed")
	assert.Equal(t, int64(7), v.Duration())
	assert.Equal(t, core.KindRepairs, v.Kind())
	assert.Equal(t, "fix the north span", v.Description())
}

// TestNewVertex_NegativeID rejects negative identities.
func TestNewVertex_NegativeID(t *testing.T) {
	_, err := core.NewVertex(-1, "task")
	assert.ErrorIs(t, err, core.ErrNegativeID)
}

// TestNewVertex_EmptyName rejects names that trim to nothing.
func TestNewVertex_EmptyName(t *testing.T) {
	_, err := core.NewVertex(0, "   ")
	assert.ErrorIs(t, err, core.ErrEmptyName)
}

// TestVertex_SetName validates the trimmed-non-empty invariant on update.
func TestVertex_SetName(t *testing.T) {
	v, err := core.NewVertex(1, "old")
	require.NoError(t, err)

	require.NoError(t, v.SetName("  new  "))
	assert.Equal(t, "new", v.Name())

	assert.ErrorIs(t, v.SetName(" "), core.ErrEmptyName)
	assert.Equal(t, "new", v.Name(), "failed SetName must not clobber the old name")
}

// TestVertex_SetDuration clamps negatives to zero.
func TestVertex_SetDuration(t *testing.T) {
	v, err := core.NewVertex(1, "task", core.WithDuration(-5))
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Duration())

	v.SetDuration(12)
	assert.Equal(t, int64(12), v.Duration())
}

// TestVertex_SetKind falls back to KindOther on invalid input.
func TestVertex_SetKind(t *testing.T) {
	v, err := core.NewVertex(1, "task")
	require.NoError(t, err)

	v.SetKind(core.KindSafety)
	assert.Equal(t, core.KindSafety, v.Kind())

	v.SetKind(core.TaskKind(99))
	assert.Equal(t, core.KindOther, v.Kind())
}

// TestVertex_Equal compares identity only, never mutable fields.
func TestVertex_Equal(t *testing.T) {
	a, err := core.NewVertex(5, "alpha", core.WithDuration(1))
	require.NoError(t, err)
	b, err := core.NewVertex(5, "beta", core.WithDuration(9))
	require.NoError(t, err)
	c, err := core.NewVertex(6, "alpha", core.WithDuration(1))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

// TestVertex_Critical covers the duration and kind triggers.
func TestVertex_Critical(t *testing.T) {
	long, err := core.NewVertex(1, "long", core.WithDuration(11))
	require.NoError(t, err)
	assert.True(t, long.Critical())

	safety, err := core.NewVertex(2, "gas check", core.WithKind(core.KindSafety))
	require.NoError(t, err)
	assert.True(t, safety.Critical())

	plain, err := core.NewVertex(3, "sweep", core.WithDuration(2))
	require.NoError(t, err)
	assert.False(t, plain.Critical())
}

// TestTaskKind_Tokens round-trips every kind through its canonical token.
func TestTaskKind_Tokens(t *testing.T) {
	kinds := []core.TaskKind{
		core.KindOther, core.KindStreetCleaning, core.KindRepairs,
		core.KindMaintenance, core.KindSensorMonitoring, core.KindDataAnalytics,
		core.KindTransport, core.KindSafety, core.KindUtilities,
	}
	for _, k := range kinds {
		assert.Equal(t, k, core.ParseTaskKind(k.String()), "token %s", k)
	}
	assert.Equal(t, core.KindOther, core.ParseTaskKind("NO_SUCH_KIND"))
	assert.Equal(t, "Street Cleaning", core.KindStreetCleaning.DisplayName())
}

// TestDependencyKind_Tokens round-trips every dependency kind.
func TestDependencyKind_Tokens(t *testing.T) {
	kinds := []core.DependencyKind{
		core.DepOther, core.DepTaskDependency, core.DepResourceSharing,
		core.DepTemporalConstraint, core.DepDataFlow, core.DepPhysicalConstraint,
	}
	for _, d := range kinds {
		assert.Equal(t, d, core.ParseDependencyKind(d.String()), "token %s", d)
	}
	assert.Equal(t, core.DepOther, core.ParseDependencyKind("bogus"))
}
