package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

func TestSnapshot_IndexAddressed(t *testing.T) {
	g := newTriangle(t)
	v := g.Snapshot()

	require.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"A", "B", "C"}, v.Labels())
	assert.Equal(t, "B", v.Label(1))

	i, ok := v.Index("C")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	assert.Equal(t, 0.0, v.WeightAt(0, 0))
	assert.Equal(t, 1.0, v.WeightAt(0, 1))
	assert.Equal(t, 2.0, v.WeightAt(2, 1))
	assert.True(t, v.NonNegative())
	assert.Equal(t, g.Version(), v.Version())
}

func TestSnapshot_DedupesParallelAndDropsLoops(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddEdge("A", "B", 0.25))
	require.NoError(t, g.AddEdge("A", "A", 9))

	v := g.Snapshot()
	assert.Equal(t, []core.Arc{{To: 1, Weight: 1}, {To: 2, Weight: 5}}, v.Arcs(0))
	assert.Equal(t, 1.0, v.WeightAt(1, 0), "first matching edge wins from either side")
}

func TestSnapshot_FrozenAgainstLaterMutation(t *testing.T) {
	g := newTriangle(t)
	v := g.Snapshot()

	require.NoError(t, g.AddVertex("D"))
	require.NoError(t, g.AddEdge("C", "D", -1))

	assert.Equal(t, 3, v.Len())
	_, ok := v.Index("D")
	assert.False(t, ok)
	assert.True(t, v.NonNegative())
	assert.Len(t, v.Arcs(2), 2)
}

func TestSnapshot_AbsentIsInf(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddVertex("D"))

	v := g.Snapshot()
	assert.True(t, math.IsInf(v.WeightAt(0, 3), 1))
	assert.Empty(t, v.Arcs(3))
}
