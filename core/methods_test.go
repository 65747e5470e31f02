package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

// newTriangle builds A-B(1), B-C(2), A-C(5).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestAddVertex_IdempotentAndOrdered(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))

	assert.Equal(t, []string{"b", "a", "c"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())

	i, ok := g.IndexOf("a")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = g.IndexOf("zz")
	assert.False(t, ok)
}

func TestAddVertex_EmptyLabel(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
	assert.Zero(t, g.Version())
}

func TestAddEdge_MirroredOnBothEndpoints(t *testing.T) {
	g := newTriangle(t)

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "B", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, nb)

	w, err := g.Weight("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_UnknownEndpointLeavesGraphUntouched(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	before := g.Version()

	err := g.AddEdge("A", "ghost", 3)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "ghost")

	err = g.AddEdge("ghost", "A", 3)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, nb)
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, before, g.Version())
}

func TestAddEdge_BadWeight(t *testing.T) {
	g := newTriangle(t)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestNonNegative_IsSticky(t *testing.T) {
	g := newTriangle(t)
	assert.True(t, g.NonNegative())

	require.NoError(t, g.AddEdge("A", "B", -1))
	assert.False(t, g.NonNegative())

	require.NoError(t, g.AddEdge("B", "C", 10))
	assert.False(t, g.NonNegative(), "flag must never be restored")
}

func TestWeight_Semantics(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddVertex("D"))

	cases := []struct {
		name     string
		from, to string
		want     float64
	}{
		{"self is zero", "A", "A", 0},
		{"direct", "A", "B", 1},
		{"mirrored", "B", "A", 1},
		{"absent is +Inf", "A", "D", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := g.Weight(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w)
		})
	}

	_, err := g.Weight("A", "nope")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
}

func TestWeight_ParallelEdgesFirstMatchWins(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddEdge("A", "B", 0.5))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 4, g.EdgeCount())

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nb, 3, "parallel edges are all stored")
}

func TestSelfLoop_StoredOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("A", "A", 4))

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nb, 1)

	w, err := g.Weight("A", "A")
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := newTriangle(t)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	}, g.Edges())
}

func TestVersion_ChangesOnMutationOnly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	v1 := g.Version()
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, v1, g.Version(), "duplicate AddVertex is a no-op")

	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 2))
	assert.Greater(t, g.Version(), v1)
}

func TestClone_IsIndependent(t *testing.T) {
	g := newTriangle(t)
	c := g.Clone()

	require.NoError(t, c.AddVertex("D"))
	require.NoError(t, c.AddEdge("C", "D", -2))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.True(t, g.NonNegative())
	assert.Equal(t, 3, g.EdgeCount())

	assert.Equal(t, []string{"A", "B", "C", "D"}, c.Vertices())
	assert.False(t, c.NonNegative())
	assert.Equal(t, g.Edges(), c.Edges()[:3])
}
