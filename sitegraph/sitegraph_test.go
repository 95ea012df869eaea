package sitegraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivershed/lem/sitegraph"
)

func TestBuilder_AddEdge_OutOfRange(t *testing.T) {
	b := sitegraph.NewBuilder(3)
	assert.ErrorIs(t, b.AddEdge(-1, 1, 1), sitegraph.ErrSiteOutOfRange)
	assert.ErrorIs(t, b.AddEdge(0, 3, 1), sitegraph.ErrSiteOutOfRange)
}

func TestBuilder_AddEdge_RejectsNaNDistance(t *testing.T) {
	b := sitegraph.NewBuilder(2)
	err := b.AddEdge(0, 1, math.NaN())
	require.Error(t, err)
}

func TestBuilder_Build_SymmetricAndOrdered(t *testing.T) {
	b := sitegraph.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 2, 2))
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(0, 3, 3))

	g := b.Build()
	require.Equal(t, 4, g.Num())

	neighbors := g.NeighborsOf(0)
	require.Len(t, neighbors, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{neighbors[0].To, neighbors[1].To, neighbors[2].To})

	ok, dist := g.HasEdge(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, dist)

	ok, _ = g.HasEdge(1, 2)
	assert.False(t, ok)
}

func TestBuilder_NeighborsOf_OutOfRangeIsEmpty(t *testing.T) {
	b := sitegraph.NewBuilder(2)
	g := b.Build()
	assert.Empty(t, g.NeighborsOf(5))
}
