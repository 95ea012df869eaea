package streamtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivershed/lem/core"
	"github.com/rivershed/lem/sitegraph"
	"github.com/rivershed/lem/streamtree"
)

func buildGraph(t *testing.T, num int, edges [][3]float64) core.Graph {
	t.Helper()
	b := sitegraph.NewBuilder(num)
	for _, e := range edges {
		require.NoError(t, b.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return b.Build()
}

func TestConstruct_TwoSites_SteepestDescent(t *testing.T) {
	g := buildGraph(t, 2, [][3]float64{{0, 1, 1}})
	elevations := []core.Elevation{10, 0}

	tree, err := streamtree.Construct(2, elevations, g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, tree.Next)
}

func TestConstruct_ThreeSiteLine(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	elevations := []core.Elevation{5, 3, 0}

	tree, err := streamtree.Construct(3, elevations, g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, tree.Next)
}

func TestConstruct_FlatPair_CarvesToOutlet(t *testing.T) {
	g := buildGraph(t, 2, [][3]float64{{0, 1, 4}})
	elevations := []core.Elevation{5, 5}

	tree, err := streamtree.Construct(2, elevations, g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, tree.Next)
}

func TestConstruct_LocalMinimum_CarvesLakeToOutlet(t *testing.T) {
	// Site 0 is a pit: its only neighbor (1) is higher, so Phase A leaves it
	// a self-loop. Ridge carving must reverse it through 1 toward outlet 2.
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	elevations := []core.Elevation{1, 5, 0}

	tree, err := streamtree.Construct(3, elevations, g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, tree.Next)
}

func TestConstruct_NoOutlets_ReturnsUnreachable(t *testing.T) {
	g := buildGraph(t, 1, nil)
	elevations := []core.Elevation{0}

	_, err := streamtree.Construct(1, elevations, g, nil)
	assert.ErrorIs(t, err, streamtree.ErrUnreachableSite)
}

func TestConstruct_Deterministic(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	elevations := []core.Elevation{5, 3, 0}

	first, err := streamtree.Construct(3, elevations, g, []int{2})
	require.NoError(t, err)
	second, err := streamtree.Construct(3, elevations, g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, first.Next, second.Next)
}
