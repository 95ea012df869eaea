package gridmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivershed/lem/gridmodel"
)

func TestNew_RejectsInvalidDimensions(t *testing.T) {
	_, err := gridmodel.New(0, 4, 1, []int{0})
	assert.ErrorIs(t, err, gridmodel.ErrInvalidDimensions)

	_, err = gridmodel.New(4, 0, 1, []int{0})
	assert.ErrorIs(t, err, gridmodel.ErrInvalidDimensions)
}

func TestNew_RejectsNonPositiveCellSize(t *testing.T) {
	_, err := gridmodel.New(2, 2, 0, []int{0})
	assert.ErrorIs(t, err, gridmodel.ErrInvalidCellSize)
}

func TestNew_RejectsEmptyOutlets(t *testing.T) {
	_, err := gridmodel.New(2, 2, 1, nil)
	assert.ErrorIs(t, err, gridmodel.ErrNoOutlets)
}

func TestNew_RejectsOutletOutOfRange(t *testing.T) {
	_, err := gridmodel.New(2, 2, 1, []int{4})
	assert.ErrorIs(t, err, gridmodel.ErrOutletOutOfRange)
}

func TestBorderOutlets_RingOfRectangle(t *testing.T) {
	outlets := gridmodel.BorderOutlets(3, 3)
	// Every cell of a 3x3 grid lies on its border except the center (1,1)=4.
	assert.Len(t, outlets, 8)
	assert.NotContains(t, outlets, gridmodel.Index(3, 1, 1))
}

func TestGrid_NumAreasAndGraph(t *testing.T) {
	g, err := gridmodel.New(2, 3, 2, gridmodel.BorderOutlets(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.Num())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Sites())
	areas := g.Areas()
	require.Len(t, areas, 6)
	for _, a := range areas {
		assert.Equal(t, 4.0, a)
	}

	// (0,0) should connect to its right and bottom 4-neighbors.
	neighbors := g.Graph().NeighborsOf(gridmodel.Index(3, 0, 0))
	assert.Len(t, neighbors, 2)
}

func TestGrid_CreateTerrainFromResult_ReshapesRowMajor(t *testing.T) {
	g, err := gridmodel.New(2, 2, 1, gridmodel.BorderOutlets(2, 2))
	require.NoError(t, err)

	elevations := []float64{1, 2, 3, 4}
	terrain := g.CreateTerrainFromResult(elevations)

	require.Equal(t, 2, terrain.Rows)
	require.Equal(t, 2, terrain.Cols)
	assert.Equal(t, []float64{1, 2}, terrain.Elevation[0])
	assert.Equal(t, []float64{3, 4}, terrain.Elevation[1])
}
