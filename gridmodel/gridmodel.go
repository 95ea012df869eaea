// Package gridmodel is a concrete core.Model[Terrain] implementation over a
// regular rectangular lattice, exercising the abstract engine end to end
// the way the builder package's grid constructor exercises core.Graph with
// concrete topologies (grid, star, wheel, ...).
//
// Sites are indexed row-major, i = r*cols + c, for r in [0,rows) and c in
// [0,cols). Each cell connects to its right and bottom 4-neighborhood
// neighbor at distance cellSize; cell area is cellSize^2.
package gridmodel

import (
	"errors"

	"github.com/rivershed/lem/core"
	"github.com/rivershed/lem/sitegraph"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates rows or cols is less than 1.
	ErrInvalidDimensions = errors.New("gridmodel: rows and cols must each be >= 1")

	// ErrInvalidCellSize indicates cellSize is not strictly positive.
	ErrInvalidCellSize = errors.New("gridmodel: cellSize must be positive")

	// ErrNoOutlets indicates an empty outlet set was supplied.
	ErrNoOutlets = errors.New("gridmodel: at least one outlet is required")

	// ErrOutletOutOfRange indicates an outlet index outside 0..rows*cols-1.
	ErrOutletOutOfRange = errors.New("gridmodel: outlet index out of range")
)

// Terrain is the packaged result of a run over a Grid: elevations indexed
// [row][col].
type Terrain struct {
	Rows, Cols int
	Elevation  [][]core.Elevation
}

// Grid is a regular-lattice core.Model[Terrain].
type Grid struct {
	rows, cols int
	cellSize   float64
	graph      *sitegraph.Graph
	areas      []core.Length
	outlets    []int
}

// Index returns the dense site index for cell (row, col).
func Index(cols, row, col int) int { return row*cols + col }

// BorderOutlets returns the indices of every cell on the rectangle's
// border, in row-major order — a natural default outlet set for a
// lattice model draining to its edges.
func BorderOutlets(rows, cols int) []int {
	outlets := make([]int, 0, 2*rows+2*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				outlets = append(outlets, Index(cols, r, c))
			}
		}
	}
	return outlets
}

// New builds a Grid of rows x cols cells, each cellSize apart, draining to
// outlets (site indices; see BorderOutlets for a common default).
func New(rows, cols int, cellSize float64, outlets []int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	if len(outlets) == 0 {
		return nil, ErrNoOutlets
	}

	num := rows * cols
	for _, o := range outlets {
		if o < 0 || o >= num {
			return nil, ErrOutletOutOfRange
		}
	}

	b := sitegraph.NewBuilder(num)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := Index(cols, r, c)
			if c+1 < cols {
				if err := b.AddEdge(i, Index(cols, r, c+1), cellSize); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := b.AddEdge(i, Index(cols, r+1, c), cellSize); err != nil {
					return nil, err
				}
			}
		}
	}

	areas := make([]core.Length, num)
	cellArea := cellSize * cellSize
	for i := range areas {
		areas[i] = cellArea
	}

	return &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		graph:    b.Build(),
		areas:    areas,
		outlets:  append([]int(nil), outlets...),
	}, nil
}

// Num implements core.Model.
func (g *Grid) Num() int { return g.rows * g.cols }

// Sites implements core.Model.
func (g *Grid) Sites() []core.Site {
	sites := make([]core.Site, g.Num())
	for i := range sites {
		sites[i] = i
	}
	return sites
}

// Areas implements core.Model.
func (g *Grid) Areas() []core.Length { return g.areas }

// Graph implements core.Model.
func (g *Grid) Graph() core.Graph { return g.graph }

// Outlets implements core.Model.
func (g *Grid) Outlets() []int { return g.outlets }

// CreateTerrainFromResult implements core.Model, reshaping the flat
// elevation vector into row-major [row][col] form.
func (g *Grid) CreateTerrainFromResult(elevations []core.Elevation) Terrain {
	rows := make([][]core.Elevation, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]core.Elevation, g.cols)
		copy(row, elevations[r*g.cols:(r+1)*g.cols])
		rows[r] = row
	}
	return Terrain{Rows: g.rows, Cols: g.cols, Elevation: rows}
}
