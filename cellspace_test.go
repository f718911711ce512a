package cellspace

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/grid"
	"github.com/hupe1980/cellspace/internal/testutil"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 4, false, Moore, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Len())
	assert.Equal(t, Moore, g.NeighborhoodKind())

	cell, ok := g.Cell(grid.Coord{Row: 1, Col: 1})
	require.True(t, ok)
	assert.Len(t, cell.Connections(), 8)
}

func TestNewSeededGrid_Reproducible(t *testing.T) {
	draw := func() grid.Coord {
		g, err := NewSeededGrid(6, 6, false, VonNeumann, 1, rand.New(rand.NewPCG(5, 6)))
		require.NoError(t, err)
		cell, err := g.SelectRandomEmptyCell()
		require.NoError(t, err)
		return cell.Coordinate()
	}
	assert.Equal(t, draw(), draw())
}

func TestNewHexGrid(t *testing.T) {
	g, err := NewHexGrid(5, 5, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 25, g.Len())

	cell, ok := g.Cell(grid.Coord{Row: 2, Col: 2})
	require.True(t, ok)
	assert.Len(t, cell.Connections(), 6)
}

func TestNewNetwork(t *testing.T) {
	src := simple.NewUndirectedGraph()
	a, b := simple.Node(1), simple.Node(2)
	src.AddNode(a)
	src.AddNode(b)
	src.SetEdge(simple.Edge{F: a, T: b})

	space, err := NewNetwork(src, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, space.Len())
}

func TestNewVoronoi(t *testing.T) {
	space, err := NewVoronoi([][]float64{{0, 0}, {1, 0}, {0, 1}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, space.Len())

	_, err = NewVoronoi([][]float64{{0, 0}, {1, 0, 0}}, 0)
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

// Filling a space to capacity and then sampling must surface ErrNoEmptyCells
// through the façade's re-exported error values.
func TestErrorReexports(t *testing.T) {
	g, err := NewGrid(3, 3, false, Moore, 1)
	require.NoError(t, err)

	placed, err := testutil.Fill(g.AllCells())
	require.NoError(t, err)
	require.Len(t, placed, 9)

	_, err = g.SelectRandomEmptyCell()
	assert.ErrorIs(t, err, ErrNoEmptyCells)

	full, _ := g.Cell(grid.Coord{})
	err = full.AddAgent(testutil.NewResident[grid.Coord]())
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// freeing one cell makes it the unique sampling result
	require.NoError(t, placed[4].Cell().RemoveAgent(placed[4]))
	for i := 0; i < 20; i++ {
		cell, err := g.SelectRandomEmptyCell()
		require.NoError(t, err)
		assert.Equal(t, grid.Coord{Row: 1, Col: 1}, cell.Coordinate())
	}
}

func TestMoveToAcrossFacade(t *testing.T) {
	g, err := NewGrid(3, 1, false, VonNeumann, 1)
	require.NoError(t, err)

	a := testutil.NewResident[grid.Coord]()
	first, _ := g.Cell(grid.Coord{Row: 0, Col: 0})
	second, _ := g.Cell(grid.Coord{Row: 0, Col: 1})

	require.NoError(t, first.AddAgent(a))
	require.NoError(t, core.MoveTo(a, second))
	assert.True(t, first.IsEmpty())
	assert.Equal(t, second, a.Cell())
}
