package grid

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/logging"
)

// Hex adjacency on a square storage array uses an offset layout: the six
// neighbor directions differ by row parity.
var hexEvenRowOffsets = [][2]int{
	{-1, -1}, {-1, 0},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0},
}

var hexOddRowOffsets = [][2]int{
	{-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, 0}, {1, 1},
}

// HexOptions configures a HexGrid.
type HexOptions struct {
	// Torus wraps neighbor coordinates modulo the grid dimensions instead of
	// dropping out-of-range neighbors.
	Torus bool

	// Capacity is the per-cell occupancy limit (0 means unbounded).
	Capacity int

	// Rand seeds all random draws made through the space.
	Rand *rand.Rand

	// Logger receives construction diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// HexGrid is a hexagonal discrete space stored on a width x height array.
// Each interior cell has six neighbors.
type HexGrid struct {
	*core.DiscreteSpace[Coord]

	width  int
	height int
	torus  bool
}

// NewHex builds a width x height hexagonal grid with the offset layout's
// row-parity adjacency. Torus and boundary rules match Grid.
func NewHex(width, height int, optFns ...func(o *HexOptions)) (*HexGrid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: hex grid dimensions must be positive, got %dx%d", core.ErrInvalidTopology, width, height)
	}

	opts := HexOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative, got %d", core.ErrInvalidTopology, opts.Capacity)
	}

	start := time.Now()

	g := &HexGrid{
		DiscreteSpace: core.NewDiscreteSpace[Coord](
			core.WithCapacity(opts.Capacity),
			core.WithRand(opts.Rand),
			core.WithLogger(opts.Logger),
		),
		width:  width,
		height: height,
		torus:  opts.Torus,
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.CreateCell(Coord{Row: row, Col: col})
		}
	}

	edges := 0
	for _, cell := range g.AllCells().Cells() {
		offsets := hexEvenRowOffsets
		if cell.Coordinate().Row%2 != 0 {
			offsets = hexOddRowOffsets
		}
		edges += connectOffsets(g.DiscreteSpace, cell, offsets, width, height, opts.Torus)
	}

	opts.Logger.Info("hex grid constructed",
		"topology", "hex",
		"width", width, "height", height,
		"torus", opts.Torus,
		"cells", g.Len(), "edges", edges,
		"duration", time.Since(start),
	)

	return g, nil
}

// Width returns the number of columns.
func (g *HexGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *HexGrid) Height() int { return g.height }

// Torus reports whether neighbor coordinates wrap around the edges.
func (g *HexGrid) Torus() bool { return g.torus }
