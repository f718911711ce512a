package grid

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/logging"
)

// Coord addresses a cell on a rectangular or hexagonal grid.
// Row is in [0, height), Col in [0, width).
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row, col)".
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Neighborhood selects which adjacency rule a rectangular grid uses.
type Neighborhood int

const (
	// Moore connects each cell to its 8 surrounding neighbors.
	Moore Neighborhood = iota
	// VonNeumann connects each cell to its 4 orthogonal neighbors.
	VonNeumann
)

// String returns the neighborhood kind's name.
func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case VonNeumann:
		return "von_neumann"
	default:
		return "unknown"
	}
}

var mooreOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var vonNeumannOffsets = [][2]int{
	{-1, 0},
	{0, -1}, {0, 1},
	{1, 0},
}

// Options configures a Grid.
type Options struct {
	// Torus wraps neighbor coordinates modulo the grid dimensions instead of
	// dropping out-of-range neighbors.
	Torus bool

	// Neighborhood selects Moore (default) or von Neumann adjacency.
	Neighborhood Neighborhood

	// Capacity is the per-cell occupancy limit (0 means unbounded).
	Capacity int

	// Rand seeds all random draws made through the space.
	Rand *rand.Rand

	// Logger receives construction diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Grid is a rectangular discrete space with Moore or von Neumann adjacency.
type Grid struct {
	*core.DiscreteSpace[Coord]

	width        int
	height       int
	torus        bool
	neighborhood Neighborhood

	layers map[string]*PropertyLayer
}

// New builds a width x height rectangular grid: one cell per coordinate, then
// adjacency per the configured neighborhood rule.
func New(width, height int, optFns ...func(o *Options)) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", core.ErrInvalidTopology, width, height)
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative, got %d", core.ErrInvalidTopology, opts.Capacity)
	}

	start := time.Now()

	g := &Grid{
		DiscreteSpace: core.NewDiscreteSpace[Coord](
			core.WithCapacity(opts.Capacity),
			core.WithRand(opts.Rand),
			core.WithLogger(opts.Logger),
		),
		width:        width,
		height:       height,
		torus:        opts.Torus,
		neighborhood: opts.Neighborhood,
		layers:       map[string]*PropertyLayer{},
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.CreateCell(Coord{Row: row, Col: col})
		}
	}

	offsets := mooreOffsets
	if opts.Neighborhood == VonNeumann {
		offsets = vonNeumannOffsets
	}
	edges := 0
	for _, cell := range g.AllCells().Cells() {
		edges += connectOffsets(g.DiscreteSpace, cell, offsets, width, height, opts.Torus)
	}

	opts.Logger.Info("grid constructed",
		"topology", "grid",
		"neighborhood", opts.Neighborhood.String(),
		"width", width, "height", height,
		"torus", opts.Torus,
		"cells", g.Len(), "edges", edges,
		"duration", time.Since(start),
	)

	return g, nil
}

// connectOffsets wires one cell to the neighbors reached by the given offset
// table, applying torus wraparound or boundary clipping. It returns the
// number of connections made.
func connectOffsets(space *core.DiscreteSpace[Coord], cell *core.Cell[Coord], offsets [][2]int, width, height int, torus bool) int {
	coord := cell.Coordinate()
	made := 0
	for _, off := range offsets {
		row, col := coord.Row+off[0], coord.Col+off[1]
		if torus {
			row, col = mod(row, height), mod(col, width)
		}
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		neighbor, ok := space.Cell(Coord{Row: row, Col: col})
		if !ok {
			continue
		}
		cell.Connect(neighbor)
		made++
	}
	return made
}

func mod(v, m int) int {
	return ((v % m) + m) % m
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Torus reports whether neighbor coordinates wrap around the edges.
func (g *Grid) Torus() bool { return g.torus }

// NeighborhoodKind returns the adjacency rule the grid was built with.
func (g *Grid) NeighborhoodKind() Neighborhood { return g.neighborhood }
