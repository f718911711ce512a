// Package cellspace provides discrete spaces for agent-based simulation: a
// graph of addressable cells, each holding zero or more agents under a
// capacity constraint, connected into one of four topologies — rectangular
// grid, hexagonal grid, arbitrary network or Voronoi tessellation. Most
// applications interact with this package by:
//  1. Constructing a space (NewGrid, NewHexGrid, NewNetwork, NewVoronoi)
//  2. Placing agents via cell.AddAgent or core.MoveTo
//  3. Querying space.AllCells(), space.Empties(), cell.Neighborhood(...) and
//     space.SelectRandomEmptyCell() to decide where agents go
//
// The façade delegates to the topology packages (grid, network, voronoi)
// while keeping setup concise; those packages expose functional options for
// anything beyond the flat parameters here (random source, logger, sampling
// cutoff). All spaces are single-writer: one simulation owns and mutates a
// space, and all random draws route through one seedable source per space.
package cellspace

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/graph"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/grid"
	"github.com/hupe1980/cellspace/network"
	"github.com/hupe1980/cellspace/voronoi"
)

// Agent is the identity-only contract cells require of their occupants.
type Agent = core.Agent

// Re-exported error kinds, so callers matching with errors.Is need only this
// package.
var (
	ErrCapacityExceeded = core.ErrCapacityExceeded
	ErrAgentNotPresent  = core.ErrAgentNotPresent
	ErrNoEmptyCells     = core.ErrNoEmptyCells
	ErrEmptyCollection  = core.ErrEmptyCollection
	ErrInvalidTopology  = core.ErrInvalidTopology
)

// Neighborhood kinds for NewGrid.
const (
	Moore      = grid.Moore
	VonNeumann = grid.VonNeumann
)

// NewGrid builds a ready-to-use rectangular grid: all cells created and
// adjacency wired per the neighborhood kind. capacity 0 means unbounded.
func NewGrid(width, height int, torus bool, neighborhood grid.Neighborhood, capacity int) (*grid.Grid, error) {
	return grid.New(width, height, func(o *grid.Options) {
		o.Torus = torus
		o.Neighborhood = neighborhood
		o.Capacity = capacity
	})
}

// NewSeededGrid is NewGrid with an explicit random source for reproducible
// runs.
func NewSeededGrid(width, height int, torus bool, neighborhood grid.Neighborhood, capacity int, rng *rand.Rand) (*grid.Grid, error) {
	return grid.New(width, height, func(o *grid.Options) {
		o.Torus = torus
		o.Neighborhood = neighborhood
		o.Capacity = capacity
		o.Rand = rng
	})
}

// NewHexGrid builds a ready-to-use hexagonal grid on a width x height array.
func NewHexGrid(width, height int, torus bool, capacity int) (*grid.HexGrid, error) {
	return grid.NewHex(width, height, func(o *grid.HexOptions) {
		o.Torus = torus
		o.Capacity = capacity
	})
}

// NewNetwork builds a ready-to-use space over the given graph; coordinates
// are the graph's node IDs.
func NewNetwork(g graph.Graph, capacity int) (*network.Grid, error) {
	return network.New(g, func(o *network.Options) {
		o.Capacity = capacity
	})
}

// NewVoronoi builds a ready-to-use space over a Voronoi tessellation of the
// given site coordinates; cell i corresponds to site i.
func NewVoronoi(sites [][]float64, capacity int) (*voronoi.Grid, error) {
	return voronoi.New(sites, func(o *voronoi.Options) {
		o.Capacity = capacity
	})
}
