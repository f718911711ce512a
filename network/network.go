package network

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"gonum.org/v1/gonum/graph"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/logging"
)

// Options configures a network space.
type Options struct {
	// Capacity is the per-cell occupancy limit (0 means unbounded).
	Capacity int

	// Rand seeds all random draws made through the space.
	Rand *rand.Rand

	// Logger receives construction diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Grid is a discrete space over an arbitrary graph: one cell per node,
// connections copied from the graph's edge set.
type Grid struct {
	*core.DiscreteSpace[int64]
}

// New builds a space from the given graph. Node order is sorted by ID so
// construction is deterministic regardless of the graph implementation's
// iteration order. For a directed graph, a cell is connected to the nodes
// reachable over outgoing edges.
func New(g graph.Graph, optFns ...func(o *Options)) (*Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph must not be nil", core.ErrInvalidTopology)
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative, got %d", core.ErrInvalidTopology, opts.Capacity)
	}

	start := time.Now()

	space := &Grid{
		DiscreteSpace: core.NewDiscreteSpace[int64](
			core.WithCapacity(opts.Capacity),
			core.WithRand(opts.Rand),
			core.WithLogger(opts.Logger),
		),
	}

	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)

	for _, id := range ids {
		space.CreateCell(id)
	}

	edges := 0
	for _, id := range ids {
		cell, _ := space.Cell(id)

		var neighborIDs []int64
		to := g.From(id)
		for to.Next() {
			neighborIDs = append(neighborIDs, to.Node().ID())
		}
		slices.Sort(neighborIDs)

		for _, nid := range neighborIDs {
			if neighbor, ok := space.Cell(nid); ok {
				cell.Connect(neighbor)
				edges++
			}
		}
	}

	opts.Logger.Info("network space constructed",
		"topology", "network",
		"cells", space.Len(), "edges", edges,
		"duration", time.Since(start),
	)

	return space, nil
}
