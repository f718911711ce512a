package voronoi

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fogleman/delaunay"

	"github.com/hupe1980/cellspace/core"
	"github.com/hupe1980/cellspace/logging"
)

// Options configures a Voronoi space.
type Options struct {
	// Capacity is the per-cell occupancy limit (0 means unbounded).
	Capacity int

	// Rand seeds all random draws made through the space.
	Rand *rand.Rand

	// Logger receives construction diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Grid is a discrete space whose cells are Voronoi sites, connected to the
// sites adjacent in the tessellation.
type Grid struct {
	*core.DiscreteSpace[int]

	sites [][]float64
}

// New builds a space from the given site coordinates. The cell for site i has
// coordinate i; two cells are connected iff their sites share a Delaunay
// triangle.
func New(sites [][]float64, optFns ...func(o *Options)) (*Grid, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := validate(sites, opts.Capacity); err != nil {
		return nil, err
	}

	start := time.Now()

	points := make([]delaunay.Point, len(sites))
	for i, site := range sites {
		points[i] = delaunay.Point{X: site[0], Y: site[1]}
	}
	triangulation, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("%w: delaunay triangulation failed: %v", core.ErrInvalidTopology, err)
	}

	space := &Grid{
		DiscreteSpace: core.NewDiscreteSpace[int](
			core.WithCapacity(opts.Capacity),
			core.WithRand(opts.Rand),
			core.WithLogger(opts.Logger),
		),
		sites: sites,
	}

	for i := range sites {
		space.CreateCell(i)
	}

	edges := connectSimplices(space.DiscreteSpace, triangulation.Triangles)

	opts.Logger.Info("voronoi space constructed",
		"topology", "voronoi",
		"sites", len(sites),
		"cells", space.Len(), "edges", edges,
		"duration", time.Since(start),
	)

	return space, nil
}

func validate(sites [][]float64, capacity int) error {
	if len(sites) == 0 {
		return fmt.Errorf("%w: at least one site coordinate is required", core.ErrInvalidTopology)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %d", core.ErrInvalidTopology, capacity)
	}

	dim := len(sites[0])
	for i, site := range sites {
		if len(site) != dim {
			return fmt.Errorf("%w: site %d has dimension %d, expected homogeneous dimension %d", core.ErrInvalidTopology, i, len(site), dim)
		}
	}
	if dim != 2 {
		return fmt.Errorf("%w: sites must be two-dimensional for planar triangulation, got dimension %d", core.ErrInvalidTopology, dim)
	}

	return nil
}

// connectSimplices wires every pair of sites co-occurring in a triangle, both
// directions, skipping pairs already connected (a shared edge appears in two
// triangles). It returns the number of undirected adjacencies made.
func connectSimplices(space *core.DiscreteSpace[int], triangles []int) int {
	type pair struct{ a, b int }
	seen := make(map[pair]struct{})
	edges := 0

	for t := 0; t+2 < len(triangles); t += 3 {
		simplex := [3]int{triangles[t], triangles[t+1], triangles[t+2]}
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				a, b := simplex[i], simplex[j]
				if a > b {
					a, b = b, a
				}
				if _, dup := seen[pair{a, b}]; dup {
					continue
				}
				seen[pair{a, b}] = struct{}{}

				ca, _ := space.Cell(a)
				cb, _ := space.Cell(b)
				ca.Connect(cb)
				cb.Connect(ca)
				edges++
			}
		}
	}

	return edges
}

// SitePosition returns the spatial coordinates of the given site index.
func (g *Grid) SitePosition(i int) ([]float64, bool) {
	if i < 0 || i >= len(g.sites) {
		return nil, false
	}
	return g.sites[i], true
}

// Sites returns the number of sites.
func (g *Grid) Sites() int { return len(g.sites) }
