package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/cellspace/logging"
)

// Default break-even curve between rejection sampling and explicit selection,
// fitted empirically against the cost of enumerating the empty set. Tunable
// via WithEmptiesCutoff; a performance heuristic, not a correctness knob.
const (
	DefaultCutoffCoefficient = 7.953
	DefaultCutoffExponent    = 0.384
)

// Space is the capability interface shared by every topology variant: expose
// the cells, expose the empty subset, and sample a random empty cell. All
// four builders satisfy it by embedding DiscreteSpace.
type Space[C comparable] interface {
	AllCells() *CellCollection[C]
	Empties() *CellCollection[C]
	SelectRandomEmptyCell() (*Cell[C], error)
	Cell(coordinate C) (*Cell[C], bool)
	Len() int
}

// Options configures a DiscreteSpace.
type Options struct {
	// Capacity is the default per-cell occupancy limit applied to cells the
	// space creates. 0 means unbounded.
	Capacity int

	// Rand is the space's single pseudo-random source. All random draws
	// (sampling, collection selection) route through it, so seeding it once
	// makes a full run reproducible. Defaults to a time-seeded PCG source.
	Rand *rand.Rand

	// Logger receives construction and sampling diagnostics. Defaults to NoOp.
	Logger logging.Logger

	// CutoffCoefficient and CutoffExponent parameterize the empties cutoff
	// curve coefficient * n^exponent used to pick a sampling strategy.
	CutoffCoefficient float64
	CutoffExponent    float64
}

// Option mutates Options during construction.
type Option func(*Options)

// WithCapacity sets the default per-cell capacity (0 means unbounded).
func WithCapacity(capacity int) Option {
	return func(o *Options) { o.Capacity = capacity }
}

// WithRand sets the space's random source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithLogger sets the space's logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithEmptiesCutoff overrides the sampling strategy break-even curve.
func WithEmptiesCutoff(coefficient, exponent float64) Option {
	return func(o *Options) {
		o.CutoffCoefficient = coefficient
		o.CutoffExponent = exponent
	}
}

// DiscreteSpace owns the full set of cells of a space. Topology builders
// embed it, create their cells through CreateCell during construction, wire
// adjacency with Cell.Connect, and delegate all storage and querying here.
//
// The cell set is immutable after construction; only occupancy changes over a
// run. The all-cells view is computed once lazily and cached for the space's
// lifetime, and the empties index is initialized on first sampling use, then
// maintained incrementally by occupancy callbacks from the cells.
type DiscreteSpace[C comparable] struct {
	capacity int
	rng      *rand.Rand
	logger   logging.Logger

	cells map[C]*Cell[C]
	order []*Cell[C] // insertion order, backs uniform random cell draws

	all     *CellCollection[C]
	empties *emptiesIndex[C] // nil until the first sampling call

	cutoffCoefficient float64
	cutoffExponent    float64
}

// NewDiscreteSpace creates an empty cell arena. Builders populate it with
// CreateCell and then wire adjacency.
func NewDiscreteSpace[C comparable](opts ...Option) *DiscreteSpace[C] {
	options := Options{
		Logger:            logging.NoOpLogger{},
		CutoffCoefficient: DefaultCutoffCoefficient,
		CutoffExponent:    DefaultCutoffExponent,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Rand == nil {
		now := uint64(time.Now().UnixNano())
		options.Rand = rand.New(rand.NewPCG(now, now>>32))
	}
	if options.Logger == nil {
		options.Logger = logging.NoOpLogger{}
	}

	return &DiscreteSpace[C]{
		capacity:          options.Capacity,
		rng:               options.Rand,
		logger:            options.Logger,
		cells:             make(map[C]*Cell[C]),
		cutoffCoefficient: options.CutoffCoefficient,
		cutoffExponent:    options.CutoffExponent,
	}
}

// CreateCell creates and registers the cell for the given coordinate with the
// space's default capacity. If the coordinate already exists the existing
// cell is returned. Construction-time only: no cell may be created once the
// space is in use.
func (s *DiscreteSpace[C]) CreateCell(coordinate C) *Cell[C] {
	if cell, ok := s.cells[coordinate]; ok {
		return cell
	}
	cell := newCell(coordinate, s.capacity, s)
	s.cells[coordinate] = cell
	s.order = append(s.order, cell)
	return cell
}

// Cell returns the cell for the given coordinate.
func (s *DiscreteSpace[C]) Cell(coordinate C) (*Cell[C], bool) {
	cell, ok := s.cells[coordinate]
	return cell, ok
}

// Len returns the number of cells in the space.
func (s *DiscreteSpace[C]) Len() int { return len(s.order) }

// Capacity returns the default per-cell capacity (0 means unbounded).
func (s *DiscreteSpace[C]) Capacity() int { return s.capacity }

// Rand returns the space's single random source.
func (s *DiscreteSpace[C]) Rand() *rand.Rand { return s.rng }

// Logger returns the space's logger.
func (s *DiscreteSpace[C]) Logger() logging.Logger { return s.logger }

// AllCells returns the collection over every cell, computed once lazily and
// cached for the space's lifetime. Valid because the cell set never changes
// after construction.
func (s *DiscreteSpace[C]) AllCells() *CellCollection[C] {
	if s.all == nil {
		s.all = newCellCollection(s.order, s.rng)
	}
	return s.all
}

// Empties returns the view of all currently empty cells. This is the
// definitional form recomputed from live occupancy; sampling uses the
// incrementally maintained index instead.
func (s *DiscreteSpace[C]) Empties() *CellCollection[C] {
	return s.AllCells().Select(func(c *Cell[C]) bool { return c.IsEmpty() }, 0)
}

// CutoffEmpties returns the break-even threshold coefficient * n^exponent for
// the space's current cell count. Above it, rejection sampling is expected to
// beat explicit selection from the materialized empty set.
func (s *DiscreteSpace[C]) CutoffEmpties() float64 {
	return s.cutoffCoefficient * math.Pow(float64(len(s.order)), s.cutoffExponent)
}

// SelectRandomEmptyCell returns a uniformly random empty cell. It fails with
// ErrNoEmptyCells if every cell is occupied.
//
// The first call materializes the empties index; afterwards the index is kept
// consistent by AddAgent/RemoveAgent callbacks, so no call ever rescans the
// space. Each call picks one of two strategies with identical distribution:
// when empties are dense (above CutoffEmpties) it rejection-samples random
// cells until one is empty, and when they are sparse it draws directly from
// the materialized index.
func (s *DiscreteSpace[C]) SelectRandomEmptyCell() (*Cell[C], error) {
	if s.empties == nil {
		s.empties = newEmptiesIndex[C]()
		for _, cell := range s.order {
			if cell.IsEmpty() {
				s.empties.add(cell.coordinate)
			}
		}
	}

	k := s.empties.len()
	if k == 0 {
		return nil, fmt.Errorf("%w: all %d cells occupied", ErrNoEmptyCells, len(s.order))
	}

	if float64(k) > s.CutoffEmpties() {
		draws := 0
		for {
			draws++
			cell := s.order[s.rng.IntN(len(s.order))]
			if cell.IsEmpty() {
				s.logger.Debug("empty cell sampled", "strategy", "rejection", "draws", draws, "empties", k)
				return cell, nil
			}
		}
	}

	coordinate := s.empties.choose(s.rng)
	s.logger.Debug("empty cell sampled", "strategy", "explicit", "draws", 1, "empties", k)
	return s.cells[coordinate], nil
}

// cellOccupied removes a coordinate from the empties index after its cell
// gained its first agent. No-op before the index is materialized.
func (s *DiscreteSpace[C]) cellOccupied(coordinate C) {
	if s.empties != nil {
		s.empties.discard(coordinate)
	}
}

// cellEmptied inserts a coordinate into the empties index after its cell lost
// its last agent. No-op before the index is materialized.
func (s *DiscreteSpace[C]) cellEmptied(coordinate C) {
	if s.empties != nil {
		s.empties.add(coordinate)
	}
}

// emptiesIndex is a set of coordinates supporting O(1) insert, discard and
// uniform random choice: a slice for indexing plus a position map, with
// swap-remove on deletion.
type emptiesIndex[C comparable] struct {
	coordinates []C
	positions   map[C]int
}

func newEmptiesIndex[C comparable]() *emptiesIndex[C] {
	return &emptiesIndex[C]{positions: make(map[C]int)}
}

func (e *emptiesIndex[C]) len() int { return len(e.coordinates) }

func (e *emptiesIndex[C]) add(coordinate C) {
	if _, ok := e.positions[coordinate]; ok {
		return
	}
	e.positions[coordinate] = len(e.coordinates)
	e.coordinates = append(e.coordinates, coordinate)
}

func (e *emptiesIndex[C]) discard(coordinate C) {
	pos, ok := e.positions[coordinate]
	if !ok {
		return
	}
	last := len(e.coordinates) - 1
	moved := e.coordinates[last]
	e.coordinates[pos] = moved
	e.positions[moved] = pos
	e.coordinates = e.coordinates[:last]
	delete(e.positions, coordinate)
}

func (e *emptiesIndex[C]) choose(rng *rand.Rand) C {
	return e.coordinates[rng.IntN(len(e.coordinates))]
}

func (e *emptiesIndex[C]) contains(coordinate C) bool {
	_, ok := e.positions[coordinate]
	return ok
}
