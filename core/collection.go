package core

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"
)

// CellCollection is an immutable, ordered view over a set of cells. It holds
// the cells by reference: agent contents seen through the collection reflect
// live occupancy mutation of the underlying cells, not a snapshot.
//
// The collection does not own its cells; it is a derived, read-mostly index
// over cells owned by a DiscreteSpace.
type CellCollection[C comparable] struct {
	cells []*Cell[C]
	rng   *rand.Rand
}

// NewCellCollection creates a collection over the given cells, preserving
// their order. If rng is nil a time-seeded source is used; collections
// derived from a space share the space's source so seeded runs stay
// reproducible.
func NewCellCollection[C comparable](cells []*Cell[C], rng *rand.Rand) *CellCollection[C] {
	owned := make([]*Cell[C], len(cells))
	copy(owned, cells)
	return newCellCollection(owned, rng)
}

func newCellCollection[C comparable](cells []*Cell[C], rng *rand.Rand) *CellCollection[C] {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &CellCollection[C]{cells: cells, rng: rng}
}

// Len returns the number of cells in the collection.
func (cc *CellCollection[C]) Len() int { return len(cc.cells) }

// Cells returns the member cells in collection order. The returned slice is a
// copy; the cells themselves are shared.
func (cc *CellCollection[C]) Cells() []*Cell[C] {
	out := make([]*Cell[C], len(cc.cells))
	copy(out, cc.cells)
	return out
}

// All iterates over the member cells in collection order.
func (cc *CellCollection[C]) All() iter.Seq[*Cell[C]] {
	return func(yield func(*Cell[C]) bool) {
		for _, cell := range cc.cells {
			if !yield(cell) {
				return
			}
		}
	}
}

// Agents iterates over the flattened sequence of all agents across the member
// cells. The sequence is lazy and restartable: each pass re-reads current
// cell contents, so two iterations can differ if occupancy changed between
// them.
func (cc *CellCollection[C]) Agents() iter.Seq[Agent] {
	return func(yield func(Agent) bool) {
		for _, cell := range cc.cells {
			for _, agent := range cell.agents {
				if !yield(agent) {
					return
				}
			}
		}
	}
}

// Select returns a new collection containing only cells satisfying pred,
// capped at the first n matches when n > 0. When pred is nil and n == 0 the
// identity view (the collection itself) is returned. The new view shares the
// same live cells.
func (cc *CellCollection[C]) Select(pred func(*Cell[C]) bool, n int) *CellCollection[C] {
	if pred == nil && n == 0 {
		return cc
	}

	var selected []*Cell[C]
	for _, cell := range cc.cells {
		if pred != nil && !pred(cell) {
			continue
		}
		selected = append(selected, cell)
		if n > 0 && len(selected) == n {
			break
		}
	}

	return newCellCollection(selected, cc.rng)
}

// SelectRandomCell draws one member cell uniformly at random. It fails with
// ErrEmptyCollection if the collection has no cells.
func (cc *CellCollection[C]) SelectRandomCell() (*Cell[C], error) {
	if len(cc.cells) == 0 {
		return nil, fmt.Errorf("%w: no cells to select from", ErrEmptyCollection)
	}
	return cc.cells[cc.rng.IntN(len(cc.cells))], nil
}

// SelectRandomAgent draws one agent uniformly at random from the flattened
// agent sequence of all member cells. It fails with ErrEmptyCollection if no
// member cell holds any agent.
func (cc *CellCollection[C]) SelectRandomAgent() (Agent, error) {
	var agents []Agent
	for _, cell := range cc.cells {
		agents = append(agents, cell.agents...)
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("%w: no agents to select from", ErrEmptyCollection)
	}
	return agents[cc.rng.IntN(len(agents))], nil
}
