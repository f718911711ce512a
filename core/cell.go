package core

import (
	"fmt"
	"math/rand/v2"
)

// occupancyTracker is the non-owning handle a cell keeps to the space that
// created it. It is used only to keep the space's empties index in sync with
// occupancy changes; cells never control the space's lifetime through it.
type occupancyTracker[C comparable] interface {
	cellOccupied(coordinate C)
	cellEmptied(coordinate C)
	Rand() *rand.Rand
}

// cellResident is implemented by agents that track the cell they occupy
// (anything embedding CellAgent). AddAgent and RemoveAgent use it to keep the
// agent's back-pointer consistent with the authoritative occupancy list.
type cellResident[C comparable] interface {
	Agent
	setCell(*Cell[C])
}

type neighborhoodKey struct {
	radius        int
	includeCenter bool
}

// Cell is the atomic unit of a discrete space. It holds the agents currently
// occupying it and its outgoing neighbor links.
//
// The adjacency graph is built once at space construction and never changes
// afterwards; only occupancy mutates over a simulation run. Neighborhood
// queries exploit this by memoizing their results for the life of the cell.
type Cell[C comparable] struct {
	coordinate  C
	connections []*Cell[C]
	agents      []Agent
	capacity    int
	owner       occupancyTracker[C]

	neighborhoods map[neighborhoodKey]*CellCollection[C]
	reachable     map[neighborhoodKey][]*Cell[C]
}

func newCell[C comparable](coordinate C, capacity int, owner occupancyTracker[C]) *Cell[C] {
	return &Cell[C]{coordinate: coordinate, capacity: capacity, owner: owner}
}

// Coordinate returns the cell's stable key within its owning space.
func (c *Cell[C]) Coordinate() C { return c.coordinate }

// Capacity returns the maximum simultaneous occupancy; 0 means unbounded.
func (c *Cell[C]) Capacity() int { return c.capacity }

// Connections returns the cell's direct neighbors in connection order.
// The returned slice is a copy; mutating it does not affect adjacency.
func (c *Cell[C]) Connections() []*Cell[C] {
	out := make([]*Cell[C], len(c.connections))
	copy(out, c.connections)
	return out
}

// Agents returns the agents currently occupying the cell in insertion order.
// The returned slice is a copy; occupancy is mutated only through AddAgent
// and RemoveAgent.
func (c *Cell[C]) Agents() []Agent {
	out := make([]Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

// Len returns the number of agents currently occupying the cell.
func (c *Cell[C]) Len() int { return len(c.agents) }

// IsEmpty reports whether the cell holds no agents.
func (c *Cell[C]) IsEmpty() bool { return len(c.agents) == 0 }

// IsFull reports whether the cell is at capacity. An unbounded cell is never full.
func (c *Cell[C]) IsFull() bool { return c.capacity > 0 && len(c.agents) >= c.capacity }

// Connect adds other to this cell's neighbor list. It is intended for
// topology construction only; connections must not change once a space is in
// use, since neighborhood results are memoized.
func (c *Cell[C]) Connect(other *Cell[C]) {
	c.connections = append(c.connections, other)
}

// Disconnect removes other from this cell's neighbor list. Provided for
// completeness alongside Connect; standard construction never calls it.
func (c *Cell[C]) Disconnect(other *Cell[C]) {
	for i, n := range c.connections {
		if n == other {
			c.connections = append(c.connections[:i], c.connections[i+1:]...)
			return
		}
	}
}

// AddAgent places agent into the cell. It fails with ErrCapacityExceeded if
// the cell is at capacity, in which case nothing is mutated. On the
// empty-to-occupied transition the owning space's empties index is updated.
func (c *Cell[C]) AddAgent(agent Agent) error {
	if c.IsFull() {
		return fmt.Errorf("%w: cell %v holds %d agents", ErrCapacityExceeded, c.coordinate, len(c.agents))
	}

	wasEmpty := len(c.agents) == 0
	c.agents = append(c.agents, agent)

	if resident, ok := agent.(cellResident[C]); ok {
		resident.setCell(c)
	}
	if wasEmpty && c.owner != nil {
		c.owner.cellOccupied(c.coordinate)
	}

	return nil
}

// RemoveAgent takes agent out of the cell. It fails with ErrAgentNotPresent
// if the agent is not currently listed here. On the occupied-to-empty
// transition the owning space's empties index is updated, and the agent's
// cell back-pointer, if it carries one, is cleared.
func (c *Cell[C]) RemoveAgent(agent Agent) error {
	idx := -1
	for i, held := range c.agents {
		if held.AgentID() == agent.AgentID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: agent %s, cell %v", ErrAgentNotPresent, agent.AgentID(), c.coordinate)
	}

	removed := c.agents[idx]
	c.agents = append(c.agents[:idx], c.agents[idx+1:]...)

	if resident, ok := removed.(cellResident[C]); ok {
		resident.setCell(nil)
	}
	if len(c.agents) == 0 && c.owner != nil {
		c.owner.cellEmptied(c.coordinate)
	}

	return nil
}

// Neighborhood returns all cells reachable within radius hops of this cell,
// excluding the cell itself unless includeCenter is set. Results are memoized
// per (radius, includeCenter) pair for the life of the cell; the adjacency
// graph is immutable after construction, so the cache never needs
// invalidation.
func (c *Cell[C]) Neighborhood(radius int, includeCenter bool) (*CellCollection[C], error) {
	if radius < 1 {
		return nil, fmt.Errorf("neighborhood radius must be at least 1, got %d", radius)
	}

	key := neighborhoodKey{radius: radius, includeCenter: includeCenter}
	if cc, ok := c.neighborhoods[key]; ok {
		return cc, nil
	}

	var rng *rand.Rand
	if c.owner != nil {
		rng = c.owner.Rand()
	}
	cc := newCellCollection(c.neighborhoodCells(radius, includeCenter), rng)

	if c.neighborhoods == nil {
		c.neighborhoods = make(map[neighborhoodKey]*CellCollection[C])
	}
	c.neighborhoods[key] = cc

	return cc, nil
}

// neighborhoodCells computes the bounded-hop neighborhood recursively: radius
// 1 is the direct connections; larger radii union each neighbor's radius-1
// neighborhood (center included) and strip self at the end. Intermediate
// results are memoized per cell, so the recursion reuses neighbors' cached
// depths instead of re-walking the graph.
func (c *Cell[C]) neighborhoodCells(radius int, includeCenter bool) []*Cell[C] {
	key := neighborhoodKey{radius: radius, includeCenter: includeCenter}
	if cached, ok := c.reachable[key]; ok {
		return cached
	}

	var out []*Cell[C]
	if radius == 1 {
		out = make([]*Cell[C], 0, len(c.connections)+1)
		out = append(out, c.connections...)
		if includeCenter {
			out = append(out, c)
		}
	} else {
		seen := make(map[*Cell[C]]struct{})
		for _, neighbor := range c.connections {
			for _, cell := range neighbor.neighborhoodCells(radius-1, true) {
				if _, dup := seen[cell]; dup {
					continue
				}
				seen[cell] = struct{}{}
				out = append(out, cell)
			}
		}
		if !includeCenter {
			for i, cell := range out {
				if cell == c {
					out = append(out[:i], out[i+1:]...)
					break
				}
			}
		}
	}

	if c.reachable == nil {
		c.reachable = make(map[neighborhoodKey][]*Cell[C])
	}
	c.reachable[key] = out

	return out
}
