package core

// Agent is the contract a cell requires of its occupants: stable identity, so
// a cell can locate and remove a specific agent from its occupancy list.
// Simulation behavior (movement, reproduction, feeding) lives entirely in the
// calling model.
type Agent interface {
	AgentID() string
}

// CellAgent adds occupancy tracking to an agent. Embed it (by pointer) in a
// simulation agent type to get the cell back-pointer and relocation support:
//
//	type Walker struct {
//		*core.CellAgent[grid.Coord]
//	}
//
// The cell's agent list is the authoritative record of occupancy; the
// back-pointer is kept in sync by AddAgent, RemoveAgent and MoveTo. The agent
// never owns the cell.
type CellAgent[C comparable] struct {
	id   string
	cell *Cell[C]
}

// NewCellAgent creates a CellAgent with the given identity, not yet placed in
// any cell.
func NewCellAgent[C comparable](id string) *CellAgent[C] {
	return &CellAgent[C]{id: id}
}

// AgentID returns the agent's stable identity.
func (a *CellAgent[C]) AgentID() string { return a.id }

// Cell returns the cell the agent currently occupies, or nil if unplaced.
func (a *CellAgent[C]) Cell() *Cell[C] { return a.cell }

func (a *CellAgent[C]) setCell(cell *Cell[C]) { a.cell = cell }

// Occupant is satisfied by any agent embedding CellAgent. MoveTo operates on
// it so the destination cell records the outer agent value, not the embedded
// tracker.
type Occupant[C comparable] interface {
	Agent
	Cell() *Cell[C]
	setCell(*Cell[C])
}

// MoveTo relocates agent to dest: it removes the agent from its current cell,
// if any, then adds it to dest. The step is atomic from the caller's point of
// view in the sense that there is no state in which the agent is present in
// two cells. If the destination add fails (ErrCapacityExceeded) the agent is
// left unplaced — already removed from the old cell, Cell() == nil — and the
// error is returned for the caller to handle.
func MoveTo[C comparable](agent Occupant[C], dest *Cell[C]) error {
	if current := agent.Cell(); current != nil {
		if err := current.RemoveAgent(agent); err != nil {
			return err
		}
	}
	return dest.AddAgent(agent)
}
