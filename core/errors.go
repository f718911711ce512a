package core

import "fmt"

var (
	// ErrCapacityExceeded is returned by Cell.AddAgent when the target cell is
	// already at its capacity limit. The failure leaves occupancy unchanged;
	// the caller must pick a different cell.
	ErrCapacityExceeded = fmt.Errorf("cell capacity exceeded")

	// ErrAgentNotPresent is returned by Cell.RemoveAgent when the agent is not
	// currently listed in that cell. It indicates a state-tracking bug
	// upstream and is not recoverable locally.
	ErrAgentNotPresent = fmt.Errorf("agent not present in cell")

	// ErrNoEmptyCells is returned by DiscreteSpace.SelectRandomEmptyCell when
	// the space currently has zero empty cells.
	ErrNoEmptyCells = fmt.Errorf("no empty cells in space")

	// ErrEmptyCollection is returned by the random draw methods of
	// CellCollection when the collection has zero members.
	ErrEmptyCollection = fmt.Errorf("cell collection is empty")

	// ErrInvalidTopology is returned at construction time for malformed
	// topology input, such as heterogeneous site coordinates or a negative
	// capacity.
	ErrInvalidTopology = fmt.Errorf("invalid topology")
)
