package testutil

import (
	"github.com/google/uuid"

	"github.com/hupe1980/cellspace/core"
)

// Resident is a minimal placed agent used to exercise occupancy in tests.
type Resident[C comparable] struct {
	*core.CellAgent[C]
}

// NewResident creates a Resident with a fresh unique identity.
func NewResident[C comparable]() *Resident[C] {
	return &Resident[C]{CellAgent: core.NewCellAgent[C](uuid.NewString())}
}

// Fill places one fresh Resident into every cell of the collection and
// returns them in placement order.
func Fill[C comparable](cells *core.CellCollection[C]) ([]*Resident[C], error) {
	var placed []*Resident[C]
	for cell := range cells.All() {
		r := NewResident[C]()
		if err := cell.AddAgent(r); err != nil {
			return placed, err
		}
		placed = append(placed, r)
	}
	return placed, nil
}
