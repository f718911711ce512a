package core

import (
	"errors"
	"math/rand/v2"
	"testing"
)

type stubAgent struct{ id string }

func (a stubAgent) AgentID() string { return a.id }

type walker struct{ *CellAgent[int] }

func newWalker(id string) *walker {
	return &walker{CellAgent: NewCellAgent[int](id)}
}

// newLineSpace builds a path topology 0-1-...-(n-1) with bidirectional links.
func newLineSpace(n, capacity int) *DiscreteSpace[int] {
	s := NewDiscreteSpace[int](WithCapacity(capacity), WithRand(rand.New(rand.NewPCG(1, 2))))
	for i := 0; i < n; i++ {
		s.CreateCell(i)
	}
	for i := 0; i < n-1; i++ {
		a, _ := s.Cell(i)
		b, _ := s.Cell(i + 1)
		a.Connect(b)
		b.Connect(a)
	}
	return s
}

func TestCell_AddRemoveAgent(t *testing.T) {
	s := newLineSpace(3, 0)
	cell, _ := s.Cell(1)

	if !cell.IsEmpty() {
		t.Fatal("fresh cell should be empty")
	}

	a := stubAgent{id: "a"}
	b := stubAgent{id: "b"}
	if err := cell.AddAgent(a); err != nil {
		t.Fatalf("AddAgent failed: %v", err)
	}
	if err := cell.AddAgent(b); err != nil {
		t.Fatalf("AddAgent failed: %v", err)
	}
	if cell.Len() != 2 || cell.IsEmpty() {
		t.Fatalf("expected 2 agents, got %d", cell.Len())
	}

	if err := cell.RemoveAgent(a); err != nil {
		t.Fatalf("RemoveAgent failed: %v", err)
	}
	if got := cell.Agents(); len(got) != 1 || got[0].AgentID() != "b" {
		t.Fatalf("expected only agent b to remain, got %v", got)
	}

	if err := cell.RemoveAgent(a); !errors.Is(err, ErrAgentNotPresent) {
		t.Fatalf("expected ErrAgentNotPresent, got %v", err)
	}
}

func TestCell_CapacityExceededLeavesOccupancyUnchanged(t *testing.T) {
	s := newLineSpace(2, 1)
	cell, _ := s.Cell(0)

	if err := cell.AddAgent(stubAgent{id: "a"}); err != nil {
		t.Fatalf("AddAgent failed: %v", err)
	}
	if !cell.IsFull() {
		t.Fatal("cell with capacity 1 and one agent should be full")
	}

	err := cell.AddAgent(stubAgent{id: "b"})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if got := cell.Agents(); len(got) != 1 || got[0].AgentID() != "a" {
		t.Fatalf("failed add must not mutate occupancy, got %v", got)
	}
}

func TestCell_UnboundedCapacityNeverFull(t *testing.T) {
	s := newLineSpace(1, 0)
	cell, _ := s.Cell(0)
	for i := 0; i < 100; i++ {
		if err := cell.AddAgent(stubAgent{id: string(rune('a' + i))}); err != nil {
			t.Fatalf("AddAgent failed at %d: %v", i, err)
		}
	}
	if cell.IsFull() {
		t.Fatal("unbounded cell must never report full")
	}
}

func TestCell_ConnectDisconnect(t *testing.T) {
	s := newLineSpace(3, 0)
	a, _ := s.Cell(0)
	b, _ := s.Cell(1)

	if got := a.Connections(); len(got) != 1 || got[0] != b {
		t.Fatalf("expected single connection to cell 1, got %v", got)
	}

	a.Disconnect(b)
	if got := a.Connections(); len(got) != 0 {
		t.Fatalf("expected no connections after disconnect, got %v", got)
	}
	// disconnect is one-directional
	if got := b.Connections(); len(got) != 2 {
		t.Fatalf("reverse link should survive, got %v", got)
	}
}

func TestCell_NeighborhoodRadiusOne(t *testing.T) {
	s := newLineSpace(5, 0)
	cell, _ := s.Cell(2)

	nb, err := cell.Neighborhood(1, false)
	if err != nil {
		t.Fatalf("Neighborhood failed: %v", err)
	}
	if nb.Len() != 2 {
		t.Fatalf("interior line cell should have 2 direct neighbors, got %d", nb.Len())
	}

	withCenter, err := cell.Neighborhood(1, true)
	if err != nil {
		t.Fatalf("Neighborhood failed: %v", err)
	}
	if withCenter.Len() != 3 {
		t.Fatalf("includeCenter should add the origin, got %d", withCenter.Len())
	}
	found := false
	for _, c := range withCenter.Cells() {
		if c == cell {
			found = true
		}
	}
	if !found {
		t.Fatal("center cell missing from includeCenter neighborhood")
	}
}

func TestCell_NeighborhoodRadiusTwoOnLine(t *testing.T) {
	s := newLineSpace(5, 0)
	cell, _ := s.Cell(2)

	nb, err := cell.Neighborhood(2, false)
	if err != nil {
		t.Fatalf("Neighborhood failed: %v", err)
	}
	if nb.Len() != 4 {
		t.Fatalf("expected the 4 cells within 2 hops, got %d", nb.Len())
	}
	want := map[int]bool{0: true, 1: true, 3: true, 4: true}
	for _, c := range nb.Cells() {
		if !want[c.Coordinate()] {
			t.Fatalf("unexpected cell %d in radius-2 neighborhood", c.Coordinate())
		}
		if c == cell {
			t.Fatal("center must be excluded")
		}
	}
}

func TestCell_NeighborhoodMemoized(t *testing.T) {
	s := newLineSpace(5, 0)
	cell, _ := s.Cell(2)

	first, _ := cell.Neighborhood(2, false)
	second, _ := cell.Neighborhood(2, false)
	if first != second {
		t.Fatal("repeated neighborhood queries should return the memoized collection")
	}

	other, _ := cell.Neighborhood(2, true)
	if other == first {
		t.Fatal("distinct (radius, includeCenter) pairs must not share a cache entry")
	}
}

func TestCell_NeighborhoodInvalidRadius(t *testing.T) {
	s := newLineSpace(2, 0)
	cell, _ := s.Cell(0)
	if _, err := cell.Neighborhood(0, false); err == nil {
		t.Fatal("radius 0 should be rejected")
	}
}
