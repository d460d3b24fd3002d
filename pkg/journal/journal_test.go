package journal

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_AppendAssignsIDs(t *testing.T) {
	s := NewStore(testLogger(), 10)

	e1 := s.Append(Event{Type: TypeItemAdded, ProductID: "rice", Quantity: 2})
	e2 := s.Append(Event{Type: TypeItemRemoved, ProductID: "rice", Quantity: 1})

	if e1.ID != 1 || e2.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", e1.ID, e2.ID)
	}
	if e1.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestStore_CapacityDropsOldest(t *testing.T) {
	s := NewStore(testLogger(), 3)
	for i := 0; i < 5; i++ {
		s.Append(Event{Type: TypeItemAdded})
	}

	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	recent := s.Recent(0)
	if recent[0].ID != 3 || recent[2].ID != 5 {
		t.Errorf("kept ids %d..%d, want 3..5", recent[0].ID, recent[2].ID)
	}
}

func TestStore_Recent(t *testing.T) {
	s := NewStore(testLogger(), 10)
	for i := 0; i < 4; i++ {
		s.Append(Event{Type: TypeItemAdded})
	}

	recent := s.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].ID != 3 || recent[1].ID != 4 {
		t.Errorf("ids = %d, %d; want 3, 4", recent[0].ID, recent[1].ID)
	}

	// returned slice is a copy
	recent[0].ProductID = "mutated"
	if s.Recent(0)[2].ProductID == "mutated" {
		t.Error("Recent leaked internal storage")
	}
}
