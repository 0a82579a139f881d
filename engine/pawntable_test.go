package engine

import "testing"

func TestPawnTableSizeRoundsDown(t *testing.T) {
	if n := NewPawnTable(1000).Len(); n != 512 {
		t.Fatalf("expected 512 entries, got %d", n)
	}
	if n := NewPawnTable(0).Len(); n != 1 {
		t.Fatalf("expected a single entry, got %d", n)
	}
}

func TestPawnTableProbeStore(t *testing.T) {
	p := DefaultParams()
	table := NewPawnTable(64)
	wp := PositionBB[square("e4")] | PositionBB[square("d4")]
	bp := PositionBB[square("e5")]

	if _, ok := table.Probe(wp, bp); ok {
		t.Fatalf("expected a miss on an empty table")
	}
	stored := table.Store(analyzePawns(p, wp, bp))
	got, ok := table.Probe(wp, bp)
	if !ok {
		t.Fatalf("expected a hit after store")
	}
	if *got != *stored {
		t.Fatalf("expected the stored entry back")
	}

	// Empty boards are a real key, not an empty slot.
	if _, ok := table.Probe(0, 0); ok {
		t.Fatalf("expected a miss for a pawnless key")
	}
	table.Store(analyzePawns(p, 0, 0))
	if _, ok := table.Probe(0, 0); !ok {
		t.Fatalf("expected a hit for a stored pawnless key")
	}

	if hits, misses := table.Stats(); hits != 2 || misses != 2 {
		t.Fatalf("expected 2 hits and 2 misses, got %d/%d", hits, misses)
	}
}

func TestPawnTableCollisionOverwrites(t *testing.T) {
	p := DefaultParams()
	table := NewPawnTable(1)
	a := PositionBB[square("a2")]
	b := PositionBB[square("h2")]

	table.Store(analyzePawns(p, a, 0))
	table.Store(analyzePawns(p, b, 0))
	if _, ok := table.Probe(a, 0); ok {
		t.Fatalf("expected the first entry to be overwritten")
	}
	if _, ok := table.Probe(b, 0); !ok {
		t.Fatalf("expected the second entry to survive")
	}

	table.Clear()
	if _, ok := table.Probe(b, 0); ok {
		t.Fatalf("expected a miss after clear")
	}
}
