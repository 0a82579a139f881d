package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// PawnTable caches pawn entries by pawn placement. Distinct structures that land on the same
// slot overwrite each other; a miss only costs a recomputation. Not safe for concurrent use.
type PawnTable struct {
	entries []PawnEntry
	mask    uint64
	// last short-circuits the table when consecutive probes share a pawn structure.
	last PawnEntry

	hits, misses uint64
}

// NewPawnTable allocates size entries, rounded down to a power of two.
func NewPawnTable(size int) *PawnTable {
	n := floorPow2(max(size, 1))
	return &PawnTable{entries: make([]PawnEntry, n), mask: uint64(n - 1)}
}

func pawnHashIndex(whitePawns, blackPawns uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], whitePawns)
	binary.LittleEndian.PutUint64(buf[8:], blackPawns)
	return xxhash.Sum64(buf[:])
}

// Probe returns the cached entry for the pawn pair and whether it was a hit.
func (t *PawnTable) Probe(whitePawns, blackPawns uint64) (*PawnEntry, bool) {
	if t.last.matches(whitePawns, blackPawns) {
		t.hits++
		return &t.last, true
	}
	slot := &t.entries[pawnHashIndex(whitePawns, blackPawns)&t.mask]
	if slot.matches(whitePawns, blackPawns) {
		t.hits++
		t.last = *slot
		return &t.last, true
	}
	t.misses++
	return nil, false
}

// Store overwrites the entry's slot and makes it the last-seen entry.
func (t *PawnTable) Store(entry PawnEntry) *PawnEntry {
	t.entries[pawnHashIndex(entry.WhitePawns, entry.BlackPawns)&t.mask] = entry
	t.last = entry
	return &t.last
}

func (t *PawnTable) Clear() {
	for i := range t.entries {
		t.entries[i] = PawnEntry{}
	}
	t.last = PawnEntry{}
	t.hits, t.misses = 0, 0
}

func (t *PawnTable) Stats() (hits, misses uint64) {
	return t.hits, t.misses
}

func (t *PawnTable) Len() int { return len(t.entries) }
