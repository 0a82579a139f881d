package engine

import (
	"testing"
)

func TestPassedAndFileMasks(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3p4/8/8/P3P3/4K3 w - - 0 1")
	pe := analyzePawns(DefaultParams(), pos.Board.White.Pawns, pos.Board.Black.Pawns)

	if pe.Passed[white] != 1<<uint(fileA) {
		t.Fatalf("expected only the a-pawn passed, got %08b", pe.Passed[white])
	}
	if pe.Passed[black] != 0 {
		t.Fatalf("expected no black passer, got %08b", pe.Passed[black])
	}
	if pe.Files[white] != 1<<uint(fileA)|1<<uint(fileE) {
		t.Fatalf("expected pawns on a and e files, got %08b", pe.Files[white])
	}
	if pe.Files[black] != 1<<uint(fileD) {
		t.Fatalf("expected black pawn on d file, got %08b", pe.Files[black])
	}
}

func TestPawnEntryIsColorSymmetric(t *testing.T) {
	p := DefaultParams()
	for _, fen := range symmetryFENs {
		pos := mustPosition(t, fen)
		m := pos.Mirror()
		a := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)
		b := analyzePawns(p, m.Board.White.Pawns, m.Board.Black.Pawns)
		if a.MG != -b.MG || a.EG != -b.EG {
			t.Fatalf("%s: expected (%d,%d) negated, got (%d,%d)", fen, a.MG, a.EG, b.MG, b.EG)
		}
		if a.Passed[white] != b.Passed[black] || a.Defects[white] != b.Defects[black] {
			t.Fatalf("%s: expected mirrored passers and defects to swap sides", fen)
		}
	}
}

func TestCachedEntryMatchesFreshAnalysis(t *testing.T) {
	e := NewEvaluator(nil, WithoutLazyEval())
	for _, fen := range symmetryFENs {
		pos := mustPosition(t, fen)
		wp, bp := pos.Board.White.Pawns, pos.Board.Black.Pawns
		if wp|bp == 0 {
			// Pawnless positions never reach the pawn cache.
			continue
		}
		e.Evaluate(pos, pos.SideToMove(), -inf, inf)

		cached, ok := e.pawns.Probe(wp, bp)
		if !ok {
			t.Fatalf("%s: expected the pawn entry to be cached", fen)
		}
		if fresh := analyzePawns(e.params, wp, bp); *cached != fresh {
			t.Fatalf("%s: expected cached entry %+v, got %+v", fen, fresh, *cached)
		}
	}
}

func TestKingsideShelterDefects(t *testing.T) {
	p := DefaultParams()
	defects := func(fen string) int {
		pos := mustPosition(t, fen)
		pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)
		return pe.Defects[white][defectsKingside]
	}

	intact := defects("4k3/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	advanced := defects("4k3/8/8/8/8/6P1/5P1P/6K1 w - - 0 1")
	missing := defects("4k3/8/8/8/8/8/5P1P/6K1 w - - 0 1")

	if intact >= advanced {
		t.Fatalf("expected g3 (%d) to add defects over g2 (%d)", advanced, intact)
	}
	if advanced >= missing {
		t.Fatalf("expected an open g-file (%d) to be worse than g3 (%d)", missing, advanced)
	}
}

func TestIsolatedPawnPenalty(t *testing.T) {
	p := DefaultParams()
	// Same d-pawn, once with a c-pawn beside it and once alone.
	supported := analyzePawns(p, PositionBB[square("c3")]|PositionBB[square("d4")], 0)
	isolated := analyzePawns(p, PositionBB[square("a3")]|PositionBB[square("d4")], 0)
	if isolated.MG >= supported.MG {
		t.Fatalf("expected isolated pawns to score below connected ones, got %d vs %d", isolated.MG, supported.MG)
	}
}

func TestPawnMovesStopAtContestedSquare(t *testing.T) {
	own := PositionBB[square("d2")]
	// c4 and e4 both hit d3, which no own pawn defends.
	enemy := PositionBB[square("c4")] | PositionBB[square("e4")]
	moves := pawnMoves(white, own, enemy)
	if moves&PositionBB[square("d2")] == 0 {
		t.Fatalf("expected the pawn's own square in its reach")
	}
	if moves&PositionBB[square("d3")] != 0 {
		t.Fatalf("expected d3 to be out of reach, got %x", moves)
	}
}
