package engine

import (
	"testing"

	"chess-eval/position"
)

func TestRaceKingEscortsPawn(t *testing.T) {
	p := DefaultParams()
	pos := mustPosition(t, "8/8/4K3/8/4P3/8/8/k7 w - - 0 1")
	pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)

	if got := evaluateRaces(p, pos, &pe, white); got < p.PawnCanPromote {
		t.Fatalf("expected at least %d for an escorted pawn, got %d", p.PawnCanPromote, got)
	}

	m := pos.Mirror()
	me := analyzePawns(p, m.Board.White.Pawns, m.Board.Black.Pawns)
	if got := evaluateRaces(p, m, &me, black); got > -p.PawnCanPromote {
		t.Fatalf("expected at most %d for black's escorted pawn, got %d", -p.PawnCanPromote, got)
	}
}

func TestRaceFarKingCannotStopEscortedPawn(t *testing.T) {
	p := DefaultParams()
	e := NewEvaluator(p)
	// The black king on e8 is six squares from the e2 pawn.
	pos := mustPosition(t, "4k3/8/8/8/4K3/8/4P3/8 w - - 0 1")
	pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)

	if got := evaluateRaces(p, pos, &pe, white); got != p.PawnCanPromote {
		t.Fatalf("expected %d for the escorted pawn, got %d", p.PawnCanPromote, got)
	}
	if got := e.Evaluate(pos, white, -inf, inf); got < p.PawnCanPromote {
		t.Fatalf("expected an evaluation of at least %d, got %d", p.PawnCanPromote, got)
	}

	m := pos.Mirror()
	me := analyzePawns(p, m.Board.White.Pawns, m.Board.Black.Pawns)
	if got := evaluateRaces(p, m, &me, black); got != -p.PawnCanPromote {
		t.Fatalf("expected %d for black's escorted pawn, got %d", -p.PawnCanPromote, got)
	}
	if got := e.Evaluate(m, black, -inf, inf); got < p.PawnCanPromote {
		t.Fatalf("expected black's evaluation of at least %d, got %d", p.PawnCanPromote, got)
	}
}

func TestRaceUnstoppableRunner(t *testing.T) {
	p := DefaultParams()
	pos := mustPosition(t, "8/8/2P5/7k/8/8/8/7K w - - 0 1")
	pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)

	want := p.PawnCanPromote + 30
	if got := evaluateRaces(p, pos, &pe, white); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestRaceCaughtPawnIsDeferred(t *testing.T) {
	p := DefaultParams()
	pos := mustPosition(t, "8/8/4k3/8/4P3/8/8/7K b - - 0 1")
	pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)

	if got := evaluateRaces(p, pos, &pe, black); got != 0 {
		t.Fatalf("expected the race to be left alone, got %d", got)
	}
}

func TestKingCatchesPawn(t *testing.T) {
	tests := []struct {
		pawn, king string
		toMove     bool
		want       bool
	}{
		{"a5", "e7", false, false},
		{"a5", "e7", true, true},
		{"a5", "d7", false, true},
		// Second rank pawns count their double step.
		{"h2", "b6", false, false},
		{"h2", "b6", true, true},
	}
	for _, tt := range tests {
		got := kingCatchesPawn(white, square(tt.pawn), square(tt.king), tt.toMove)
		if got != tt.want {
			t.Fatalf("pawn %s king %s to move %v: expected %v, got %v", tt.pawn, tt.king, tt.toMove, tt.want, got)
		}
	}
}

func TestHasOpposition(t *testing.T) {
	tests := []struct {
		onMove      bool
		king, enemy string
		want        bool
	}{
		{false, "e4", "e6", true},
		{false, "e4", "e7", false},
		{true, "e4", "e7", true},
		{false, "e4", "d5", true},
	}
	for _, tt := range tests {
		if got := hasOpposition(tt.onMove, square(tt.king), square(tt.enemy)); got != tt.want {
			t.Fatalf("%s vs %s on move %v: expected %v, got %v", tt.king, tt.enemy, tt.onMove, tt.want, got)
		}
	}
}

func TestIsOutsidePasser(t *testing.T) {
	if !isOutsidePasser(1<<uint(fileA), 1<<uint(fileE)|1<<uint(fileF)) {
		t.Fatalf("expected an a-file passer to be outside e/f pawns")
	}
	if isOutsidePasser(1<<uint(fileD), 1<<uint(fileE)) {
		t.Fatalf("expected a d-file passer next to an e-pawn to be inside")
	}
	if isOutsidePasser(1<<uint(fileA), 0) {
		t.Fatalf("expected no outside passer without enemy pawns")
	}
}

func TestPassedPawnScoresGrowWithRank(t *testing.T) {
	p := DefaultParams()
	prev := -inf
	for _, fen := range []string{
		"4k3/8/8/8/8/8/P7/4K3 w - - 0 1",
		"4k3/8/8/8/P7/8/8/4K3 w - - 0 1",
		"4k3/8/P7/8/8/8/8/4K3 w - - 0 1",
	} {
		pos := mustPosition(t, fen)
		pe := analyzePawns(p, pos.Board.White.Pawns, pos.Board.Black.Pawns)
		_, eg := evaluatePassedPawns(p, pos, &pe, position.White, position.White)
		if eg <= prev {
			t.Fatalf("%s: expected passed score above %d, got %d", fen, prev, eg)
		}
		prev = eg
	}
}
