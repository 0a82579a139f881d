package engine

import (
	"testing"
)

func TestWinningChances(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"rook against bishop", "8/8/4k3/8/8/2b5/8/R3K3 w - - 0 1", false},
		{"lone knight", "8/8/4k3/8/8/8/8/1N2K3 w - - 0 1", false},
		{"queen", "8/8/4k3/8/8/8/8/Q3K3 w - - 0 1", true},
		{"two knights", "8/8/8/4k3/8/8/8/1N2K1N1 w - - 0 1", false},
		{"rook and knight against rook", "8/7r/4k3/8/8/8/8/RN2K3 w - - 0 1", false},
		{"rook and knight against rook with king on edge", "k7/7r/8/8/8/8/8/RN2K3 w - - 0 1", true},
		{"rook and pawn against rook, defender in front", "7r/8/4k3/8/4P3/8/8/R3K3 w - - 0 1", false},
		{"rook and pawn against rook, defender aside", "7r/8/8/8/4P3/8/8/R3K2k w - - 0 1", true},
		{"rook pawn wrong bishop", "7k/8/8/8/7P/3B4/8/4K3 w - - 0 1", false},
		{"rook pawn right bishop", "7k/8/8/8/7P/4B3/8/4K3 w - - 0 1", true},
		{"pawn ending", "4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := winningChances(pos, white, pos.SideToMove()); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWinningChancesRookPawnKingDistance(t *testing.T) {
	// Black's king is two steps from h8; it only gets there in time when it moves first.
	pos := mustPosition(t, "8/8/5k2/8/7P/8/8/4K3 w - - 0 1")
	if !winningChances(pos, white, white) {
		t.Fatalf("expected white to win with the move")
	}
	if winningChances(pos, white, black) {
		t.Fatalf("expected a draw with black to move")
	}
}

func TestLoneKingAlwaysCannotWin(t *testing.T) {
	pos := mustPosition(t, "8/8/4k3/8/8/8/8/Q3K3 w - - 0 1")
	if winningChances(pos, black, white) {
		t.Fatalf("expected the bare king to have no winning chances")
	}
}

func TestOppositeBishopsHalveScore(t *testing.T) {
	p := DefaultParams()
	canWin := [2]bool{true, true}

	opposite := mustPosition(t, "4k3/8/3b4/8/8/3B4/3P4/4K3 w - - 0 1")
	if !oppositeBishops(opposite) {
		t.Fatalf("expected d3 and d6 bishops to be on opposite colours")
	}
	if got := evaluateDraws(p, opposite, canWin, 100); got != 50+p.DrawValue {
		t.Fatalf("expected halved score, got %d", got)
	}

	same := mustPosition(t, "4k3/8/2b5/8/8/3B4/3P4/4K3 w - - 0 1")
	if oppositeBishops(same) {
		t.Fatalf("expected c6 and d3 bishops to share a colour")
	}
	if got := evaluateDraws(p, same, canWin, 100); got != 100 {
		t.Fatalf("expected the score untouched, got %d", got)
	}
}

func TestDragToDraw(t *testing.T) {
	tests := []struct {
		canWin [2]bool
		score  int
		want   int
	}{
		{[2]bool{false, false}, 300, 0},
		{[2]bool{false, true}, 320, 20},
		{[2]bool{false, true}, -320, -320},
		{[2]bool{true, false}, -320, -20},
		{[2]bool{true, true}, 320, 320},
	}
	for _, tt := range tests {
		if got := dragToDraw(tt.canWin, tt.score, 0); got != tt.want {
			t.Fatalf("canWin %v score %d: expected %d, got %d", tt.canWin, tt.score, tt.want, got)
		}
	}
}

func TestDrawAdjustmentKeepsOrder(t *testing.T) {
	p := DefaultParams()
	p.DrawValue = -25
	positions := []string{
		"4k3/8/2b5/8/8/3B4/3P4/4K3 w - - 90 1",
		"4k3/8/3b4/8/8/3B4/3P4/4K3 w - - 0 1",
		"7k/8/8/8/7P/3B4/8/4K3 w - - 0 1",
	}
	for _, fen := range positions {
		pos := mustPosition(t, fen)
		for _, canWin := range [][2]bool{{true, true}, {false, true}, {true, false}, {false, false}} {
			prev := evaluateDraws(p, pos, canWin, -2000)
			for score := -1999; score <= 2000; score += 7 {
				got := evaluateDraws(p, pos, canWin, score)
				if got < prev {
					t.Fatalf("%s canWin %v: score %d adjusted to %d, below %d for a lower score", fen, canWin, score, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestMateEdgeRewardsCornering(t *testing.T) {
	p := DefaultParams()
	center := evaluateMate(p, mustPosition(t, "8/8/8/3k4/8/8/8/Q3K3 w - - 0 1"), white)
	edge := evaluateMate(p, mustPosition(t, "3k4/8/8/8/8/8/8/Q3K3 w - - 0 1"), white)
	corner := evaluateMate(p, mustPosition(t, "k7/8/8/8/8/8/8/Q3K3 w - - 0 1"), white)
	if !(center < edge && edge < corner) {
		t.Fatalf("expected center < edge < corner, got %d %d %d", center, edge, corner)
	}
}
