package main

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"chess-eval/position"
)

const italian = `[Event "test"]
[White "a"]
[Black "b"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Nf6 5. d3 d6 *`

func TestGamePositionsTracksCastling(t *testing.T) {
	opt, err := chess.PGN(strings.NewReader(italian))
	if err != nil {
		t.Fatalf("parse pgn: %v", err)
	}
	positions, err := gamePositions(chess.NewGame(opt))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(positions) != 11 {
		t.Fatalf("expected 11 positions, got %d", len(positions))
	}

	// Ply 6 is white's castling move; the position after it is ply 7.
	if got := positions[6].Castle[position.White]; got != position.BothSides {
		t.Fatalf("expected white to keep both rights before castling, got %d", got)
	}
	if got := positions[7].Castle[position.White]; got != position.Castled {
		t.Fatalf("expected white castled after O-O, got %d", got)
	}
	if got := positions[10].Castle[position.Black]; got != position.BothSides {
		t.Fatalf("expected black rights untouched, got %d", got)
	}
	if positions[10].SideToMove() != position.White {
		t.Fatalf("expected white to move after 5...d6")
	}
}
