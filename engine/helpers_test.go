package engine

import (
	"testing"

	"chess-eval/position"
)

const inf = Infinity

func square(coord string) int {
	return int(coord[1]-'1')*8 + int(coord[0]-'a')
}

func mustPosition(t testing.TB, fen string) *position.Position {
	t.Helper()
	pos, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN %q: %v", fen, err)
	}
	return pos
}
