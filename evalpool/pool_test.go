package evalpool

import (
	"context"
	"errors"
	"testing"

	"chess-eval/engine"
	"chess-eval/position"
)

var fens = []string{
	position.Startpos,
	"r1bq1rk1/pp2bppp/2n1pn2/3p4/2PP4/2N1PN2/PP1B1PPP/R2QKB1R w KQ - 2 9",
	"2r3k1/pp3ppp/8/3P4/1P6/P3R3/5PPP/6K1 w - - 1 30",
	"8/5pk1/6p1/1P6/8/6P1/5PKP/8 b - - 0 45",
	"8/8/8/4k3/8/8/2B5/1N2K3 w - - 0 70",
	"8/8/4K3/8/4P3/8/8/k7 w - - 0 1",
}

func loadPositions(t *testing.T, n int) []*position.Position {
	t.Helper()
	var out []*position.Position
	for len(out) < n {
		for _, fen := range fens {
			pos, err := position.FromFEN(fen)
			if err != nil {
				t.Fatalf("parse FEN %q: %v", fen, err)
			}
			out = append(out, pos)
		}
	}
	return out[:n]
}

func TestPoolMatchesSequential(t *testing.T) {
	positions := loadPositions(t, 60)
	got, err := Evaluate(context.Background(), nil, positions, Options{Workers: 4})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != len(positions) {
		t.Fatalf("expected %d scores, got %d", len(positions), len(got))
	}

	e := engine.NewEvaluator(nil)
	for i, pos := range positions {
		want := e.Evaluate(pos, pos.SideToMove(), -engine.Infinity, engine.Infinity)
		if got[i] != want {
			t.Fatalf("position %d: expected %d, got %d", i, want, got[i])
		}
	}
}

func TestPoolEmptyBatch(t *testing.T) {
	got, err := Evaluate(context.Background(), nil, nil, Options{})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no scores, got %d", len(got))
	}
}

func TestPoolCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, nil, loadPositions(t, 500), Options{Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPoolNilPosition(t *testing.T) {
	positions := loadPositions(t, 3)
	positions[1] = nil
	_, err := Evaluate(context.Background(), nil, positions, Options{Workers: 1})
	if !errors.Is(err, ErrNilPosition) {
		t.Fatalf("expected ErrNilPosition, got %v", err)
	}
}
