// Package evalpool scores batches of positions on several goroutines. Every worker owns its
// own evaluator, so pawn caches are never shared.
package evalpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chess-eval/engine"
	"chess-eval/position"
)

var ErrNilPosition = errors.New("nil position")

type Options struct {
	// Workers defaults to GOMAXPROCS when zero or negative.
	Workers     int
	Logger      zerolog.Logger
	EvalOptions []engine.Option
}

// Evaluate scores every position for its side to move over an open window. Results are in
// input order. The context is checked between positions; a cancelled batch returns ctx.Err().
func Evaluate(ctx context.Context, params *engine.Params, positions []*position.Position, opts Options) ([]int, error) {
	if params == nil {
		params = engine.DefaultParams()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(positions), 1))

	scores := make([]int, len(positions))
	jobs := make(chan int, 128)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range positions {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			e := engine.NewEvaluator(params, opts.EvalOptions...)
			n := 0
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				pos := positions[i]
				if pos == nil {
					return fmt.Errorf("position %d: %w", i, ErrNilPosition)
				}
				scores[i] = e.Evaluate(pos, pos.SideToMove(), -engine.Infinity, engine.Infinity)
				n++
			}
			hits, misses := e.PawnStats()
			opts.Logger.Debug().
				Int("worker", w).
				Int("positions", n).
				Uint64("pawn_hits", hits).
				Uint64("pawn_misses", misses).
				Msg("worker done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
