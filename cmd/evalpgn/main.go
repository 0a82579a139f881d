package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"chess-eval/engine"
	"chess-eval/evalpool"
	"chess-eval/position"
)

func main() {
	paramsPath := flag.String("params", "", "optional JSON parameter file")
	workers := flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	params := engine.DefaultParams()
	if *paramsPath != "" {
		p, err := engine.LoadParams(*paramsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load params")
		}
		params = p
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("open pgn")
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	scanner := chess.NewScanner(in)
	games := 0
	for scanner.Scan() {
		games++
		game := scanner.Next()
		positions, err := gamePositions(game)
		if err != nil {
			log.Error().Err(err).Int("game", games).Msg("skipping game")
			continue
		}
		scores, err := evalpool.Evaluate(ctx, params, positions, evalpool.Options{Workers: *workers, Logger: log})
		if err != nil {
			log.Fatal().Err(err).Msg("evaluate")
		}
		fmt.Fprintf(w, "[Game %d] %s - %s\n", games, tag(game, "White"), tag(game, "Black"))
		for ply, score := range scores {
			// Report from white's point of view so a game reads as one curve.
			if positions[ply].SideToMove() == position.Black {
				score = -score
			}
			fmt.Fprintf(w, "%d\t%d\n", ply, score)
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Fatal().Err(err).Msg("read pgn")
	}
	log.Info().Int("games", games).Msg("done")
}

func tag(game *chess.Game, key string) string {
	if tp := game.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return "?"
}

// gamePositions converts every position of the game, marking a side as castled from the ply
// after its castling move onwards.
func gamePositions(game *chess.Game) ([]*position.Position, error) {
	moves := game.Moves()
	var castled [2]bool
	out := make([]*position.Position, 0, len(moves)+1)
	for ply, cp := range game.Positions() {
		pos, err := position.FromFEN(cp.String())
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", ply, err)
		}
		for c := position.White; c <= position.Black; c++ {
			if castled[c] {
				pos.Castle[c] = position.Castled
				pos.RootCastle[c] = position.Castled
			}
		}
		out = append(out, pos)

		if ply < len(moves) && (moves[ply].HasTag(chess.KingSideCastle) || moves[ply].HasTag(chess.QueenSideCastle)) {
			if cp.Turn() == chess.White {
				castled[position.White] = true
			} else {
				castled[position.Black] = true
			}
		}
	}
	return out, nil
}
