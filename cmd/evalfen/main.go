package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"chess-eval/engine"
	"chess-eval/evalpool"
	"chess-eval/position"
	"chess-eval/scorestore"
)

func main() {
	paramsPath := flag.String("params", "", "optional JSON parameter file")
	filePath := flag.String("file", "", "read FEN/EPD lines from this file instead of the arguments")
	workers := flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	trace := flag.Bool("trace", false, "log every evaluation stage")
	noLazy := flag.Bool("nolazy", false, "disable lazy evaluation cutoffs")
	whiteView := flag.Bool("white", false, "print scores from white's point of view")
	cacheDir := flag.String("cache", "", "badger directory that keeps scores between runs")
	flag.Parse()

	log := zerolog.New(zerolog.SyncWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *trace {
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

	fens := flag.Args()
	if *filePath != "" {
		lines, err := readLines(*filePath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *filePath).Msg("read positions")
		}
		fens = append(fens, lines...)
	}
	if len(fens) == 0 {
		fens = []string{position.Startpos}
	}

	positions := make([]*position.Position, 0, len(fens))
	kept := fens[:0]
	for _, fen := range fens {
		pos, err := position.FromFEN(fen)
		if err != nil {
			log.Warn().Err(err).Str("fen", fen).Msg("skipping position")
			continue
		}
		positions = append(positions, pos)
		kept = append(kept, fen)
	}

	opts := evalpool.Options{Workers: *workers, Logger: log}
	if *trace {
		opts.EvalOptions = append(opts.EvalOptions, engine.WithLogger(log), engine.WithTrace())
	}
	if *noLazy {
		opts.EvalOptions = append(opts.EvalOptions, engine.WithoutLazyEval())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var scores []int
	if *cacheDir != "" {
		store, err := scorestore.Open(*cacheDir)
		if err != nil {
			log.Fatal().Err(err).Msg("open cache")
		}
		defer store.Close()
		scores, err = evaluateCached(ctx, store, params, kept, positions, opts)
		if err != nil {
			log.Error().Err(err).Msg("evaluate")
			return
		}
	} else {
		var err error
		scores, err = evalpool.Evaluate(ctx, params, positions, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("evaluate")
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, score := range scores {
		if *whiteView && positions[i].SideToMove() == position.Black {
			score = -score
		}
		fmt.Fprintf(w, "%d\t%s\n", score, kept[i])
	}
	log.Info().Int("positions", len(scores)).Dur("elapsed", time.Since(start)).Msg("done")
}

// evaluateCached serves what it can from the store and evaluates and stores the rest.
func evaluateCached(ctx context.Context, store *scorestore.Store, params *engine.Params,
	fens []string, positions []*position.Position, opts evalpool.Options) ([]int, error) {
	fp := params.Fingerprint()
	scores := make([]int, len(positions))
	var missIdx []int
	var missPos []*position.Position
	for i, fen := range fens {
		score, ok, err := store.Get(fp, fen)
		if err != nil {
			return nil, err
		}
		if ok {
			scores[i] = score
			continue
		}
		missIdx = append(missIdx, i)
		missPos = append(missPos, positions[i])
	}
	opts.Logger.Debug().Int("cached", len(fens)-len(missIdx)).Int("missing", len(missIdx)).Msg("score cache")
	if len(missIdx) == 0 {
		return scores, nil
	}

	fresh, err := evalpool.Evaluate(ctx, params, missPos, opts)
	if err != nil {
		return nil, err
	}
	missFens := make([]string, len(missIdx))
	for j, i := range missIdx {
		scores[i] = fresh[j]
		missFens[j] = fens[i]
	}
	return scores, store.PutBatch(fp, missFens, fresh)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
