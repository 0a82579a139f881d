package engine

import (
	"github.com/rs/zerolog"

	"chess-eval/position"
)

// Phase runs from 62 (all pieces on the board) down to 0 (kings and pawns only).
const maxPhase = 62

// Infinity is larger than any score Evaluate can return; (-Infinity, Infinity) is an open window.
const Infinity = 32000

// Evaluator scores positions statically. Params are shared and read-only; the pawn cache is
// private, so an Evaluator must not be used from more than one goroutine at a time.
type Evaluator struct {
	params     *Params
	pawns      *PawnTable
	kingSafety [16][16]int
	bounds     lazyBounds

	log   zerolog.Logger
	trace bool
	lazy  bool
}

type Option func(*Evaluator)

// WithoutLazyEval turns off both material and positional cutoffs, so every term is computed
// regardless of the window.
func WithoutLazyEval() Option {
	return func(e *Evaluator) { e.lazy = false }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// WithTrace logs the running score after every stage at debug level.
func WithTrace() Option {
	return func(e *Evaluator) { e.trace = true }
}

// NewEvaluator builds an evaluator over params, or over DefaultParams when params is nil.
func NewEvaluator(params *Params, opts ...Option) *Evaluator {
	if params == nil {
		params = DefaultParams()
	}
	e := &Evaluator{
		params:     params,
		pawns:      NewPawnTable(params.PawnTableSize),
		kingSafety: buildKingSafety(params),
		log:        zerolog.Nop(),
		lazy:       true,
	}
	e.bounds = buildLazyBounds(params, &e.kingSafety)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Params() *Params { return e.params }

func (e *Evaluator) PawnStats() (hits, misses uint64) { return e.pawns.Stats() }

func (e *Evaluator) ClearPawnCache() { e.pawns.Clear() }

// evalContext is the scratch state of a single Evaluate call.
type evalContext struct {
	pos *position.Position
	stm position.Color

	pawns       *PawnEntry
	allPawns    uint64
	occupied    uint64
	pawnAttacks [2]uint64

	mg, eg    int
	tropism   [2]int
	dangerous [2]bool
	phase     int
}

// score interpolates the running pair by phase, from white's point of view.
func (ctx *evalContext) score() int {
	return (ctx.mg*ctx.phase + ctx.eg*(maxPhase-ctx.phase)) / maxPhase
}

func (ctx *evalContext) add(side position.Color, mg, eg int) {
	s := signFor(side)
	ctx.mg += s * mg
	ctx.eg += s * eg
}

func (e *Evaluator) traceStage(ctx *evalContext, stage string) {
	if !e.trace {
		return
	}
	e.log.Debug().
		Str("stage", stage).
		Int("mg", ctx.mg).
		Int("eg", ctx.eg).
		Int("phase", ctx.phase).
		Msg("eval")
}

func (e *Evaluator) pawnEntry(pos *position.Position) *PawnEntry {
	wp, bp := pos.Board.White.Pawns, pos.Board.Black.Pawns
	if pe, ok := e.pawns.Probe(wp, bp); ok {
		return pe
	}
	return e.pawns.Store(analyzePawns(e.params, wp, bp))
}

// Evaluate returns the score of pos from stm's point of view. When the terms not yet computed
// cannot bring the score back inside (alpha, beta), evaluation stops early: the material
// cutoff returns the bound it failed on, the positional cutoff returns its partial score.
// Either way the result lies on the same side of the window as the full evaluation.
func (e *Evaluator) Evaluate(pos *position.Position, stm position.Color, alpha, beta int) int {
	p := e.params
	wPoints, bPoints := pos.PieceMaterial(white), pos.PieceMaterial(black)
	allPawns := pos.Board.White.Pawns | pos.Board.Black.Pawns
	mating := allPawns == 0 && (wPoints > 3 || bPoints > 3)

	canWin := [2]bool{true, true}
	if wPoints < 13 && bPoints < 13 {
		canWin[white] = winningChances(pos, white, stm)
		canWin[black] = winningChances(pos, black, stm)
	}
	dangerous := [2]bool{dangerousSide(pos, white), dangerousSide(pos, black)}

	if e.lazy {
		balance := materialBalance(p, pos)
		margin := e.bounds.positional(pos, dangerous, mating) + 1
		switch e.windowSide(pos, canWin, mating, stm, balance-margin, balance+margin, alpha, beta) {
		case -1:
			return alpha
		case 1:
			return beta
		}
	}

	ctx := &evalContext{
		pos:       pos,
		stm:       stm,
		allPawns:  allPawns,
		occupied:  pos.Occupied(),
		dangerous: dangerous,
		phase:     min(maxPhase, wPoints+bPoints),
	}
	ctx.pawnAttacks[white] = pawnAttackSet(white, pos.Board.White.Pawns)
	ctx.pawnAttacks[black] = pawnAttackSet(black, pos.Board.Black.Pawns)

	ctx.mg, ctx.eg = evaluateMaterial(p, pos, stm)
	e.traceStage(ctx, "material")

	if mating {
		return e.evaluateMating(ctx, canWin)
	}

	ctx.pawns = e.pawnEntry(pos)
	ctx.mg += ctx.pawns.MG
	ctx.eg += ctx.pawns.EG
	e.traceStage(ctx, "pawns")

	if ctx.pawns.Passed[white]|ctx.pawns.Passed[black] != 0 {
		for _, side := range [2]position.Color{white, black} {
			if ctx.pawns.Passed[side] != 0 {
				mg, eg := evaluatePassedPawns(p, pos, ctx.pawns, side, stm)
				ctx.add(side, mg, eg)
			}
		}
		if (wPoints == 0 && ctx.pawns.Passed[black] != 0) || (bPoints == 0 && ctx.pawns.Passed[white] != 0) {
			ctx.eg += evaluateRaces(p, pos, ctx.pawns, stm)
		}
		e.traceStage(ctx, "passed")
	}

	for _, side := range [2]position.Color{white, black} {
		if pos.RootCastle[side] > position.NoCastling {
			ctx.add(side, evaluateCastling(p, pos, side), 0)
		}
	}

	partial := ctx.score()
	margin := e.bounds.pieces(pos, dangerous) + 1
	if !e.lazy || e.windowSide(pos, canWin, false, stm, partial-margin, partial+margin, alpha, beta) == 0 {
		ctx.tropism = [2]int{}
		for _, side := range [2]position.Color{white, black} {
			mg, eg := e.evaluateKnights(ctx, side)
			ctx.add(side, mg, eg)
			mg, eg = e.evaluateBishops(ctx, side)
			ctx.add(side, mg, eg)
			mg, eg = e.evaluateRooks(ctx, side)
			ctx.add(side, mg, eg)
			mg, eg = e.evaluateQueens(ctx, side)
			ctx.add(side, mg, eg)
		}
		e.traceStage(ctx, "pieces")
		for _, side := range [2]position.Color{white, black} {
			mg, eg := e.evaluateKing(ctx, side)
			ctx.add(side, mg, eg)
		}
		e.traceStage(ctx, "king")
	}

	score := evaluateDraws(p, pos, canWin, ctx.score())
	if e.trace {
		e.log.Debug().Int("score", score).Int("tropism_white", ctx.tropism[white]).
			Int("tropism_black", ctx.tropism[black]).Msg("eval done")
	}
	return signFor(stm) * score
}

// evaluateMating handles pawnless positions where at least one side can still mate. Only the
// endgame half of the score is used.
func (e *Evaluator) evaluateMating(ctx *evalContext, canWin [2]bool) int {
	p := e.params
	switch balance := materialBalance(p, ctx.pos); {
	case balance > 0:
		ctx.eg += evaluateMate(p, ctx.pos, white)
	case balance < 0:
		ctx.eg -= evaluateMate(p, ctx.pos, black)
	}
	e.traceStage(ctx, "mate")

	score := dragToDraw(canWin, ctx.eg, p.DrawValue)
	return signFor(ctx.stm) * score
}
