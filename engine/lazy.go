package engine

import (
	"math/bits"

	"chess-eval/position"
)

// lazyBounds caps how far each family of terms can move a score, per unit of the thing it is
// charged per. A cutoff taken on a partial score adds the bounds of everything it skips.
type lazyBounds struct {
	material int // tempo, bad trade and both bishop pairs
	mate     int

	pawn, passer, outside, race int
	castling                    int

	knight, bishop, rook, queen int
	kingPlace, kingSafety       int
}

func absMax(values ...int) int {
	m := 0
	for _, v := range values {
		m = max(m, abs(v))
	}
	return m
}

func pairAbs(p Pair) int { return max(abs(p.MG), abs(p.EG)) }

func rankAbs(t RankTable) int { return max(absMax(t.MG[:]...), absMax(t.EG[:]...)) }

func psqtAbs(t *PSQT) int { return max(absMax(t.MG[:]...), absMax(t.EG[:]...)) }

func buildLazyBounds(p *Params, kingSafety *[16][16]int) lazyBounds {
	weight := absMax(p.MobilityWeight[:]...)
	b := lazyBounds{
		material: pairAbs(p.Tempo) + abs(p.BadTrade) + 2*pairAbs(p.BishopPair),
		mate:     max(absMax(p.MateEdge[:]...)+4*abs(p.KingKingTropism), absMax(p.MateKBN[:]...)),

		pawn: psqtAbs(&p.Pawn) + 2*pairAbs(p.PawnIsolated) + 2*pairAbs(p.PawnWeak) +
			pairAbs(p.PawnDoubled) + pairAbs(p.PawnConnected) + rankAbs(p.PassedCandidate) +
			pairAbs(p.PassedHidden),
		passer: rankAbs(p.PassedValue) + rankAbs(p.PassedConnected) + rankAbs(p.RookBehindPasser) +
			absMax(p.PassedObstructed[:]...) + rankAbs(p.PassedBlockadedEnemy) +
			rankAbs(p.PassedBlockadedFriendly) + absMax(p.PassedFarAway[:]...) +
			absMax(p.PassedNotFarAway[:]...) + 7*absMax(p.PassedKingDistance[:]...),
		outside:  pairAbs(p.OutsidePasser),
		race:     abs(p.PawnCanPromote) + 50,
		castling: 3 * max(abs(p.DevelopmentNotCastled), abs(p.DevelopmentLosingCastle)),

		knight: psqtAbs(&p.Knight) + 3*absMax(p.KnightOutpost[:]...) + 8*weight + abs(p.KnightMobilityBase),
		bishop: psqtAbs(&p.Bishop) + 3*absMax(p.BishopOutpost[:]...) + abs(p.BishopTrapped) +
			13*weight + abs(p.BishopMobilityBase) + abs(p.BishopBlocked) + pairAbs(p.BishopWingPawns),
		rook: psqtAbs(&p.Rook) + pairAbs(p.RookOpenFile) + pairAbs(p.RookHalfOpenFile) + abs(p.RookTrapped) +
			pairAbs(p.RookOn7th) + pairAbs(p.RookConnected7th) + 14*weight + abs(p.RookMobilityBase) +
			abs(p.RookCornered),
		queen: psqtAbs(&p.Queen) + 8,

		kingPlace: max(absMax(p.KingBothWings[:]...), absMax(p.KingKingside[:]...), absMax(p.KingQueenside[:]...)),
	}
	for i := range kingSafety {
		b.kingSafety = max(b.kingSafety, absMax(kingSafety[i][:]...))
	}
	return b
}

// pieces bounds the piece and king terms, the part the positional cutoff skips.
func (b *lazyBounds) pieces(pos *position.Position, dangerous [2]bool) int {
	margin := 0
	for _, side := range [2]position.Color{white, black} {
		own := pos.Pieces(side)
		margin += bits.OnesCount64(own.Knights)*b.knight +
			bits.OnesCount64(own.Bishops)*b.bishop +
			bits.OnesCount64(own.Rooks)*b.rook +
			bits.OnesCount64(own.Queens)*b.queen
		if dangerous[side.Other()] {
			margin += b.kingSafety
		}
	}
	if pos.Board.White.Pawns|pos.Board.Black.Pawns != 0 {
		margin += 2 * b.kingPlace
	}
	return margin
}

// positional bounds everything but raw material, the part the material cutoff skips.
func (b *lazyBounds) positional(pos *position.Position, dangerous [2]bool, mating bool) int {
	if mating {
		return b.material + b.mate
	}
	pawns := bits.OnesCount64(pos.Board.White.Pawns | pos.Board.Black.Pawns)
	margin := b.material + pawns*(b.pawn+b.passer) + 2*b.outside + 2*b.castling + b.pieces(pos, dangerous)
	if pos.PieceMaterial(white) == 0 || pos.PieceMaterial(black) == 0 {
		margin += b.race
	}
	return margin
}

// dangerousSide: side has enough attacking force for king safety and tropism to count.
func dangerousSide(pos *position.Position, side position.Color) bool {
	points := pos.PieceMaterial(side)
	return (pos.Pieces(side).Queens != 0 && points > 9) || (pos.RookCount(side) >= 2 && points > 15)
}

// windowSide tells where every white-relative raw score in [lo, hi] ends up after the draw
// adjustments, from stm's point of view: -1 when all fall below alpha, 1 when all rise above
// beta, 0 otherwise. The adjustments never reverse the order of two scores, so checking the
// ends of the range covers all of it.
func (e *Evaluator) windowSide(pos *position.Position, canWin [2]bool, mating bool, stm position.Color,
	lo, hi, alpha, beta int) int {
	a := signFor(stm) * e.adjustDraws(pos, canWin, mating, lo)
	b := signFor(stm) * e.adjustDraws(pos, canWin, mating, hi)
	if a > b {
		a, b = b, a
	}
	switch {
	case b < alpha:
		return -1
	case a > beta:
		return 1
	}
	return 0
}

func (e *Evaluator) adjustDraws(pos *position.Position, canWin [2]bool, mating bool, score int) int {
	if mating {
		return dragToDraw(canWin, score, e.params.DrawValue)
	}
	return evaluateDraws(e.params, pos, canWin, score)
}
