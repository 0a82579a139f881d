package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/position"
)

func countMaterial(p *Params, bb *dragontoothmg.Bitboards) int {
	return bits.OnesCount64(bb.Pawns)*p.PawnValue +
		bits.OnesCount64(bb.Knights)*p.KnightValue +
		bits.OnesCount64(bb.Bishops)*p.BishopValue +
		bits.OnesCount64(bb.Rooks)*p.RookValue +
		bits.OnesCount64(bb.Queens)*p.QueenValue
}

// materialBalance is white material minus black material.
func materialBalance(p *Params, pos *position.Position) int {
	return countMaterial(p, &pos.Board.White) - countMaterial(p, &pos.Board.Black)
}

// evaluateMaterial adds raw material, the side-to-move bonus, the bad trade adjustment and
// the bishop pair, all from white's point of view.
func evaluateMaterial(p *Params, pos *position.Position, stm position.Color) (mg, eg int) {
	balance := materialBalance(p, pos)
	mg, eg = balance, balance
	if stm == white {
		mg += p.Tempo.MG
		eg += p.Tempo.EG
	} else {
		mg -= p.Tempo.MG
		eg -= p.Tempo.EG
	}

	// Trading a piece for pawns, or two minors for a rook, is penalized unless the piece
	// point gap is the two points that make up the usual exchange difference.
	majors := pos.Majors(white) - pos.Majors(black)
	minors := pos.Minors(white) - pos.Minors(black)
	if majors != 0 || minors != 0 {
		diff := pos.PieceMaterial(white) - pos.PieceMaterial(black)
		if diff != 0 && abs(diff) != 2 {
			mg += sign(diff) * p.BadTrade
			eg += sign(diff) * p.BadTrade
		}
	}

	if pos.BishopCount(white) > 1 {
		mg += p.BishopPair.MG
		eg += p.BishopPair.EG
	}
	if pos.BishopCount(black) > 1 {
		mg -= p.BishopPair.MG
		eg -= p.BishopPair.EG
	}
	return mg, eg
}
