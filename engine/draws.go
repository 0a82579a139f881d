package engine

import (
	"math/bits"

	"chess-eval/position"
)

// winningChances reports whether side could convert an edge in material. Only called when
// both sides are down to fewer than 13 piece points.
func winningChances(pos *position.Position, side, stm position.Color) bool {
	enemySide := side.Other()
	own, enemy := pos.Pieces(side), pos.Pieces(enemySide)
	points, enemyPoints := pos.PieceMaterial(side), pos.PieceMaterial(enemySide)
	pawns := bits.OnesCount64(own.Pawns)

	// Pure pawn endings with a non-rook pawn on each side are always playable.
	if points == 0 && enemyPoints == 0 &&
		own.Pawns&notRookPawns != 0 && enemy.Pawns&notRookPawns != 0 {
		return true
	}

	// One major up against the matching number of minors, e.g. KR vs KB.
	majors := pos.Majors(side) - pos.Majors(enemySide)
	if abs(majors) == 1 && majors == pos.Minors(enemySide)-pos.Minors(side) && pawns == 0 {
		return false
	}

	if pawns == 0 {
		if points <= 3 {
			return false
		}
		if points-enemyPoints <= 3 && enemy.Kings&maskNotEdge != 0 {
			return false
		}
	} else if own.Pawns&notRookPawns == 0 && !rookPawnPlayable(pos, side, stm) {
		return false
	}

	// KRP vs KR with the defending king in front of the pawn.
	if pawns == 1 && enemy.Pawns == 0 && points == 5 && enemyPoints == 5 {
		sq := bits.TrailingZeros64(own.Pawns)
		kingSq := pos.KingSquare(enemySide)
		if fileDistance(kingSq, sq) <= 1 &&
			relativeRank(side, rankOf(kingSq)) > relativeRank(side, rankOf(sq)) {
			return false
		}
	}

	if pawns > 0 {
		return true
	}
	if points == 6 && enemyPoints == 3 && (own.Knights != 0 || enemy.Knights == 0) {
		return false
	}
	// Two knights cannot force mate on a bare king.
	if points == 6 && own.Bishops == 0 && enemyPoints+bits.OnesCount64(enemy.Pawns) == 0 {
		return false
	}
	return true
}

// rookPawnPlayable handles a side whose pawns all stand on rook files. It is only a draw when
// the material is minimal, the bishop (if any) cannot cover the corner and the defending king
// already sits next to the promotion square.
func rookPawnPlayable(pos *position.Position, side, stm position.Color) bool {
	own := pos.Pieces(side)
	points := pos.PieceMaterial(side)
	if points > 3 || (points == 3 && own.Knights != 0) {
		return true
	}
	if own.Pawns&onlyFile[fileA] != 0 && own.Pawns&onlyFile[fileH] != 0 {
		return true
	}
	if own.Bishops != 0 {
		dark := 0
		if own.Bishops&darkSquares != 0 {
			dark = 1
		}
		if own.Pawns&onlyFile[cornerFile[side][dark]] != 0 {
			return true
		}
	}
	promotion := relativeSquare(side, 63)
	if own.Pawns&onlyFile[fileA] != 0 {
		promotion = relativeSquare(side, 56)
	}
	distance := chebyshevDistance(pos.KingSquare(side.Other()), promotion)
	if stm != side {
		distance--
	}
	return distance > 1
}

// evaluateMate scores a pawnless position for the side with more material by how far the
// losing king has been driven to the edge, or into the bishop's corner for KBN vs K.
func evaluateMate(p *Params, pos *position.Position, side position.Color) int {
	enemySide := side.Other()
	own := pos.Pieces(side)
	enemyKingSq := pos.KingSquare(enemySide)

	if pos.PieceMaterial(enemySide) == 0 && pos.Minors(side) == 2 && pos.BishopCount(side) == 1 {
		sq := enemyKingSq
		if own.Bishops&darkSquares == 0 {
			// Mirror files so the light corners h1 and a8 take the dark corners' values.
			sq ^= 7
		}
		return p.MateKBN[sq]
	}
	return p.MateEdge[enemyKingSq] -
		(chebyshevDistance(pos.KingSquare(side), enemyKingSq)-3)*p.KingKingTropism
}

// evaluateDraws pulls a white-relative score towards the draw value for opposite bishops,
// for a leading side that cannot win, and as the reversible-move counter nears the limit.
func evaluateDraws(p *Params, pos *position.Position, canWin [2]bool, score int) int {
	draw := p.DrawValue
	wPoints, bPoints := pos.PieceMaterial(white), pos.PieceMaterial(black)
	if wPoints <= 8 && bPoints <= 8 && oppositeBishops(pos) {
		wPawns, bPawns := pos.PawnCount(white), pos.PawnCount(black)
		if wPoints == 3 && bPoints == 3 && ((wPawns < 4 && bPawns < 4) || abs(wPawns-bPawns) < 2) {
			score = score/2 + draw
		} else if wPoints == bPoints {
			score = 3*score/4 + draw
		}
	}

	score = dragToDraw(canWin, score, draw)

	if rev := pos.Reversible(); rev > 80 {
		closeness := max(101-rev, 0)
		score = draw + (score-draw)*closeness/20
	}
	return score
}

// dragToDraw shrinks a score whose leader cannot win towards the draw value, or collapses it
// when nobody can. A higher score never comes out lower.
func dragToDraw(canWin [2]bool, score, draw int) int {
	switch {
	case !canWin[white] && !canWin[black]:
		return draw
	case !canWin[white] && score > draw:
		return draw + (score-draw)/16
	case !canWin[black] && score < draw:
		return draw + (score-draw)/16
	}
	return score
}

func oppositeBishops(pos *position.Position) bool {
	wb, bb := pos.Board.White.Bishops, pos.Board.Black.Bishops
	if bits.OnesCount64(wb) != 1 || bits.OnesCount64(bb) != 1 {
		return false
	}
	return (wb&darkSquares == 0) != (bb&darkSquares == 0)
}
