package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/position"
)

// kingCatchesPawn applies the rule of the square: can the enemy king reach the promotion
// square of side's pawn on sq in time. kingToMove tells whether that king moves first.
func kingCatchesPawn(side position.Color, sq, kingSq int, kingToMove bool) bool {
	rank := relativeRank(side, rankOf(sq))
	moves := 7 - rank
	if rank == 1 {
		moves--
	}
	promotion := relativeSquare(side, 56+fileOf(sq))
	if kingToMove {
		moves++
	}
	return chebyshevDistance(kingSq, promotion) <= moves
}

// isOutsidePasser reports a passed file at least two files clear of every enemy pawn file.
func isOutsidePasser(passed, enemyFiles uint8) bool {
	if passed == 0 || enemyFiles == 0 {
		return false
	}
	lo := bits.TrailingZeros8(enemyFiles)
	hi := 7 - bits.LeadingZeros8(enemyFiles)
	for x := passed; x != 0; x &= x - 1 {
		file := bits.TrailingZeros8(x)
		if file < lo-1 || file > hi+1 {
			return true
		}
	}
	return false
}

// evaluatePassedPawns scores the most advanced pawn on each of side's passed files. Unlike
// the pawn entry this depends on pieces and kings, so it is never cached.
func evaluatePassedPawns(p *Params, pos *position.Position, pe *PawnEntry, side, stm position.Color) (mg, eg int) {
	enemySide := side.Other()
	own := pos.Pieces(side)
	enemy := pos.Pieces(enemySide)
	occupied := pos.Occupied()
	rooks := own.Rooks | enemy.Rooks
	kingSq := pos.KingSquare(side)
	enemyKingSq := pos.KingSquare(enemySide)

	for files := pe.Passed[side]; files != 0; files &= files - 1 {
		file := bits.TrailingZeros8(files)
		sq := mostAdvanced(side, own.Pawns&onlyFile[file])
		rank := relativeRank(side, rankOf(sq))

		mg += p.PassedValue.MG[rank]
		eg += p.PassedValue.EG[rank]
		if connectedMask[sq]&own.Pawns != 0 {
			mg += p.PassedConnected.MG[rank]
			eg += p.PassedConnected.EG[rank]
		}

		if rooks != 0 {
			rear := behind[side][sq] & dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occupied)
			if rear&own.Rooks != 0 {
				mg += p.RookBehindPasser.MG[rank]
				eg += p.RookBehindPasser.EG[rank]
			} else if rear&enemy.Rooks != 0 {
				mg -= p.RookBehindPasser.MG[rank]
				eg -= p.RookBehindPasser.EG[rank]
			}
		}

		stop := sq + forward(side)
		if occupied&ahead[side][sq] != 0 {
			eg -= p.PassedObstructed[rank]
			if PositionBB[stop]&enemy.All != 0 {
				mg -= p.PassedBlockadedEnemy.MG[rank]
				eg -= p.PassedBlockadedEnemy.EG[rank]
			} else if PositionBB[stop]&own.All != 0 {
				mg -= p.PassedBlockadedFriendly.MG[rank]
				eg -= p.PassedBlockadedFriendly.EG[rank]
			}
		} else if kingCatchesPawn(side, sq, enemyKingSq, stm == enemySide) {
			eg += p.PassedNotFarAway[rank]
		} else {
			eg += p.PassedFarAway[rank]
		}

		// Own king near the stop square, enemy king far from it.
		eg -= (chebyshevDistance(stop, kingSq) - chebyshevDistance(stop, enemyKingSq)) * p.PassedKingDistance[rank]
	}

	if isOutsidePasser(pe.Passed[side], pe.Files[enemySide]) {
		mg += p.OutsidePasser.MG
		eg += p.OutsidePasser.EG
	}
	return mg, eg
}
