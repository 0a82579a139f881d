package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/position"
)

func pawnAttackSet(c position.Color, pawns uint64) uint64 {
	if c == white {
		return (pawns&^onlyFile[fileA])<<7 | (pawns&^onlyFile[fileH])<<9
	}
	return (pawns&^onlyFile[fileA])>>9 | (pawns&^onlyFile[fileH])>>7
}

// mobility sums the centralization weight of every square in reach.
func (p *Params) mobility(reach uint64) int {
	score := 0
	for x := reach; x != 0; x &= x - 1 {
		score += p.MobilityWeight[bits.TrailingZeros64(x)]
	}
	return score
}

// outpostBonus grants base when no enemy pawn can ever attack sq, half again when an own pawn
// defends it, and base once more when the enemy has no minor left to contest the square.
func outpostBonus(base int, side position.Color, sq int, own, enemy *dragontoothmg.Bitboards) int {
	if base <= 0 || outpostMask[side][sq]&enemy.Pawns != 0 {
		return 0
	}
	bonus := base
	if pawnAttacks[side.Other()][sq]&own.Pawns != 0 {
		bonus += base / 2
		if enemy.Knights == 0 && sameColorSquares(sq)&enemy.Bishops == 0 {
			bonus += base
		}
	}
	return bonus
}

func (e *Evaluator) evaluateKnights(ctx *evalContext, side position.Color) (mg, eg int) {
	p := e.params
	own, enemy := ctx.pos.Pieces(side), ctx.pos.Pieces(side.Other())
	enemyKingSq := ctx.pos.KingSquare(side.Other())
	unsafe := own.All | ctx.pawnAttacks[side.Other()]

	for x := own.Knights; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		psq := relativeSquare(side, sq)
		mg += p.Knight.MG[psq]
		eg += p.Knight.EG[psq]

		outpost := outpostBonus(p.KnightOutpost[psq], side, sq, own, enemy)
		mob := p.mobility(knightAttacks[sq]&^unsafe) - p.KnightMobilityBase
		mg += outpost + mob
		eg += outpost + mob

		if ctx.dangerous[side] {
			ctx.tropism[side] += p.TropismKnight[chebyshevDistance(sq, enemyKingSq)]
		}
	}
	return mg, eg
}

func (e *Evaluator) evaluateBishops(ctx *evalContext, side position.Color) (mg, eg int) {
	p := e.params
	own, enemy := ctx.pos.Pieces(side), ctx.pos.Pieces(side.Other())
	enemyKingSq := ctx.pos.KingSquare(side.Other())
	kingZone := kingAttacks[enemyKingSq]
	unsafe := own.All | ctx.pawnAttacks[side.Other()]
	wingPawns := ctx.allPawns&maskABC != 0 && ctx.allPawns&maskFGH != 0

	for x := own.Bishops; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		psq := relativeSquare(side, sq)
		mg += p.Bishop.MG[psq]
		eg += p.Bishop.EG[psq]

		outpost := outpostBonus(p.BishopOutpost[psq], side, sq, own, enemy)
		mg += outpost
		eg += outpost

		// a7 hemmed in by b6, h7 by g6.
		if (psq == 48 && enemy.Pawns&PositionBB[relativeSquare(side, 41)] != 0) ||
			(psq == 55 && enemy.Pawns&PositionBB[relativeSquare(side, 46)] != 0) {
			mg -= p.BishopTrapped
			eg -= p.BishopTrapped
		}

		attacks := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), ctx.occupied)
		mob := p.mobility(attacks&^unsafe) - p.BishopMobilityBase
		if mob < 0 && pawnAttacks[side.Other()][sq]&own.Pawns != 0 && (fileOf(sq) == fileA || fileOf(sq) == fileH) {
			mob -= p.BishopBlocked
		}
		mg += mob
		eg += mob

		if wingPawns {
			mg += p.BishopWingPawns.MG
			eg += p.BishopWingPawns.EG
		}

		if ctx.dangerous[side] {
			i := chebyshevDistance(sq, enemyKingSq)
			if dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), 0)&kingZone != 0 &&
				dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), ctx.occupied&^own.Queens)&kingZone != 0 {
				i = 1
			}
			ctx.tropism[side] += p.TropismBishop[i]
		}
	}
	return mg, eg
}

func (e *Evaluator) evaluateRooks(ctx *evalContext, side position.Color) (mg, eg int) {
	p := e.params
	enemySide := side.Other()
	own, enemy := ctx.pos.Pieces(side), ctx.pos.Pieces(enemySide)
	kingSq := ctx.pos.KingSquare(side)
	enemyKingSq := ctx.pos.KingSquare(enemySide)
	kingZone := kingAttacks[enemyKingSq]

	for x := own.Rooks; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		psq := relativeSquare(side, sq)
		file := fileOf(sq)
		rank := relativeRank(side, rankOf(sq))
		mg += p.Rook.MG[psq]
		eg += p.Rook.EG[psq]

		if onlyFile[file]&own.Pawns == 0 {
			if onlyFile[file]&enemy.Pawns == 0 {
				mg += p.RookOpenFile.MG
				eg += p.RookOpenFile.EG
			} else {
				mg += p.RookHalfOpenFile.MG
				eg += p.RookHalfOpenFile.EG
			}
		}

		if rank == 0 && rankOf(sq) == rankOf(kingSq) {
			// The king stepped towards the corner without castling and shut the rook in.
			kingFile := fileOf(kingSq)
			if (kingFile > fileE && file > kingFile) || (kingFile < fileD && file < kingFile) {
				mg -= p.RookTrapped
				eg -= p.RookTrapped
			}
		} else if rank == 6 && (relativeRank(side, rankOf(enemyKingSq)) == 7 ||
			enemy.Pawns&onlyRank[rankOf(sq)] != 0) {
			mg += p.RookOn7th.MG
			eg += p.RookOn7th.EG
			if dragontoothmg.CalculateRookMoveBitboard(uint8(sq), ctx.occupied)&onlyRank[rankOf(sq)]&own.Rooks != 0 {
				mg += p.RookConnected7th.MG
				eg += p.RookConnected7th.EG
			}
		}

		attacks := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), ctx.occupied)
		mob := p.mobility(attacks&^(own.All|ctx.pawnAttacks[enemySide])) - p.RookMobilityBase
		if mob < 0 && rank <= 1 && (file == fileA || file == fileH) {
			mob -= p.RookCornered
		}
		mg += mob
		eg += mob

		if ctx.dangerous[side] {
			i := chebyshevDistance(sq, enemyKingSq)
			if dragontoothmg.CalculateRookMoveBitboard(uint8(sq), 0)&kingZone != 0 &&
				dragontoothmg.CalculateRookMoveBitboard(uint8(sq), ctx.occupied&^(own.Queens|own.Rooks))&kingZone != 0 {
				i = 1
			}
			ctx.tropism[side] += p.TropismRook[i]
		}
	}
	return mg, eg
}

func (e *Evaluator) evaluateQueens(ctx *evalContext, side position.Color) (mg, eg int) {
	p := e.params
	own := ctx.pos.Pieces(side)
	enemyKingSq := ctx.pos.KingSquare(side.Other())

	for x := own.Queens; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		psq := relativeSquare(side, sq)
		mg += p.Queen.MG[psq]
		eg += p.Queen.EG[psq]

		if ctx.dangerous[side] {
			ctx.tropism[side] += p.TropismQueen[chebyshevDistance(sq, enemyKingSq)]
			near := 8 - (rankDistance(sq, enemyKingSq) + fileDistance(sq, enemyKingSq))
			mg += near
			eg += near
		}
	}
	return mg, eg
}
