package engine

import (
	"math/bits"

	"chess-eval/position"
)

const noRunner = 8

// hasOpposition reports whether king holds the opposition against enemyKing. onMove tells
// whether king's side is to move.
func hasOpposition(onMove bool, king, enemyKing int) bool {
	fileDist := fileDistance(king, enemyKing)
	rankDist := rankDistance(king, enemyKing)
	if rankDist < 2 {
		return true
	}
	if onMove {
		if rankDist&1 != 0 {
			rankDist--
		}
		if fileDist&1 != 0 {
			fileDist--
		}
	}
	return fileDist&1 == 0 && rankDist&1 == 0
}

// evaluateRaces resolves king and pawn races once a side is out of pieces. The returned
// endgame delta is from white's point of view; zero means the race is left to the search.
func evaluateRaces(p *Params, pos *position.Position, pe *PawnEntry, stm position.Color) int {
	queener := [2]int{noRunner, noRunner}
	// forced[c]: c's king stops an enemy runner only if c is the side to move.
	var forced [2]bool
	noPieces := pos.PieceMaterial(white) == 0 && pos.PieceMaterial(black) == 0

	for _, side := range [2]position.Color{white, black} {
		enemySide := side.Other()
		own := pos.Pieces(side)
		enemyKingSq := pos.KingSquare(enemySide)

		if own.Pawns != 0 && pos.Pieces(enemySide).Pawns == 0 && noPieces {
			if singlePawnWins(pos, side, stm) {
				return signFor(side) * p.PawnCanPromote
			}
		}

		if pos.PieceMaterial(enemySide) != 0 {
			continue
		}
		for files := pe.Passed[side]; files != 0; files &= files - 1 {
			file := bits.TrailingZeros8(files)
			sq := mostAdvanced(side, own.Pawns&onlyFile[file])
			enemyToMove := stm == enemySide
			catches := kingCatchesPawn(side, sq, enemyKingSq, enemyToMove)
			if catches != kingCatchesPawn(side, sq, enemyKingSq, !enemyToMove) {
				forced[enemySide] = true
			}
			if catches {
				continue
			}
			distance := 7 - relativeRank(side, rankOf(sq))
			if own.Kings&ahead[side][sq] != 0 {
				if file == fileA || file == fileH {
					distance = 99
				}
				distance++
			}
			if relativeRank(side, rankOf(sq)) == 1 {
				distance--
			}
			queener[side] = min(queener[side], distance)
		}
	}

	switch {
	case queener[white] == noRunner && queener[black] == noRunner:
		return 0
	case forced[white] && forced[black]:
		return 0
	case queener[black] == noRunner:
		return runnerBonus(p, queener[white])
	case queener[white] == noRunner:
		return -runnerBonus(p, queener[black])
	case queener[white] < queener[black] && forced[black]:
		return runnerBonus(p, queener[white])
	case queener[black] < queener[white] && forced[white]:
		return -runnerBonus(p, queener[black])
	}
	return 0
}

func runnerBonus(p *Params, distance int) int {
	return p.PawnCanPromote + (5-distance)*10
}

func signFor(c position.Color) int {
	if c == white {
		return 1
	}
	return -1
}

// singlePawnWins covers the king-and-pawn-versus-king patterns that promote by force.
// Only pawns the own king has already overtaken are considered.
func singlePawnWins(pos *position.Position, side, stm position.Color) bool {
	enemySide := side.Other()
	kingSq := pos.KingSquare(side)
	enemyKingSq := pos.KingSquare(enemySide)
	kingRank := relativeRank(side, rankOf(kingSq))

	for x := pos.Pieces(side).Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		pawnRank := relativeRank(side, rankOf(sq))
		if kingRank <= pawnRank {
			continue
		}
		switch fileOf(sq) {
		case fileA, fileH:
			// The king must stand on the knight file next to the pawn and win the race to the corner.
			knightFile := fileB
			if fileOf(sq) == fileH {
				knightFile = fileG
			}
			corner := relativeSquare(side, 56+fileOf(sq))
			if fileOf(kingSq) == knightFile &&
				chebyshevDistance(kingSq, corner) < chebyshevDistance(enemyKingSq, corner) {
				return true
			}
			continue
		}
		if chebyshevDistance(kingSq, sq) >= chebyshevDistance(enemyKingSq, sq) {
			continue
		}
		if kingRank > pawnRank+1 || kingRank == 5 {
			return true
		}
		if kingRank == pawnRank+1 && hasOpposition(stm == side, kingSq, enemyKingSq) {
			return true
		}
	}
	return false
}
