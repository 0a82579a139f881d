package engine

import (
	"math/bits"

	"chess-eval/position"
)

// Shelter defect buckets, one per castling destination plus the two centre files.
const (
	defectsQueenside = iota
	defectsDFile
	defectsEFile
	defectsKingside
)

// PawnEntry is everything derived from pawn placement alone. Nothing in it may depend on
// any other piece, since the pawn cache keys it on the pawn bitboards only.
type PawnEntry struct {
	WhitePawns uint64
	BlackPawns uint64

	MG, EG int

	// Passed and Files are file masks (bit 0 = a-file) per color.
	Passed [2]uint8
	Files  [2]uint8

	Defects [2][4]int

	valid bool
}

func (e *PawnEntry) matches(wp, bp uint64) bool {
	return e.valid && e.WhitePawns == wp && e.BlackPawns == bp
}

// analyzePawns computes a fresh pawn entry. White terms add, black terms subtract.
func analyzePawns(p *Params, wp, bp uint64) PawnEntry {
	entry := PawnEntry{WhitePawns: wp, BlackPawns: bp, valid: true}
	pawns := [2]uint64{wp, bp}
	for _, side := range [2]position.Color{white, black} {
		mg, eg := evaluatePawnSide(p, &entry, side, pawns)
		if side == white {
			entry.MG += mg
			entry.EG += eg
		} else {
			entry.MG -= mg
			entry.EG -= eg
		}
	}
	return entry
}

// pawnMoves marks the squares each pawn of side can advance to without being lost to more
// enemy pawn attackers than own pawn defenders. Advancing stops at any pawn and at the 7th rank.
func pawnMoves(side position.Color, own, enemy uint64) uint64 {
	all := own | enemy
	dir := forward(side)
	var moves uint64
	for x := own; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		for ; relativeRank(side, rankOf(sq)) < 6; sq += dir {
			moves |= PositionBB[sq]
			next := sq + dir
			if PositionBB[next]&all != 0 {
				break
			}
			defenders := bits.OnesCount64(pawnAttacks[side.Other()][next] & own)
			attackers := bits.OnesCount64(pawnAttacks[side][next] & enemy)
			if attackers > defenders {
				break
			}
		}
	}
	return moves
}

func evaluatePawnSide(p *Params, entry *PawnEntry, side position.Color, pawns [2]uint64) (mg, eg int) {
	enemySide := side.Other()
	own, enemy := pawns[side], pawns[enemySide]
	all := own | enemy
	dir := forward(side)
	moves := pawnMoves(side, own, enemy)

	entry.Files[side] = pawnFiles(own)

	for x := own; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		file := fileOf(sq)
		rank := relativeRank(side, rankOf(sq))
		enemyOnFile := onlyFile[file]&enemy != 0

		psq := relativeSquare(side, sq)
		mg += p.Pawn.MG[psq]
		eg += p.Pawn.EG[psq]

		if adjacentFiles[sq]&own == 0 {
			mg -= p.PawnIsolated.MG
			eg -= p.PawnIsolated.EG
			if !enemyOnFile {
				mg -= p.PawnIsolated.MG / 2
				eg -= p.PawnIsolated.EG / 2
			}
		} else {
			if isWeakPawn(side, sq, own, enemy, moves) {
				mg -= p.PawnWeak.MG
				eg -= p.PawnWeak.EG
				if !enemyOnFile {
					mg -= p.PawnWeak.MG / 2
				}
			}
			if bits.OnesCount64(onlyFile[file]&own) > 1 {
				mg -= p.PawnDoubled.MG
				eg -= p.PawnDoubled.EG
			}
			if connectedMask[sq]&own != 0 {
				mg += p.PawnConnected.MG
				eg += p.PawnConnected.EG
			}
		}

		if passedMask[side][sq]&enemy == 0 {
			entry.Passed[side] |= 1 << uint(file)
		} else if !enemyOnFile && adjacentFiles[sq]&own != 0 && pawnAttacks[side][sq]&enemy == 0 {
			if isCandidate(side, sq, all, enemy, moves) {
				mg += p.PassedCandidate.MG[rank]
				eg += p.PassedCandidate.EG[rank]
			}
		}

		if rank == 5 && PositionBB[sq+dir]&enemy != 0 && isHiddenPasser(side, sq, own, enemy) {
			mg += p.PassedHidden.MG
			eg += p.PassedHidden.EG
		}
	}

	entry.Defects[side][defectsQueenside] = kingsFileDefects(p, fileB, side, own, enemy)
	entry.Defects[side][defectsDFile] = kingsFileDefects(p, fileD, side, own, enemy)
	entry.Defects[side][defectsEFile] = kingsFileDefects(p, fileE, side, own, enemy)
	entry.Defects[side][defectsKingside] = kingsFileDefects(p, fileG, side, own, enemy)
	return mg, eg
}

// isWeakPawn reports a pawn that no own pawn can ever defend: none of the squares it can
// still advance to is defended at least as often as attacked, and no own pawn can reach a
// square that defends it where it stands.
func isWeakPawn(side position.Color, sq int, own, enemy, moves uint64) bool {
	for x := moves & ahead[side][sq]; x != 0; x &= x - 1 {
		to := bits.TrailingZeros64(x)
		defenders := bits.OnesCount64(pawnAttacks[side.Other()][to] & own)
		attackers := bits.OnesCount64(pawnAttacks[side][to] & enemy)
		if defenders > 0 && defenders >= attackers {
			return false
		}
	}
	return pawnAttacks[side.Other()][sq]&moves == 0
}

// isCandidate walks a pawn forward to the first square an enemy pawn attacks and checks it
// arrives with enough support that it would come out passed.
func isCandidate(side position.Color, sq int, all, enemy, moves uint64) bool {
	dir := forward(side)
	attackers, defenders := 1, 0
	for ; relativeRank(side, rankOf(sq)) < 6; sq += dir {
		if PositionBB[sq+dir]&all != 0 {
			break
		}
		defenders = bits.OnesCount64(pawnAttacks[side.Other()][sq] & moves)
		attackers = bits.OnesCount64(pawnAttacks[side][sq] & enemy)
		if attackers != 0 {
			break
		}
	}
	if attackers > defenders {
		return false
	}
	return passedMask[side][sq+dir]&enemy == 0
}

// isHiddenPasser: a blocked 6th rank pawn with a pawn diagonally behind it that can advance
// and force a passer through on that wing.
func isHiddenPasser(side position.Color, sq int, own, enemy uint64) bool {
	file := fileOf(sq)
	back := -forward(side)
	if file < fileH && PositionBB[sq+back+1]&own != 0 && hiddenRight[side][file]&enemy == 0 {
		return true
	}
	if file > fileA && PositionBB[sq+back-1]&own != 0 && hiddenLeft[side][file]&enemy == 0 {
		return true
	}
	return false
}

// kingsFileDefects scores the shelter over the three files centred on center.
func kingsFileDefects(p *Params, center int, side position.Color, own, enemy uint64) int {
	defects := 0
	for file := center - 1; file <= center+1; file++ {
		if onlyFile[file]&(own|enemy) == 0 {
			defects += p.OpenFile[file]
			continue
		}
		if onlyFile[file]&enemy == 0 {
			defects += p.HalfOpenFile[file] / 2
		} else {
			front := mostAdvanced(side.Other(), onlyFile[file]&enemy)
			defects += p.PawnDefects[side][rankOf(front)]
		}
		if onlyFile[file]&own == 0 {
			defects += p.HalfOpenFile[file]
		} else if own&PositionBB[relativeSquare(side, 8+file)] == 0 {
			defects++
			if own&PositionBB[relativeSquare(side, 16+file)] == 0 {
				defects++
			}
		}
	}
	return defects
}
