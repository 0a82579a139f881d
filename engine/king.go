package engine

import (
	"chess-eval/position"
)

// buildKingSafety crosses shelter defects with attacker tropism:
// scale * ((defect+100) * (tropism+100) / 100 - 100) / 100.
func buildKingSafety(p *Params) (table [16][16]int) {
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			combined := (p.KingSafetyDefects[i]+100)*(p.KingSafetyTropism[j]+100)/100 - 100
			table[i][j] = p.KingSafetyScale * combined / 100
		}
	}
	return table
}

// shelterDefects picks the defect bucket that applies to the king. A king that castled or
// lost its rights is judged where it stands; one that may still castle is judged by the best
// shelter it can reach, but never better than 3.
func shelterDefects(pe *PawnEntry, side position.Color, kingSq int, castle position.Castling) int {
	d := &pe.Defects[side]
	if castle <= position.NoCastling {
		switch file := fileOf(kingSq); {
		case file > fileE:
			return d[defectsKingside]
		case file == fileE:
			return d[defectsEFile]
		case file < fileD:
			return d[defectsQueenside]
		default:
			return d[defectsDFile]
		}
	}
	var defects int
	switch castle {
	case position.BothSides:
		defects = min(d[defectsKingside], d[defectsEFile], d[defectsQueenside])
	case position.KingSide:
		defects = min(d[defectsKingside], d[defectsEFile])
	default:
		defects = min(d[defectsQueenside], d[defectsEFile])
	}
	return max(defects, 3)
}

func (e *Evaluator) evaluateKing(ctx *evalContext, side position.Color) (mg, eg int) {
	p := e.params
	kingSq := ctx.pos.KingSquare(side)
	psq := relativeSquare(side, kingSq)

	if ctx.allPawns != 0 {
		switch {
		case ctx.allPawns&maskEFGH != 0 && ctx.allPawns&maskABCD != 0:
			eg += p.KingBothWings[psq]
		case ctx.allPawns&maskEFGH != 0:
			eg += p.KingKingside[psq]
		default:
			eg += p.KingQueenside[psq]
		}
	}

	enemySide := side.Other()
	if ctx.dangerous[enemySide] {
		defects := clamp(shelterDefects(ctx.pawns, side, kingSq, ctx.pos.Castle[side]), 0, 15)
		tropism := clamp(ctx.tropism[enemySide], 0, 15)
		mg -= e.kingSafety[defects][tropism]
	}
	return mg, eg
}

// evaluateCastling charges a side that still had castling rights at the root for giving
// them up, or for not having castled yet. Castling itself costs nothing.
func evaluateCastling(p *Params, pos *position.Position, side position.Color) (mg int) {
	oq := 1
	if pos.Pieces(side.Other()).Queens != 0 {
		oq = 3
	}
	now, root := pos.Castle[side], pos.RootCastle[side]
	switch {
	case now == root:
		mg -= oq * p.DevelopmentNotCastled
	case now == position.NoCastling:
		mg -= oq * p.DevelopmentLosingCastle
	case now > position.NoCastling:
		mg -= oq * p.DevelopmentLosingCastle / 2
	}
	return mg
}
