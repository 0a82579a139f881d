package engine

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"chess-eval/position"
)

const (
	white = position.White
	black = position.Black
)

const (
	fileA = iota
	fileB
	fileC
	fileD
	fileE
	fileF
	fileG
	fileH
)

// FlipView maps a square to the same square seen from black's side of the board.
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

var onlyFile = [8]uint64{
	0x0101010101010101, 0x0202020202020202, 0x0404040404040404, 0x0808080808080808,
	0x1010101010101010, 0x2020202020202020, 0x4040404040404040, 0x8080808080808080,
}

var onlyRank = [8]uint64{
	0xFF, 0xFF00, 0xFF0000, 0xFF000000,
	0xFF00000000, 0xFF0000000000, 0xFF000000000000, 0xFF00000000000000,
}

var (
	maskABC      = onlyFile[fileA] | onlyFile[fileB] | onlyFile[fileC]
	maskFGH      = onlyFile[fileF] | onlyFile[fileG] | onlyFile[fileH]
	maskABCD     = maskABC | onlyFile[fileD]
	maskEFGH     = maskFGH | onlyFile[fileE]
	notRookPawns = ^(onlyFile[fileA] | onlyFile[fileH])
	maskNotEdge  uint64 = 0x007e7e7e7e7e7e00

	// a1 is dark.
	darkSquares uint64 = 0xAA55AA55AA55AA55
)

var (
	PositionBB    [64]uint64
	kingAttacks   [64]uint64
	knightAttacks [64]uint64
	// pawnAttacks[c][sq] holds the squares a pawn of color c standing on sq attacks.
	pawnAttacks [2][64]uint64
	// adjacentFiles also serves as the isolated-pawn mask.
	adjacentFiles [64]uint64
	connectedMask [64]uint64
	passedMask    [2][64]uint64
	// outpostMask[c][sq] is every square from which an enemy pawn could still attack sq.
	outpostMask [2][64]uint64
	ahead       [2][64]uint64
	behind      [2][64]uint64
	hiddenLeft  [2][8]uint64
	hiddenRight [2][8]uint64
	// cornerFile[c][dark] is the rook file whose promotion corner a bishop of that shade controls.
	cornerFile [2][2]int
)

func init() {
	for sq := 0; sq < 64; sq++ {
		PositionBB[sq] = 1 << uint(sq)
	}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if (df != 0 || dr != 0) && onBoard(file+df, rank+dr) {
					kingAttacks[sq] |= PositionBB[file+df+8*(rank+dr)]
				}
			}
		}
		for _, d := range [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}} {
			if onBoard(file+d[0], rank+d[1]) {
				knightAttacks[sq] |= PositionBB[file+d[0]+8*(rank+d[1])]
			}
		}
		for _, df := range [2]int{-1, 1} {
			if onBoard(file+df, rank+1) {
				pawnAttacks[white][sq] |= PositionBB[file+df+8*(rank+1)]
			}
			if onBoard(file+df, rank-1) {
				pawnAttacks[black][sq] |= PositionBB[file+df+8*(rank-1)]
			}
		}
		if file > 0 {
			adjacentFiles[sq] |= onlyFile[file-1]
		}
		if file < 7 {
			adjacentFiles[sq] |= onlyFile[file+1]
		}
		near := onlyRank[rank]
		if rank > 0 {
			near |= onlyRank[rank-1]
		}
		if rank < 7 {
			near |= onlyRank[rank+1]
		}
		connectedMask[sq] = adjacentFiles[sq] & near

		ahead[white][sq] = calculatePawnNorthFill(PositionBB[sq])
		ahead[black][sq] = calculatePawnSouthFill(PositionBB[sq])
		behind[white][sq] = ahead[black][sq]
		behind[black][sq] = ahead[white][sq]
		for _, c := range [2]position.Color{white, black} {
			var front uint64
			for x := ahead[c][sq]; x != 0; x &= x - 1 {
				front |= onlyRank[bits.TrailingZeros64(x)/8]
			}
			outpostMask[c][sq] = adjacentFiles[sq] & front
			passedMask[c][sq] = outpostMask[c][sq] | ahead[c][sq]
		}
	}
	for file := 0; file < 8; file++ {
		for _, c := range [2]position.Color{white, black} {
			ranks := onlyRank[relativeRank(c, 5)] | onlyRank[relativeRank(c, 6)]
			for d := 1; d <= 2; d++ {
				if file-d >= 0 {
					hiddenLeft[c][file] |= onlyFile[file-d] & ranks
				}
				if file+d <= 7 {
					hiddenRight[c][file] |= onlyFile[file+d] & ranks
				}
			}
		}
	}
	// h8 and a1 are dark.
	cornerFile[white] = [2]int{fileA, fileH}
	cornerFile[black] = [2]int{fileH, fileA}
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func calculatePawnNorthFill(bb uint64) uint64 {
	bb = bb << 8
	bb |= bb << 8
	bb |= bb << 16
	bb |= bb << 32
	return bb
}

func calculatePawnSouthFill(bb uint64) uint64 {
	bb = bb >> 8
	bb |= bb >> 8
	bb |= bb >> 16
	bb |= bb >> 32
	return bb
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fileOf(sq int) int { return sq & 7 }
func rankOf(sq int) int { return sq >> 3 }

func fileDistance(a, b int) int { return abs(fileOf(a) - fileOf(b)) }
func rankDistance(a, b int) int { return abs(rankOf(a) - rankOf(b)) }

func chebyshevDistance(a, b int) int {
	return max(fileDistance(a, b), rankDistance(a, b))
}

// relativeRank converts between absolute and side-relative rank indices (0 = own back rank).
func relativeRank(c position.Color, rank int) int {
	if c == white {
		return rank
	}
	return 7 - rank
}

// relativeSquare maps a square given from white's point of view to side c.
func relativeSquare(c position.Color, sq int) int {
	if c == white {
		return sq
	}
	return FlipView[sq]
}

func forward(c position.Color) int {
	if c == white {
		return 8
	}
	return -8
}

// mostAdvanced returns the square of the piece in bb furthest up the board for c.
func mostAdvanced(c position.Color, bb uint64) int {
	if c == white {
		return 63 - bits.LeadingZeros64(bb)
	}
	return bits.TrailingZeros64(bb)
}

func sameColorSquares(sq int) uint64 {
	if PositionBB[sq]&darkSquares != 0 {
		return darkSquares
	}
	return ^darkSquares
}

// pawnFiles folds a pawn bitboard into an 8-bit file mask.
func pawnFiles(pawns uint64) uint8 {
	pawns |= pawns >> 32
	pawns |= pawns >> 16
	pawns |= pawns >> 8
	return uint8(pawns)
}

func floorPow2(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}
