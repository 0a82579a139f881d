// Package position is the read-only board view consumed by the evaluator. It wraps a
// dragontoothmg board and adds the castling status history the evaluator needs.
package position

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

type Color int

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling describes one side's castling status at a given ply.
type Castling int8

const (
	Castled    Castling = -1
	NoCastling Castling = 0
	KingSide   Castling = 1
	QueenSide  Castling = 2
	BothSides  Castling = KingSide | QueenSide
)

// Piece material in "points" (pawns excluded), the unit used for phase and endgame rules.
const (
	KnightPoints = 3
	BishopPoints = 3
	RookPoints   = 5
	QueenPoints  = 9
)

// Position is an immutable-per-call snapshot. RootCastle is the castling status at the
// search root, Castle the status at the node being evaluated.
type Position struct {
	Board      dragontoothmg.Board
	RootCastle [2]Castling
	Castle     [2]Castling
}

// New wraps a board whose current castling status also serves as the root status.
func New(b dragontoothmg.Board, castle [2]Castling) *Position {
	return &Position{Board: b, RootCastle: castle, Castle: castle}
}

func (p *Position) Pieces(c Color) *dragontoothmg.Bitboards {
	if c == White {
		return &p.Board.White
	}
	return &p.Board.Black
}

func (p *Position) Occupied() uint64 {
	return p.Board.White.All | p.Board.Black.All
}

func (p *Position) KingSquare(c Color) int {
	return bits.TrailingZeros64(p.Pieces(c).Kings)
}

func (p *Position) SideToMove() Color {
	if p.Board.Wtomove {
		return White
	}
	return Black
}

// Reversible is the number of plies since the last capture or pawn move.
func (p *Position) Reversible() int {
	return int(p.Board.Halfmoveclock)
}

func (p *Position) PawnCount(c Color) int {
	return bits.OnesCount64(p.Pieces(c).Pawns)
}

func (p *Position) KnightCount(c Color) int { return bits.OnesCount64(p.Pieces(c).Knights) }
func (p *Position) BishopCount(c Color) int { return bits.OnesCount64(p.Pieces(c).Bishops) }
func (p *Position) RookCount(c Color) int   { return bits.OnesCount64(p.Pieces(c).Rooks) }
func (p *Position) QueenCount(c Color) int  { return bits.OnesCount64(p.Pieces(c).Queens) }

// PieceMaterial sums non-pawn material in points (N=B=3, R=5, Q=9).
func (p *Position) PieceMaterial(c Color) int {
	bb := p.Pieces(c)
	return bits.OnesCount64(bb.Knights)*KnightPoints +
		bits.OnesCount64(bb.Bishops)*BishopPoints +
		bits.OnesCount64(bb.Rooks)*RookPoints +
		bits.OnesCount64(bb.Queens)*QueenPoints
}

// Majors counts rooks plus two per queen.
func (p *Position) Majors(c Color) int {
	return p.RookCount(c) + 2*p.QueenCount(c)
}

func (p *Position) Minors(c Color) int {
	return p.KnightCount(c) + p.BishopCount(c)
}

// Mirror returns the color-flipped position: ranks reversed, colors swapped, side to
// move swapped. Mirror(Mirror(p)) equals p.
func (p *Position) Mirror() *Position {
	m := &Position{
		RootCastle: [2]Castling{p.RootCastle[Black], p.RootCastle[White]},
		Castle:     [2]Castling{p.Castle[Black], p.Castle[White]},
	}
	m.Board = dragontoothmg.Board{
		Wtomove:       !p.Board.Wtomove,
		Halfmoveclock: p.Board.Halfmoveclock,
		Fullmoveno:    p.Board.Fullmoveno,
		White:         flipBitboards(p.Board.Black),
		Black:         flipBitboards(p.Board.White),
	}
	return m
}

func flipBitboards(bb dragontoothmg.Bitboards) dragontoothmg.Bitboards {
	return dragontoothmg.Bitboards{
		Pawns:   bits.ReverseBytes64(bb.Pawns),
		Knights: bits.ReverseBytes64(bb.Knights),
		Bishops: bits.ReverseBytes64(bb.Bishops),
		Rooks:   bits.ReverseBytes64(bb.Rooks),
		Queens:  bits.ReverseBytes64(bb.Queens),
		Kings:   bits.ReverseBytes64(bb.Kings),
		All:     bits.ReverseBytes64(bb.All),
	}
}
