package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses a FEN (or the first four fields of an EPD line). The castling field
// seeds both the root and the current castling status.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if err := validatePlacement(fields[0]); err != nil {
		return nil, err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	castle, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	// EPD lines stop after the en passant field; dragontoothmg wants all six.
	halfmove, fullmove := "0", "1"
	if len(fields) >= 6 && isCounter(fields[4]) && isCounter(fields[5]) {
		halfmove, fullmove = fields[4], fields[5]
	}
	n, _ := strconv.Atoi(halfmove)
	if n > 255 {
		return nil, fmt.Errorf("%w: halfmove clock %d", ErrInvalidFEN, n)
	}
	normalized := strings.Join([]string{fields[0], fields[1], fields[2], fields[3], halfmove, fullmove}, " ")

	return New(dragontoothmg.ParseFen(normalized), castle), nil
}

func isCounter(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	var kings [2]int
	for i, rank := range ranks {
		width := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				width += int(ch - '0')
			case strings.ContainsRune("pnbrqk", ch):
				width++
				if ch == 'k' {
					kings[Black]++
				}
			case strings.ContainsRune("PNBRQK", ch):
				width++
				if ch == 'K' {
					kings[White]++
				}
			default:
				return fmt.Errorf("%w: unexpected %q in rank %d", ErrInvalidFEN, ch, 8-i)
			}
		}
		if width != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, 8-i, width)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: want one king per side, got %d/%d", ErrInvalidFEN, kings[White], kings[Black])
	}
	return nil
}

func parseCastling(field string) (castle [2]Castling, err error) {
	if field == "-" {
		return castle, nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			castle[White] |= KingSide
		case 'Q':
			castle[White] |= QueenSide
		case 'k':
			castle[Black] |= KingSide
		case 'q':
			castle[Black] |= QueenSide
		default:
			return castle, fmt.Errorf("%w: castling field %q", ErrInvalidFEN, field)
		}
	}
	return castle, nil
}
