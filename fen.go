// fen.go implements the FEN collaborator spec §6 lists as "Consumed": the
// only producer of non-starting Positions. Unlike the teacher's fen.go,
// which panics on malformed input, ParsePosition returns an error — a FEN
// string is frequently attacker- or user-controlled (read from a file, typed
// into a UCI "position fen ..." command), so panicking on it is the wrong
// failure mode for anything but this package's own constant inputs.

package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

var fenPieceKind = map[byte]struct {
	kind  PieceKind
	color Color
}{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

// ParsePosition parses a standard six-field FEN string into a Position.
func ParsePosition(fen string) (Position, error) {
	var p Position
	p.EPTarget = NoSquare

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("chesscore: FEN %q: want 6 fields, got %d", fen, len(fields))
	}

	if err := parsePlacement(&p.Board, fields[0]); err != nil {
		return Position{}, fmt.Errorf("chesscore: FEN %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		p.ActiveColor = White
	case "b":
		p.ActiveColor = Black
	default:
		return Position{}, fmt.Errorf("chesscore: FEN %q: bad active color %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.Castling |= WhiteKingSide
			case 'Q':
				p.Castling |= WhiteQueenSide
			case 'k':
				p.Castling |= BlackKingSide
			case 'q':
				p.Castling |= BlackQueenSide
			default:
				return Position{}, fmt.Errorf("chesscore: FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] == "-" {
		p.EPTarget = NoSquare
	} else {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("chesscore: FEN %q: %w", fen, err)
		}
		p.EPTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("chesscore: FEN %q: bad halfmove clock: %w", fen, err)
	}
	p.HalfmoveClock = uint8(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("chesscore: FEN %q: bad fullmove counter: %w", fen, err)
	}
	p.FullmoveCounter = uint32(fullmove)

	return p, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement %q: want 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc, ok := fenPieceKind[c]
			if !ok {
				return fmt.Errorf("piece placement %q: bad piece symbol %q", placement, c)
			}
			if file > 7 {
				return fmt.Errorf("piece placement %q: rank %d overflows", placement, rank+1)
			}
			b.place(pc.kind, pc.color, Square(rank*8+file))
			file++
		}
	}
	return nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return Square(rank*8 + file), nil
}

var pieceLetters = [2][6]byte{
	White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// FEN serializes p into a standard six-field FEN string.
func (p Position) FEN() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			kind := p.Board.PieceAt(sq)
			if kind == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			color := White
			if p.Board.Color[Black].Get(sq) {
				color = Black
			}
			b.WriteByte(pieceLetters[color][kind])
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.ActiveColor == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	cnt := b.Len()
	if p.Castling&WhiteKingSide != 0 {
		b.WriteByte('K')
	}
	if p.Castling&WhiteQueenSide != 0 {
		b.WriteByte('Q')
	}
	if p.Castling&BlackKingSide != 0 {
		b.WriteByte('k')
	}
	if p.Castling&BlackQueenSide != 0 {
		b.WriteByte('q')
	}
	if b.Len() == cnt {
		b.WriteByte('-')
	}

	b.WriteByte(' ')
	if p.EPTarget == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EPTarget.String())
	}

	fmt.Fprintf(&b, " %d %d", p.HalfmoveClock, p.FullmoveCounter)

	return b.String()
}
