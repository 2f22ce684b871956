// types.go declares the primitive types and constants shared by the rest of
// the package: squares, colors, piece kinds, castling rights, and the Move
// record emitted by the generator.

package chesscore

// Square identifies one of the 64 board cells. index = rank*8 + file, rank 0
// is White's back rank, file 0 is the a-file.
type Square int

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare marks the absence of an en passant target.
const NoSquare Square = -1

// File returns the 0-based file (0 = a-file).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0-based rank (0 = White's back rank).
func (s Square) Rank() int { return int(s) / 8 }

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return string([]byte{"abcdefgh"[s.File()], "12345678"[s.Rank()]})
}

// Color is one of the two sides.
type Color int

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceKind is one of the six chess pieces. NoPiece marks an empty square or
// the absence of a promotion/capture.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPiece PieceKind = -1
)

// Promotable lists the piece kinds a pawn may promote to, in the fixed order
// moves are emitted for a promoting push or capture.
var Promotable = [4]PieceKind{Knight, Bishop, Rook, Queen}

// promotionLetters maps a promotable PieceKind to its LAN suffix letter.
var promotionLetters = map[PieceKind]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// CastlingRights is a 4-bit set of remaining castling privileges.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// CaptureKind distinguishes an ordinary capture (which names the captured
// piece kind) from an en passant capture (whose victim square isn't the
// move's destination).
type CaptureKind int

const (
	NoCapture CaptureKind = iota
	RegularCapture
	EnPassantCapture
)

// Move is the unit the generator emits and Apply consumes. It carries both
// the moved piece kind and the capture classification so Apply never has to
// re-inspect the board to figure out what happened.
type Move struct {
	From, To  Square
	Piece     PieceKind
	Promotion PieceKind // NoPiece unless this move promotes a pawn
	Capture   CaptureKind
	Captured  PieceKind // valid only when Capture == RegularCapture
}

// String renders the move in Long Algebraic Notation: <from><to>[promo],
// e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if letter, ok := promotionLetters[m.Promotion]; ok {
		s += string(letter)
	}
	return s
}

// Outcome classifies what Generate found for a position.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// Result is the verdict Generate returns: either a non-empty move list, or a
// terminal outcome.
type Result struct {
	Moves   []Move
	Outcome Outcome
}
