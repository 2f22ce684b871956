// bitboard.go implements the BitBoard primitive: a 64-bit mask where bit i
// corresponds to the square with index i.

package chesscore

import "math/bits"

// BitBoard is a set of squares packed into a 64-bit mask.
type BitBoard uint64

// FromSquare returns the single-bit BitBoard for sq.
func FromSquare(sq Square) BitBoard {
	return BitBoard(1) << uint(sq)
}

// Get reports whether sq is set.
func (b BitBoard) Get(sq Square) bool {
	return b&FromSquare(sq) != 0
}

// Set returns b with sq set to on.
func (b BitBoard) Set(sq Square, on bool) BitBoard {
	if on {
		return b | FromSquare(sq)
	}
	return b &^ FromSquare(sq)
}

// IsEmpty reports whether no square is set.
func (b BitBoard) IsEmpty() bool {
	return b == 0
}

// ToSquare returns the index of the lowest set bit. Undefined if b is empty.
func (b BitBoard) ToSquare() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopCount returns the number of set squares.
func (b BitBoard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopLSB clears the lowest set bit in *b and returns its square. Undefined if
// *b is empty.
func PopLSB(b *BitBoard) Square {
	sq := b.ToSquare()
	*b &= *b - 1
	return sq
}

// Squares returns every set square, lowest index first, as a freshly
// allocated slice. It never aliases b: popping bits happens on a local copy.
func (b BitBoard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for rest := b; rest != 0; {
		squares = append(squares, PopLSB(&rest))
	}
	return squares
}
