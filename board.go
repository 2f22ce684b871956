// board.go defines the Board: two color masks and six piece-kind masks, plus
// the small set of queries the generator and apply() need against them.

package chesscore

// Board holds the raw piece placement. Invariants (see spec §3):
//
//	Color[White] & Color[Black] == 0
//	the six Piece masks are pairwise disjoint
//	Color[White] | Color[Black] == Piece[Pawn] | ... | Piece[King]
//	exactly one bit set in Piece[King] & Color[c], for each c
type Board struct {
	Color [2]BitBoard
	Piece [6]BitBoard
}

// Occupancy returns the union of both colors' pieces.
func (b *Board) Occupancy() BitBoard {
	return b.Color[White] | b.Color[Black]
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return (b.Piece[King] & b.Color[c]).ToSquare()
}

// PieceAt returns the kind of piece on sq, or NoPiece if sq is empty. It does
// not report which color occupies sq; callers that need color already know
// it from context (friendly vs. opponent iteration).
func (b *Board) PieceAt(sq Square) PieceKind {
	bit := FromSquare(sq)
	for k := Pawn; k <= King; k++ {
		if b.Piece[k]&bit != 0 {
			return k
		}
	}
	return NoPiece
}

// place puts a piece of kind k and color c on sq.
func (b *Board) place(k PieceKind, c Color, sq Square) {
	bit := FromSquare(sq)
	b.Piece[k] |= bit
	b.Color[c] |= bit
}

// remove takes a piece of kind k and color c off sq.
func (b *Board) remove(k PieceKind, c Color, sq Square) {
	bit := FromSquare(sq)
	b.Piece[k] &^= bit
	b.Color[c] &^= bit
}
