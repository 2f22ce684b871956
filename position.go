// position.go defines Position, the full chess state the generator consumes,
// and Apply, the in-place move application described in spec §4.8.

package chesscore

// Position bundles the board with the side to move, castling rights, the en
// passant target square (if any), and the two clocks.
type Position struct {
	Board           Board
	ActiveColor     Color
	Castling        CastlingRights
	EPTarget        Square // NoSquare if there is none
	HalfmoveClock   uint8
	FullmoveCounter uint32
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	p, err := ParsePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		// The starting FEN is a repository constant; a parse failure here
		// means the parser itself is broken, not that the input is bad.
		panic(err)
	}
	return p
}

// castlingDescriptor is one of the four hard-coded castling paths (spec
// §4.7). Squares are fixed because Chess960 is out of scope.
type castlingDescriptor struct {
	right CastlingRights
	clear BitBoard // squares that must be empty
	safe  BitBoard // squares that must not be attacked
	toSq  Square
	rookFrom, rookTo Square
	king  Square
}

var castlingDescriptors = [4]castlingDescriptor{
	{ // White king-side
		right: WhiteKingSide,
		clear: FromSquare(F1) | FromSquare(G1),
		safe:  FromSquare(E1) | FromSquare(F1) | FromSquare(G1),
		toSq:  G1, rookFrom: H1, rookTo: F1, king: E1,
	},
	{ // White queen-side
		right: WhiteQueenSide,
		clear: FromSquare(B1) | FromSquare(C1) | FromSquare(D1),
		safe:  FromSquare(C1) | FromSquare(D1) | FromSquare(E1),
		toSq:  C1, rookFrom: A1, rookTo: D1, king: E1,
	},
	{ // Black king-side
		right: BlackKingSide,
		clear: FromSquare(F8) | FromSquare(G8),
		safe:  FromSquare(E8) | FromSquare(F8) | FromSquare(G8),
		toSq:  G8, rookFrom: H8, rookTo: F8, king: E8,
	},
	{ // Black queen-side
		right: BlackQueenSide,
		clear: FromSquare(B8) | FromSquare(C8) | FromSquare(D8),
		safe:  FromSquare(C8) | FromSquare(D8) | FromSquare(E8),
		toSq:  C8, rookFrom: A8, rookTo: D8, king: E8,
	},
}

// Apply mutates p in place according to m. m must have been produced by
// Generate called on p (see spec §7); applying an arbitrary move has
// undefined results.
func Apply(p *Position, m Move) {
	us := p.ActiveColor
	them := us.Opposite()

	p.Board.remove(m.Piece, us, m.From)

	switch m.Capture {
	case RegularCapture:
		p.Board.remove(m.Captured, them, m.To)
	case EnPassantCapture:
		var victim Square
		if us == White {
			victim = m.To - 8
		} else {
			victim = m.To + 8
		}
		p.Board.remove(Pawn, them, victim)
	}

	placed := m.Piece
	if m.Promotion != NoPiece {
		placed = m.Promotion
	}
	p.Board.place(placed, us, m.To)

	// Castling also relocates the rook.
	if m.Piece == King {
		for _, d := range castlingDescriptors {
			if d.toSq == m.To && d.king == m.From {
				p.Board.remove(Rook, us, d.rookFrom)
				p.Board.place(Rook, us, d.rookTo)
				break
			}
		}
	}

	// Castling-rights updates.
	switch m.Piece {
	case King:
		if us == White {
			p.Castling &^= WhiteKingSide | WhiteQueenSide
		} else {
			p.Castling &^= BlackKingSide | BlackQueenSide
		}
	case Rook:
		switch m.From {
		case A1:
			p.Castling &^= WhiteQueenSide
		case H1:
			p.Castling &^= WhiteKingSide
		case A8:
			p.Castling &^= BlackQueenSide
		case H8:
			p.Castling &^= BlackKingSide
		}
	}
	if m.Capture == RegularCapture && m.Captured == Rook {
		switch m.To {
		case A1:
			p.Castling &^= WhiteQueenSide
		case H1:
			p.Castling &^= WhiteKingSide
		case A8:
			p.Castling &^= BlackQueenSide
		case H8:
			p.Castling &^= BlackKingSide
		}
	}

	// En passant target reset, then re-set on a double pawn push.
	p.EPTarget = NoSquare
	if m.Piece == Pawn {
		diff := int(m.To) - int(m.From)
		if diff == 16 {
			p.EPTarget = m.From + 8
		} else if diff == -16 {
			p.EPTarget = m.From - 8
		}
	}

	// Clocks: reset on a pawn move or a capture, increment otherwise.
	if m.Piece == Pawn || m.Capture != NoCapture {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullmoveCounter++
	}

	p.ActiveColor = them
}
