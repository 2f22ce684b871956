// state.go derives the transient PositionState consumed by the legal move
// generator: the opponent's attack set, the checkers giving check to our
// king, and the pin rays restricting our own pieces (spec §4.4).

package chesscore

// PositionState is a read-only view computed once per Generate call and then
// discarded.
type PositionState struct {
	// PieceAt holds the opponent's piece kind on each square, NoPiece
	// elsewhere (friendly squares are left NoPiece — the generator consults
	// this table only to classify captures of opponent pieces).
	PieceAt [64]PieceKind

	// Attacks is the union of squares attacked by the side not to move,
	// computed with our king removed from the blocker set.
	Attacks BitBoard

	// CheckersMelee holds the squares of pawns/knights giving check.
	CheckersMelee []Square
	// CheckersSliders holds, for each sliding piece giving check, the full
	// ray from the attacker to our king, inclusive of the attacker square.
	CheckersSliders []BitBoard
	// Pinners holds, for each pinning sliding piece, the ray from the
	// attacker through the one friendly piece lying between it and our
	// king, inclusive of the attacker square and reaching our king.
	Pinners []BitBoard

	FriendlyKing BitBoard
}

// sliderFamilies returns the direction rays a bishop, rook, or queen casts.
// Queens are checked against both families independently: only one of the
// two can ever actually reach the king, but probing both is simpler than
// first figuring out which.
func sliderFamilies(k PieceKind) [][4]direction {
	switch k {
	case Bishop:
		return [][4]direction{diagonalDirs}
	case Rook:
		return [][4]direction{orthogonalDirs}
	case Queen:
		return [][4]direction{diagonalDirs, orthogonalDirs}
	default:
		return nil
	}
}

// Derive computes the PositionState for p from the perspective of the side
// to move: "our" king is ActiveColor's king, "opponent" pieces are the ones
// threatening it.
func Derive(p *Position) PositionState {
	us := p.ActiveColor
	them := us.Opposite()

	var st PositionState
	for i := range st.PieceAt {
		st.PieceAt[i] = NoPiece
	}

	st.FriendlyKing = FromSquare(p.Board.KingSquare(us))
	friendlyOccupancy := p.Board.Color[us]
	opponentOccupancy := p.Board.Color[them]
	blockers := p.Board.Occupancy()
	blockersNoKing := blockers &^ st.FriendlyKing
	probeBlockers := opponentOccupancy | st.FriendlyKing

	for _, sq := range (opponentOccupancy & p.Board.Piece[Knight]).Squares() {
		atk := knightAttacks[sq]
		if atk&st.FriendlyKing != 0 {
			st.CheckersMelee = append(st.CheckersMelee, sq)
		}
		st.Attacks |= atk
		st.PieceAt[sq] = Knight
	}

	for _, sq := range (opponentOccupancy & p.Board.Piece[Pawn]).Squares() {
		atk := pawnAttacks[them][sq]
		if atk&st.FriendlyKing != 0 {
			st.CheckersMelee = append(st.CheckersMelee, sq)
		}
		st.Attacks |= atk
		st.PieceAt[sq] = Pawn
	}

	for _, sq := range (opponentOccupancy & p.Board.Piece[King]).Squares() {
		st.Attacks |= kingAttacks[sq]
		st.PieceAt[sq] = King
	}

	for _, k := range [3]PieceKind{Bishop, Rook, Queen} {
		for _, sq := range (opponentOccupancy & p.Board.Piece[k]).Squares() {
			st.PieceAt[sq] = k

			for _, family := range sliderFamilies(k) {
				for _, d := range family {
					st.Attacks |= castRay(sq, d, blockersNoKing)

					ray := castRay(sq, d, probeBlockers)
					if ray&st.FriendlyKing == 0 {
						continue
					}
					rayInclusive := ray | FromSquare(sq)
					n := (ray & friendlyOccupancy).PopCount()
					switch n {
					case 1: // only the king: a check
						st.CheckersSliders = append(st.CheckersSliders, rayInclusive)
					case 2: // the king plus one friendly piece: a pin
						st.Pinners = append(st.Pinners, rayInclusive)
					}
				}
			}
		}
	}

	return st
}

// pinRayFor returns the pin ray containing sq, if any. A piece belongs to at
// most one pin ray.
func (st *PositionState) pinRayFor(sq Square) (BitBoard, bool) {
	bit := FromSquare(sq)
	for _, ray := range st.Pinners {
		if ray&bit != 0 {
			return ray, true
		}
	}
	return 0, false
}

// inCheck reports whether the position's active-color king is attacked.
func (st *PositionState) inCheck() bool {
	return len(st.CheckersMelee)+len(st.CheckersSliders) > 0
}

// doubleCheck reports whether two or more pieces are giving check.
func (st *PositionState) doubleCheck() bool {
	return len(st.CheckersMelee)+len(st.CheckersSliders) >= 2
}
