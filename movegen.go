// movegen.go implements the legal move generator described in spec §4.5-4.7:
// king moves and check/double-check handling, pin-restricted piece moves,
// pawn pushes/captures/promotions/en passant, and castling.

package chesscore

// moveListCapacity bounds the rare pathological position (spec §5: "bounded
// by ~256 moves"); preallocating avoids reallocation in the hot path.
const moveListCapacity = 256

// Generate enumerates the legal moves of p given its derived state st, or
// reports that the side to move is checkmated or stalemated.
func Generate(p *Position, st *PositionState) Result {
	us := p.ActiveColor
	friendlyOccupancy := p.Board.Color[us]
	kingSq := p.Board.KingSquare(us)

	moves := make([]Move, 0, moveListCapacity)
	genKingMoves(p, st, &moves)

	if st.doubleCheck() {
		return finish(moves, st, kingSq)
	}

	restricted := BitBoard(^uint64(0))
	switch {
	case len(st.CheckersMelee) == 1:
		restricted = FromSquare(st.CheckersMelee[0])
	case len(st.CheckersSliders) == 1:
		restricted = st.CheckersSliders[0]
	}

	for _, sq := range (friendlyOccupancy &^ FromSquare(kingSq)).Squares() {
		local := restricted
		if ray, pinned := st.pinRayFor(sq); pinned {
			local &= ray
		}

		switch kind := p.Board.PieceAt(sq); kind {
		case Bishop, Rook, Queen, Knight:
			genSliderOrKnightMoves(p, st, sq, kind, local, &moves)
		case Pawn:
			genPawnMoves(p, st, sq, local, &moves)
		}
	}

	genCastlingMoves(p, st, &moves)

	return finish(moves, st, kingSq)
}

func finish(moves []Move, st *PositionState, kingSq Square) Result {
	if len(moves) > 0 {
		return Result{Moves: moves, Outcome: Ongoing}
	}
	if st.Attacks.Get(kingSq) {
		return Result{Outcome: Checkmate}
	}
	return Result{Outcome: Stalemate}
}

// genKingMoves appends the king's own moves (never subject to pins: the king
// can't pin itself). Castling is handled separately in genCastlingMoves.
func genKingMoves(p *Position, st *PositionState, moves *[]Move) {
	us := p.ActiveColor
	kingSq := p.Board.KingSquare(us)
	dests := kingAttacks[kingSq] &^ p.Board.Color[us] &^ st.Attacks

	for _, to := range dests.Squares() {
		*moves = append(*moves, Move{
			From: kingSq, To: to, Piece: King,
			Promotion: NoPiece,
			Capture:   captureAt(st, to),
			Captured:  st.PieceAt[to],
		})
	}
}

// captureAt classifies the capture (if any) a non-pawn move to `to` makes.
func captureAt(st *PositionState, to Square) CaptureKind {
	if st.PieceAt[to] != NoPiece {
		return RegularCapture
	}
	return NoCapture
}

// genSliderOrKnightMoves appends pseudo-legal moves for a bishop, rook,
// queen, or knight on sq, restricted to destinations in allowed.
func genSliderOrKnightMoves(p *Position, st *PositionState, sq Square, kind PieceKind, allowed BitBoard, moves *[]Move) {
	us := p.ActiveColor
	occupancy := p.Board.Occupancy()

	var dests BitBoard
	switch kind {
	case Knight:
		dests = knightAttacks[sq]
	case Bishop:
		dests = diagonalAttacks(sq, occupancy)
	case Rook:
		dests = orthogonalAttacks(sq, occupancy)
	case Queen:
		dests = queenAttacks(sq, occupancy)
	}
	dests &^= p.Board.Color[us]
	dests &= allowed

	for _, to := range dests.Squares() {
		*moves = append(*moves, Move{
			From: sq, To: to, Piece: kind,
			Promotion: NoPiece,
			Capture:   captureAt(st, to),
			Captured:  st.PieceAt[to],
		})
	}
}

// genPawnMoves appends pseudo-legal moves (pushes, captures, en passant, and
// promotions) for the pawn on sq, restricted to destinations in allowed
// (spec §4.6).
func genPawnMoves(p *Position, st *PositionState, sq Square, allowed BitBoard, moves *[]Move) {
	us := p.ActiveColor
	occupancy := p.Board.Occupancy()

	forward, startRank, promoRank := 8, 1, 7
	if us == Black {
		forward, startRank, promoRank = -8, 6, 0
	}

	emit := func(to Square, capture CaptureKind) {
		if capture == EnPassantCapture && !enPassantIsLegal(p, sq, to) {
			return
		}
		if to.Rank() == promoRank {
			for _, promo := range Promotable {
				*moves = append(*moves, Move{
					From: sq, To: to, Piece: Pawn,
					Promotion: promo, Capture: capture, Captured: st.PieceAt[to],
				})
			}
			return
		}
		*moves = append(*moves, Move{
			From: sq, To: to, Piece: Pawn,
			Promotion: NoPiece, Capture: capture, Captured: st.PieceAt[to],
		})
	}

	single := sq + Square(forward)
	if !occupancy.Get(single) {
		if allowed.Get(single) {
			emit(single, NoCapture)
		}
		if sq.Rank() == startRank {
			double := sq + Square(2*forward)
			if !occupancy.Get(double) && allowed.Get(double) {
				emit(double, NoCapture)
			}
		}
	}

	targets := pawnAttacks[us][sq] & p.Board.Color[us.Opposite()] & allowed
	if p.EPTarget != NoSquare {
		ep := pawnAttacks[us][sq] & FromSquare(p.EPTarget)
		victim := p.EPTarget - Square(forward)
		if len(st.CheckersMelee) == 1 && st.CheckersMelee[0] == victim {
			// The checking pawn is removed by landing beside it, so the check
			// mask (the checker's square alone) does not apply; a pin still does.
			if ray, pinned := st.pinRayFor(sq); pinned {
				ep &= ray
			}
		} else {
			ep &= allowed
		}
		targets |= ep
	}

	for _, to := range targets.Squares() {
		if p.EPTarget != NoSquare && to == p.EPTarget {
			emit(to, EnPassantCapture)
		} else {
			emit(to, RegularCapture)
		}
	}
}

// enPassantIsLegal closes the discovered-check gap the check/pin machinery
// doesn't model (spec §4.6, §9): removing both the capturing and captured
// pawn from the same rank can expose our king to a rook or queen along that
// rank. We scratch-remove both pawns and re-probe the king's rank directly.
func enPassantIsLegal(p *Position, from, to Square) bool {
	us := p.ActiveColor
	them := us.Opposite()

	var victim Square
	if us == White {
		victim = to - 8
	} else {
		victim = to + 8
	}

	occupancy := p.Board.Occupancy()
	occupancy &^= FromSquare(from)
	occupancy &^= FromSquare(victim)
	occupancy |= FromSquare(to)

	kingSq := p.Board.KingSquare(us)
	attackers := orthogonalAttacks(kingSq, occupancy) &
		(p.Board.Piece[Rook] | p.Board.Piece[Queen]) & p.Board.Color[them]
	return attackers == 0
}

// genCastlingMoves appends any legal castling moves (spec §4.7).
func genCastlingMoves(p *Position, st *PositionState, moves *[]Move) {
	occupancy := p.Board.Occupancy()
	ours := sideCastlingRights(p.ActiveColor)

	for _, d := range castlingDescriptors {
		if d.right&ours == 0 {
			continue
		}
		if p.Castling&d.right == 0 {
			continue
		}
		if d.clear&occupancy != 0 {
			continue
		}
		if d.safe&st.Attacks != 0 {
			continue
		}
		*moves = append(*moves, Move{
			From: d.king, To: d.toSq, Piece: King,
			Promotion: NoPiece, Capture: NoCapture, Captured: NoPiece,
		})
	}
}

// sideCastlingRights masks the castling rights belonging to c, so the shared
// descriptor table can be filtered by whose turn it is.
func sideCastlingRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}
