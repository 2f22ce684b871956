package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStartingPositionHasTwentyMoves(t *testing.T) {
	p := StartingPosition()
	st := Derive(&p)
	result := Generate(&p, &st)

	assert.Equal(t, Ongoing, result.Outcome)
	assert.Len(t, result.Moves, 20)
}

func TestGenerateFoolsMateIsCheckmate(t *testing.T) {
	// 1.f3 e5 2.g4 Qh4#, White to move and checkmated.
	p := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	st := Derive(&p)
	result := Generate(&p, &st)

	assert.Equal(t, Checkmate, result.Outcome)
	assert.Empty(t, result.Moves)
}

func TestGenerateIsStalemate(t *testing.T) {
	p := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	st := Derive(&p)
	result := Generate(&p, &st)

	assert.Equal(t, Stalemate, result.Outcome)
	assert.Empty(t, result.Moves)
}

func TestGenerateDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	p := mustParse(t, "4r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	st := Derive(&p)
	result := Generate(&p, &st)

	for _, m := range result.Moves {
		assert.Equal(t, King, m.Piece, "double check must only yield king moves")
	}
}

func TestGeneratePinnedPieceMayOnlyMoveAlongTheRay(t *testing.T) {
	p := mustParse(t, "4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	st := Derive(&p)
	result := Generate(&p, &st)

	for _, m := range result.Moves {
		if m.From == E2 {
			assert.Equal(t, "e", m.To.String()[:1], "pinned bishop must stay on the e-file")
		}
	}
}

func TestGenerateEnPassantCaptureAvailable(t *testing.T) {
	p := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	st := Derive(&p)
	result := Generate(&p, &st)

	found := false
	for _, m := range result.Moves {
		if m.From == E5 && m.To == D6 {
			assert.Equal(t, EnPassantCapture, m.Capture)
			found = true
		}
	}
	assert.True(t, found, "expected e5xd6 e.p. in the legal move list")
}

func TestGenerateEnPassantSuppressedByDiscoveredCheck(t *testing.T) {
	// The classic "rook pins the e.p. pair" shape: White king f5, White pawn
	// e5, Black pawn d5 (just advanced), Black rook a5 on the same rank.
	p := mustParse(t, "8/8/8/r2pPK2/8/8/8/8 w - d6 0 1")
	st := Derive(&p)
	result := Generate(&p, &st)

	for _, m := range result.Moves {
		if m.From == E5 {
			assert.NotEqual(t, EnPassantCapture, m.Capture, "e.p. would expose the king to the rook on the rank")
		}
	}
}

func TestGenerateNeverLeavesMoverInCheck(t *testing.T) {
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		p := mustParse(t, fen)
		st := Derive(&p)
		result := Generate(&p, &st)

		for _, m := range result.Moves {
			next := p
			Apply(&next, m)

			// Derive() reports check from its ActiveColor's perspective; flip
			// back to the mover's color (board unchanged) to ask "is the
			// side that just moved now in check".
			flipped := next
			flipped.ActiveColor = p.ActiveColor
			fst := Derive(&flipped)
			assert.False(t, fst.inCheck(), "move %s left the mover in check", m)
		}
	}
}

func TestBoardInvariantsHoldAfterApply(t *testing.T) {
	p := StartingPosition()
	st := Derive(&p)
	result := Generate(&p, &st)

	for _, m := range result.Moves {
		next := p
		Apply(&next, m)

		assert.Zero(t, next.Board.Color[White]&next.Board.Color[Black])
		assert.Equal(t, 1, (next.Board.Piece[King] & next.Board.Color[White]).PopCount())
		assert.Equal(t, 1, (next.Board.Piece[King] & next.Board.Color[Black]).PopCount())
		assert.LessOrEqual(t, next.Board.Occupancy().PopCount(), 32)
	}
}
