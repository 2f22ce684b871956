package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagonalAttacksEmptyBoard(t *testing.T) {
	got := diagonalAttacks(F5, 0)
	// f5's four diagonal rays to the board edge: 2+3+2+4 squares.
	assert.Equal(t, 11, got.PopCount())
	for _, sq := range []Square{E4, D3, C2, B1, G6, H7, E6, D7, C8, G4, H3} {
		assert.True(t, got.Get(sq), "expected %s attacked", sq)
	}
	assert.False(t, got.Get(F5))
	assert.False(t, got.Get(A1))
}

func TestOrthogonalAttacksEmptyBoard(t *testing.T) {
	got := orthogonalAttacks(F5, 0)
	// full file + full rank, excluding f5 itself: 7 + 7 squares.
	assert.Equal(t, 14, got.PopCount())
	for _, sq := range []Square{F1, F8, A5, H5} {
		assert.True(t, got.Get(sq), "expected %s attacked", sq)
	}
	assert.False(t, got.Get(F5))
}

func TestQueenAttacksIsUnionOfBoth(t *testing.T) {
	got := queenAttacks(F5, 0)
	want := diagonalAttacks(F5, 0) | orthogonalAttacks(F5, 0)
	assert.Equal(t, want, got)
	assert.Equal(t, 25, got.PopCount())
}

func TestCastRayStopsAtFirstBlocker(t *testing.T) {
	blockers := FromSquare(F3) // two squares south of f5
	got := castRay(F5, dirS, blockers)
	assert.True(t, got.Get(F4))
	assert.True(t, got.Get(F3))
	assert.False(t, got.Get(F2))
	assert.False(t, got.Get(F1))
}

func TestCastRayUnobstructedReachesEdge(t *testing.T) {
	got := castRay(A1, dirN, 0)
	for rank := 1; rank <= 7; rank++ {
		assert.True(t, got.Get(Square(rank*8)))
	}
}

func TestEdgeDistanceCornersAndCenter(t *testing.T) {
	assert.Equal(t, 7, edgeDistance[A1][dirNE])
	assert.Equal(t, 0, edgeDistance[A1][dirSW])
	assert.Equal(t, 0, edgeDistance[H8][dirNE])
	assert.Equal(t, 3, edgeDistance[D4][dirW])
}
