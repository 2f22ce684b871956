// sliding.go implements the sliding-piece ray generator described in spec
// §4.3: four rays per direction family, each walked by shifting the bitboard
// and bounded by a precomputed distance to the board edge.

package chesscore

// direction indexes the eight rays a bishop or rook can cast.
type direction int

const (
	dirNE direction = iota // <<9
	dirNW                  // <<7
	dirSE                  // >>7
	dirSW                  // >>9
	dirN                   // <<8
	dirS                   // >>8
	dirE                   // <<1
	dirW                   // >>1
)

// diagonalDirs and orthogonalDirs group the two direction families used by
// bishops/queens and rooks/queens respectively.
var diagonalDirs = [4]direction{dirNE, dirNW, dirSE, dirSW}
var orthogonalDirs = [4]direction{dirN, dirS, dirE, dirW}

// edgeDistance[sq][dir] is how many steps a ray may take from sq in dir
// before it would cross the board edge. Precomputed from rank/file.
var edgeDistance [64][8]int

func init() {
	for sq := Square(0); sq <= H8; sq++ {
		file, rank := sq.File(), sq.Rank()
		edgeDistance[sq][dirNE] = min(7-file, 7-rank)
		edgeDistance[sq][dirNW] = min(file, 7-rank)
		edgeDistance[sq][dirSE] = min(7-file, rank)
		edgeDistance[sq][dirSW] = min(file, rank)
		edgeDistance[sq][dirN] = 7 - rank
		edgeDistance[sq][dirS] = rank
		edgeDistance[sq][dirE] = 7 - file
		edgeDistance[sq][dirW] = file
	}
}

// castRay walks a single ray from sq in dir, stopping as soon as it steps
// onto a blocker (the blocker square is included — it's the attacked square,
// whether friend or foe; callers mask out friendly squares themselves).
func castRay(sq Square, dir direction, blockers BitBoard) BitBoard {
	var result BitBoard
	bb := FromSquare(sq)
	for i := 0; i < edgeDistance[sq][dir]; i++ {
		switch dir {
		case dirNE:
			bb <<= 9
		case dirNW:
			bb <<= 7
		case dirSE:
			bb >>= 7
		case dirSW:
			bb >>= 9
		case dirN:
			bb <<= 8
		case dirS:
			bb >>= 8
		case dirE:
			bb <<= 1
		case dirW:
			bb >>= 1
		}
		result |= bb
		if bb&blockers != 0 {
			break
		}
	}
	return result
}

// diagonalAttacks returns the union of a bishop's four diagonal rays from sq
// against blockers.
func diagonalAttacks(sq Square, blockers BitBoard) BitBoard {
	var result BitBoard
	for _, d := range diagonalDirs {
		result |= castRay(sq, d, blockers)
	}
	return result
}

// orthogonalAttacks returns the union of a rook's four orthogonal rays from
// sq against blockers.
func orthogonalAttacks(sq Square, blockers BitBoard) BitBoard {
	var result BitBoard
	for _, d := range orthogonalDirs {
		result |= castRay(sq, d, blockers)
	}
	return result
}

// queenAttacks is the union of the diagonal and orthogonal ray sets.
func queenAttacks(sq Square, blockers BitBoard) BitBoard {
	return diagonalAttacks(sq, blockers) | orthogonalAttacks(sq, blockers)
}
