// Package perft implements performance-test move-tree counting, the primary
// correctness harness for the generator (spec §1, §8). It is promoted out of
// the teacher's test-only internal/perft into a reusable library function,
// since spec.md treats perft as an operation a caller (a test, a CLI, a CI
// job) should be able to invoke directly rather than inline test code.
package perft

import "github.com/corvidae/chesscore"

// Count returns the number of leaf positions reachable from p in exactly
// depth plies of legal moves.
func Count(p chesscore.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	st := chesscore.Derive(&p)
	result := chesscore.Generate(&p, &st)
	if result.Outcome != chesscore.Ongoing {
		return 0
	}
	if depth == 1 {
		return len(result.Moves)
	}

	nodes := 0
	for _, m := range result.Moves {
		next := p
		chesscore.Apply(&next, m)
		nodes += Count(next, depth-1)
	}
	return nodes
}

// Divide runs perft one ply deep and returns, for each legal root move, the
// node count below it — the standard way to isolate a divergence against a
// reference engine's perft output.
func Divide(p chesscore.Position, depth int) map[string]int {
	st := chesscore.Derive(&p)
	result := chesscore.Generate(&p, &st)

	counts := make(map[string]int, len(result.Moves))
	if result.Outcome != chesscore.Ongoing {
		return counts
	}

	for _, m := range result.Moves {
		next := p
		chesscore.Apply(&next, m)
		counts[m.String()] = Count(next, depth-1)
	}
	return counts
}
