// Package puzzle provides the board model: file parsing, swap and match
// mechanics, cascade resolution, and the replacement formula that refills
// the grid from the hidden pool rows.
//
// Implemented:
//   - Puzzle, Coord, Swap (puzzle.go)
//   - Parse: strict 7-line header + grid rows, typed errors per field
//   - Board mechanics (board.go): SwapCells, MatchesAround, AllMatches,
//     RemoveMatches (remove → fall → refill → rescan until stable),
//     ValidMoves (simulate-test-undo over every adjacent pair below the
//     pool).
//
// Match detection is first-run-per-line: each row and each column reports
// at most one run of three or more identical devices per scan, the
// leftmost (topmost) one. The rescan after a cascade picks up the rest.
package puzzle
