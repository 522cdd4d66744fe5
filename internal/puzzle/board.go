package puzzle

import "github.com/dlclark/regexp2"

// runPattern matches three or more consecutive identical digits. The
// backreference is why this is regexp2: the stdlib engine rejects \1.
var runPattern = regexp2.MustCompile(`(\d)\1{2,}`, 0)

// matchRun returns the half-open [start, end) span of the first run in
// line, if any. Empty cells break runs since 'E' is not a digit.
func matchRun(line []byte) (int, int, bool) {
	m, err := runPattern.FindStringMatch(string(line))
	if err != nil || m == nil {
		return 0, 0, false
	}
	return m.Index, m.Index + m.Length, true
}

// SwapCells exchanges the devices at a and b.
func (p *Puzzle) SwapCells(a, b Coord) {
	p.Board[a.Y][a.X], p.Board[b.Y][b.X] = p.Board[b.Y][b.X], p.Board[a.Y][a.X]
}

// rowMatches returns the first run in row y. Callers only pass rows below
// the pool.
func (p *Puzzle) rowMatches(y int) []Coord {
	start, end, ok := matchRun(p.Board[y])
	if !ok {
		return nil
	}
	coords := make([]Coord, 0, end-start)
	for x := start; x < end; x++ {
		coords = append(coords, Coord{x, y})
	}
	return coords
}

// colMatches returns the first run in column x, scanning only the rows
// below the pool.
func (p *Puzzle) colMatches(x int) []Coord {
	col := make([]byte, 0, p.Height-p.PoolHeight)
	for y := p.PoolHeight; y < p.Height; y++ {
		col = append(col, p.Board[y][x])
	}
	start, end, ok := matchRun(col)
	if !ok {
		return nil
	}
	coords := make([]Coord, 0, end-start)
	for y := start; y < end; y++ {
		coords = append(coords, Coord{x, y + p.PoolHeight})
	}
	return coords
}

// MatchesAround returns the matches a swap of a and b can have produced:
// the shared row plus both columns for a horizontal swap, both rows plus
// the shared column for a vertical one.
func (p *Puzzle) MatchesAround(a, b Coord) []Coord {
	var matches []Coord
	if a.X != b.X {
		matches = append(matches, p.rowMatches(a.Y)...)
		matches = append(matches, p.colMatches(a.X)...)
		matches = append(matches, p.colMatches(b.X)...)
	} else {
		matches = append(matches, p.rowMatches(a.Y)...)
		matches = append(matches, p.rowMatches(b.Y)...)
		matches = append(matches, p.colMatches(a.X)...)
	}
	return matches
}

// AllMatches scans every row and every column below the pool.
func (p *Puzzle) AllMatches() []Coord {
	var matches []Coord
	for y := p.PoolHeight; y < p.Height; y++ {
		matches = append(matches, p.rowMatches(y)...)
	}
	for x := 0; x < p.Width; x++ {
		matches = append(matches, p.colMatches(x)...)
	}
	return matches
}

// RemoveMatches clears the matched cells, lets devices fall, refills from
// the pool, and rescans until the board is stable. A cell sitting on both
// a row run and a column run appears twice in matches and scores twice.
func (p *Puzzle) RemoveMatches(matches []Coord) {
	p.replaced = 0
	if len(matches) == 0 {
		return
	}
	for _, c := range matches {
		p.Score++
		p.Board[c.Y][c.X] = Empty
		p.falling = true
	}
	for p.falling {
		p.simulateFalling()
	}
	p.RemoveMatches(p.AllMatches())
}

// simulateFalling resolves every empty cell found in a top-down scan.
// Resolving one empty cell can leave another behind (two empties swapped
// in place), so the falling flag makes RemoveMatches run another pass.
func (p *Puzzle) simulateFalling() {
	p.falling = false
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.Board[y][x] == Empty {
				p.falling = true
				p.replaceDevice(x, y)
			}
		}
	}
}

// newDevice is the refill formula. It keys off the row beneath the top
// row, the column, and how many devices this removal step has already
// replaced.
func (p *Puzzle) newDevice(x int) byte {
	v := int(p.Board[1][x] - '0')
	return byte((v+x+p.replaced)%p.DeviceTypes + 1 + '0')
}

// replaceDevice bubbles an empty cell to the top of the board one swap at
// a time, each swap dropping the device above into the gap, then fills
// the top cell via the formula. The replaced counter increments before
// the formula runs, so the first refill of a step sees replaced == 1.
func (p *Puzzle) replaceDevice(x, y int) {
	if y == 0 {
		p.replaced++
		p.Board[y][x] = p.newDevice(x)
		return
	}
	p.SwapCells(Coord{x, y}, Coord{x, y - 1})
	p.replaceDevice(x, y-1)
}

// ValidMoves simulates every adjacent swap below the pool and keeps the
// ones that produce at least one match. The board is unchanged on return.
// Horizontal swaps come first, then vertical, both in row-major order.
func (p *Puzzle) ValidMoves() []Swap {
	var moves []Swap
	for y := p.PoolHeight; y < p.Height; y++ {
		for x := 0; x < p.Width-1; x++ {
			s := Swap{Coord{x, y}, Coord{x + 1, y}}
			p.SwapCells(s.A, s.B)
			if len(p.MatchesAround(s.A, s.B)) > 0 {
				moves = append(moves, s)
			}
			p.SwapCells(s.A, s.B)
		}
	}
	for y := p.PoolHeight; y < p.Height-1; y++ {
		for x := 0; x < p.Width; x++ {
			s := Swap{Coord{x, y}, Coord{x, y + 1}}
			p.SwapCells(s.A, s.B)
			if len(p.MatchesAround(s.A, s.B)) > 0 {
				moves = append(moves, s)
			}
			p.SwapCells(s.A, s.B)
		}
	}
	return moves
}
