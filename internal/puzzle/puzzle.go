package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Empty marks a cell whose device has been removed and not yet refilled.
// It never appears in a parsed input file.
const Empty = 'E'

// headerLines is the fixed number of metadata lines before the grid.
const headerLines = 7

// Coord is a board position. X is the column, Y the row, both zero-based
// from the top-left corner. The hidden pool occupies the top rows.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Swap is a move: two adjacent cells exchanging devices.
type Swap struct {
	A Coord
	B Coord
}

// String renders the swap in solution-document form, e.g. "(0, 5),(1, 5)".
func (s Swap) String() string {
	return s.A.String() + "," + s.B.String()
}

// Puzzle is a parsed board plus the running solve state. Score counts
// removed match coordinates; Swaps is the move log in play order.
type Puzzle struct {
	Quota       int // score required to clear the puzzle
	MaxSwaps    int // swap budget
	DeviceTypes int // distinct device kinds, 1..9
	Width       int
	Height      int // total rows, pool included
	PoolHeight  int // top rows hidden from matching
	BonusRules  int // scoring variant, carried but not interpreted here

	Board [][]byte // Board[y][x], '0'..'9' or Empty
	Swaps []Swap
	Score int

	// replaced counts refills within the current removal step; it feeds
	// the replacement formula so successive refills differ.
	replaced int
	falling  bool
}

// Parse reads a puzzle file: seven header lines (quota, max swaps, device
// types, width, height, pool height, bonus rules) followed by height rows
// of width space-separated single-digit devices. Any malformed line is an
// error; nothing is guessed.
func Parse(data []byte) (*Puzzle, error) {
	lines := splitLines(string(data))
	if len(lines) < headerLines {
		return nil, fmt.Errorf("puzzle header: want %d lines, have %d", headerLines, len(lines))
	}

	p := &Puzzle{}
	fields := []struct {
		name string
		dst  *int
	}{
		{"quota", &p.Quota},
		{"max swaps", &p.MaxSwaps},
		{"device types", &p.DeviceTypes},
		{"width", &p.Width},
		{"height", &p.Height},
		{"pool height", &p.PoolHeight},
		{"bonus rules", &p.BonusRules},
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("puzzle header line %d (%s): %q is not an integer", i+1, f.name, strings.TrimSpace(lines[i]))
		}
		*f.dst = n
	}

	if p.Width < 1 {
		return nil, fmt.Errorf("puzzle width %d: must be at least 1", p.Width)
	}
	if p.Height < 2 {
		return nil, fmt.Errorf("puzzle height %d: must be at least 2", p.Height)
	}
	if p.DeviceTypes < 1 || p.DeviceTypes > 9 {
		return nil, fmt.Errorf("device types %d: must be 1..9", p.DeviceTypes)
	}
	// The refill formula reads the row below the top, so at least one
	// pool row must exist to feed replacements.
	if p.PoolHeight < 1 || p.PoolHeight > p.Height {
		return nil, fmt.Errorf("pool height %d: must be 1..%d", p.PoolHeight, p.Height)
	}

	rows := lines[headerLines:]
	if len(rows) != p.Height {
		return nil, fmt.Errorf("puzzle grid: want %d rows, have %d", p.Height, len(rows))
	}
	p.Board = make([][]byte, p.Height)
	for y, row := range rows {
		cells := strings.Fields(row)
		if len(cells) != p.Width {
			return nil, fmt.Errorf("puzzle row %d: want %d cells, have %d", y+1, p.Width, len(cells))
		}
		p.Board[y] = make([]byte, p.Width)
		for x, cell := range cells {
			if len(cell) != 1 || cell[0] < '0' || cell[0] > '9' {
				return nil, fmt.Errorf("puzzle row %d cell %d: %q is not a single digit", y+1, x+1, cell)
			}
			p.Board[y][x] = cell[0]
		}
	}
	return p, nil
}

// splitLines breaks on \n after normalizing \r\n, dropping the final
// empty element a trailing newline would otherwise produce.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Copy returns an independent puzzle: the board and swap log are deep
// copied so search nodes can diverge.
func (p *Puzzle) Copy() *Puzzle {
	c := *p
	c.Board = make([][]byte, len(p.Board))
	for y, row := range p.Board {
		c.Board[y] = append([]byte(nil), row...)
	}
	c.Swaps = append([]Swap(nil), p.Swaps...)
	return &c
}

// Equal reports whether two puzzles are the same search state: identical
// board contents and identical score. The swap paths may differ.
func (p *Puzzle) Equal(o *Puzzle) bool {
	if p.Score != o.Score || len(p.Board) != len(o.Board) {
		return false
	}
	for y := range p.Board {
		if string(p.Board[y]) != string(o.Board[y]) {
			return false
		}
	}
	return true
}

// Key returns a map key with the same equivalence as Equal.
func (p *Puzzle) Key() string {
	var b strings.Builder
	b.Grow(p.Width*p.Height + 12)
	for _, row := range p.Board {
		b.Write(row)
	}
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(p.Score))
	return b.String()
}

// Render draws the board with a dashed line between the pool and the
// playable area. Used for verbose logging and nowhere else.
func (p *Puzzle) Render() string {
	var b strings.Builder
	for y, row := range p.Board {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y == p.PoolHeight {
			b.WriteString(strings.Repeat("-", p.Width*2-1))
			b.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cell)
		}
	}
	return b.String()
}
