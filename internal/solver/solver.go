// Package solver turns one puzzle file into one solution document: read,
// parse, search, render. The document layout is fixed: the trimmed input
// echo, one line per swap (a single blank line when there are none), and
// the solve time in seconds, each block newline-terminated.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cascade/internal/puzzle"
	"cascade/internal/search"
)

// Result holds one solved puzzle: the raw input text, the search
// outcome, and the wall-clock solve time.
type Result struct {
	Input   []byte
	Puzzle  *puzzle.Puzzle
	Search  *search.Result
	Elapsed time.Duration
}

// Solve parses raw puzzle text and runs the strategy over it. The timer
// covers parse and search, not file IO.
func Solve(ctx context.Context, raw []byte, strategy search.Strategy) (*Result, error) {
	start := time.Now()
	p, err := puzzle.Parse(raw)
	if err != nil {
		return nil, err
	}
	tree := search.NewTree(p)
	res, err := tree.Run(ctx, strategy)
	if err != nil {
		return nil, err
	}
	return &Result{
		Input:   raw,
		Puzzle:  p,
		Search:  res,
		Elapsed: time.Since(start),
	}, nil
}

// SolveFile reads and solves a single puzzle file.
func SolveFile(ctx context.Context, path string, strategy search.Strategy) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	res, err := Solve(ctx, raw, strategy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return res, nil
}

// Document renders the solution file contents.
func (r *Result) Document() []byte {
	var b bytes.Buffer
	b.WriteString(strings.TrimSpace(string(r.Input)))
	b.WriteByte('\n')
	lines := make([]string, len(r.Search.Swaps))
	for i, s := range r.Search.Swaps {
		lines[i] = s.String()
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')
	b.WriteString(strconv.FormatFloat(r.Elapsed.Seconds(), 'g', -1, 64))
	b.WriteByte('\n')
	return b.Bytes()
}
