package pipeline

import (
	"path/filepath"
	"sort"
)

// puzzlePattern matches the input files a batch run picks up. Matching is
// non-recursive; subdirectories are left alone.
const puzzlePattern = "puzzle*.txt"

// Discover globs inputDir for puzzle files and returns the paths sorted
// lexicographically for deterministic processing order.
func Discover(inputDir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(inputDir, puzzlePattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
