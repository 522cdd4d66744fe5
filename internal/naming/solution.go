package naming

import "path/filepath"

// SolutionName derives the solution filename for a puzzle filename:
// every digit of the base name in order, wrapped as solution<digits>.txt.
// puzzle17.txt becomes solution17.txt, puzzle_3-b.txt becomes
// solution3.txt, and a digitless name becomes the bare solution.txt.
func SolutionName(puzzleName string) string {
	base := filepath.Base(puzzleName)
	digits := make([]byte, 0, len(base))
	for i := 0; i < len(base); i++ {
		if base[i] >= '0' && base[i] <= '9' {
			digits = append(digits, base[i])
		}
	}
	return "solution" + string(digits) + ".txt"
}

// SolutionPath places the solution next to the puzzle unless outputDir
// redirects it.
func SolutionPath(puzzlePath, outputDir string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(puzzlePath)
	}
	return filepath.Join(dir, SolutionName(puzzlePath))
}
