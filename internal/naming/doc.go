// Package naming maps puzzle filenames to solution filenames and tracks
// in-run collisions.
//
// Implemented:
//   - SolutionName / SolutionPath (solution.go): keep every digit of the
//     puzzle base name in order, wrap them as solution<digits>.txt.
//   - Tracker (collision.go): warn-only duplicate detection. Distinct
//     puzzle names can map to the same solution name (puzzle7.txt and
//     puzzle7a.txt both yield solution7.txt); the name is a fixed
//     contract so nothing gets renamed, the last write wins and the
//     caller is told who lost.
package naming
