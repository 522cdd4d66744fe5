// Package pipeline orchestrates puzzle discovery, per-file solving, and
// batch summary reporting.
//
// Implemented:
//   - RunStats (stats.go): per-run counters plus swap and node totals
//   - Discover (discover.go): non-recursive puzzle*.txt glob, sorted
//   - Run (runner.go): batch runner; for each file: claim solution name →
//     skip-existing / dry-run gates → solve (native search or external
//     driver, optional per-file timeout) → write solution<digits>.txt
//
// Failures are isolated per file: a puzzle that cannot be read, parsed,
// or solved is counted and logged, and the batch moves on. SIGINT stops
// the batch between files.
package pipeline
