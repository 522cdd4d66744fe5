package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"cascade/internal/config"
	"cascade/internal/logging"
)

var singleMoveText = strings.Join([]string{
	"3", "2", "9", "3", "5", "2", "0",
	"1 2 3",
	"4 5 6",
	"3 8 5",
	"3 5 6",
	"5 3 7",
}, "\n") + "\n"

// Same dead board, quota zero: solvable with no swaps at all.
var quotaZeroText = strings.Join([]string{
	"0", "1", "9", "3", "5", "2", "0",
	"1 2 3",
	"4 5 6",
	"5 6 7",
	"6 1 8",
	"1 1 9",
}, "\n") + "\n"

// Dead board with an unreachable quota: solved best-effort, zero swaps.
var bestEffortText = strings.Join([]string{
	"5", "1", "9", "3", "5", "2", "0",
	"1 2 3",
	"4 5 6",
	"5 6 7",
	"6 1 8",
	"1 1 9",
}, "\n") + "\n"

// --- Discover tests ---

func TestDiscover_MatchesPuzzlePattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "puzzle1.txt")
	touch(t, dir, "puzzle23.txt")
	touch(t, dir, "puzzle.txt")
	touch(t, dir, "notpuzzle1.txt")
	touch(t, dir, "solution1.txt")
	touch(t, dir, "puzzle2.dat")
	touch(t, dir, "readme.md")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"puzzle.txt", "puzzle1.txt", "puzzle23.txt"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_SortIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "puzzle2.txt")
	touch(t, dir, "puzzle10.txt")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"puzzle10.txt", "puzzle2.txt"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "puzzle1.txt")
	os.MkdirAll(filepath.Join(dir, "nested"), 0o755)
	touch(t, filepath.Join(dir, "nested"), "puzzle2.txt")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (subdirectories are not walked)", len(files))
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	// Glob treats a nonexistent directory as zero matches, not an error.
	files, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

// --- Batch run tests ---

func TestRun_SolvesBatch(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	writePuzzle(t, dir, "puzzle2.txt", bestEffortText)

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Total != 2 || stats.Solved != 1 || stats.BestEffort != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalSwaps != 1 {
		t.Errorf("TotalSwaps: got %d, want 1", stats.TotalSwaps)
	}
	if stats.Elapsed <= 0 {
		t.Errorf("Elapsed: got %v, want > 0", stats.Elapsed)
	}

	doc := readSolution(t, dir, "solution1.txt")
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("solution1.txt has %d lines, want 14", len(lines))
	}
	if echo := strings.Join(lines[:12], "\n") + "\n"; echo != singleMoveText {
		t.Errorf("input echo mismatch:\n%s", echo)
	}
	if lines[12] != "(0, 4),(1, 4)" {
		t.Errorf("swap line = %q", lines[12])
	}

	// Best-effort puzzles still produce a solution file.
	if _, err := os.Stat(filepath.Join(dir, "solution2.txt")); err != nil {
		t.Errorf("solution2.txt missing: %v", err)
	}
}

func TestRun_OutputDir(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "solutions")
	writePuzzle(t, inputDir, "puzzle7.txt", singleMoveText)

	cfg := newTestConfig(inputDir)
	cfg.OutputDir = outputDir
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Solved != 1 {
		t.Fatalf("Solved: got %d, want 1", stats.Solved)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "solution7.txt")); err != nil {
		t.Errorf("solution7.txt not in output dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(inputDir, "solution7.txt")); err == nil {
		t.Error("solution7.txt also written next to the puzzle")
	}
}

func TestRun_FailureDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", "this is not a puzzle\n")
	writePuzzle(t, dir, "puzzle2.txt", quotaZeroText)

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Failed != 1 || stats.Solved != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "solution1.txt")); err == nil {
		t.Error("solution1.txt written for a broken puzzle")
	}
	if _, err := os.Stat(filepath.Join(dir, "solution2.txt")); err != nil {
		t.Errorf("solution2.txt missing: %v", err)
	}
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)

	cfg := newTestConfig(dir)
	cfg.DryRun = true
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Planned != 1 || stats.Solved != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "solution1.txt")); err == nil {
		t.Error("dry run wrote a solution file")
	}
}

func TestRun_SkipExisting(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	sentinel := "already solved\n"
	writePuzzle(t, dir, "solution1.txt", sentinel)

	cfg := newTestConfig(dir)
	cfg.SkipExisting = true
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Skipped != 1 || stats.Solved != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if got := readSolution(t, dir, "solution1.txt"); got != sentinel {
		t.Errorf("existing solution overwritten: %q", got)
	}
}

func TestRun_OverwritesByDefault(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	writePuzzle(t, dir, "solution1.txt", "stale\n")

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Solved != 1 {
		t.Fatalf("Solved: got %d, want 1", stats.Solved)
	}
	if got := readSolution(t, dir, "solution1.txt"); got == "stale\n" {
		t.Error("stale solution not overwritten")
	}
}

func TestRun_CollisionLaterResultWins(t *testing.T) {
	dir := t.TempDir()
	// Both names strip to the digits "1" and claim solution1.txt.
	writePuzzle(t, dir, "puzzle1a.txt", singleMoveText)
	writePuzzle(t, dir, "puzzle1b.txt", quotaZeroText)

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Total != 2 || stats.Written() != 2 {
		t.Errorf("stats = %+v", stats)
	}

	// puzzle1b.txt is processed second, so its document (no swaps, blank
	// swap line) is what survives.
	doc := readSolution(t, dir, "solution1.txt")
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("solution1.txt has %d lines, want 14", len(lines))
	}
	if lines[12] != "" {
		t.Errorf("swap line = %q, want blank", lines[12])
	}
}

func TestRun_CanceledContextStopsImmediately(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	writePuzzle(t, dir, "puzzle2.txt", singleMoveText)

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := Run(ctx, &cfg, log)

	if stats.Written() != 0 {
		t.Errorf("stats = %+v, want no solutions written", stats)
	}
}

func TestRun_DriverMode(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	script := writeDriverScript(t, "echo driver document\n")

	cfg := newTestConfig(dir)
	cfg.DriverCmd = script
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Solved != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if got := readSolution(t, dir, "solution1.txt"); got != "driver document\n" {
		t.Errorf("solution1.txt = %q", got)
	}
}

func TestRun_DriverFailureCountsAsFailed(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	script := writeDriverScript(t, "echo no luck >&2\nexit 2\n")

	cfg := newTestConfig(dir)
	cfg.DriverCmd = script
	log := newTestLogger(t, &cfg)

	stats := Run(context.Background(), &cfg, log)

	if stats.Failed != 1 || stats.Solved != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "solution1.txt")); err == nil {
		t.Error("solution written for a failed driver")
	}
}

func TestRun_DriverTimeout(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	script := writeDriverScript(t, "sleep 10 &\nwait\n")

	cfg := newTestConfig(dir)
	cfg.DriverCmd = script
	cfg.Timeout = 100 * time.Millisecond
	log := newTestLogger(t, &cfg)

	start := time.Now()
	stats := Run(context.Background(), &cfg, log)

	if stats.Failed != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("batch took %v, timeout not enforced", elapsed)
	}
}

// Batch output belongs on stderr with the log stream; stdout must stay
// clean so redirecting it captures nothing.
func TestRun_NothingOnStdout(t *testing.T) {
	dir := t.TempDir()
	writePuzzle(t, dir, "puzzle1.txt", singleMoveText)
	writePuzzle(t, dir, "puzzle2.txt", "garbage\n")

	cfg := newTestConfig(dir)
	log := newTestLogger(t, &cfg)

	var stats RunStats
	out := captureStdout(t, func() {
		stats = Run(context.Background(), &cfg, log)
	})

	if stats.Solved != 1 || stats.Failed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
}

// --- Helpers ---

func newTestConfig(inputDir string) config.Config {
	cfg := config.DefaultConfig()
	cfg.InputDir = inputDir
	cfg.ColorMode = config.ColorNever
	return cfg
}

func newTestLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.New(cfg)
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func writeDriverScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "driver.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func writePuzzle(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func readSolution(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
