package pipeline

import "time"

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total         int
	Current       int
	Solved        int
	BestEffort    int
	Skipped       int
	Failed        int
	Planned       int
	TotalSwaps    int
	NodesExpanded int
	Elapsed       time.Duration
}

// Written returns how many solution files the run produced.
func (s *RunStats) Written() int {
	return s.Solved + s.BestEffort
}
