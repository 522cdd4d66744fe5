package search

import "fmt"

// Strategy selects the traversal algorithm.
type Strategy string

const (
	StrategyAStar  Strategy = "astar"
	StrategyBFS    Strategy = "bfs"
	StrategyIDDFS  Strategy = "iddfs"
	StrategyGreedy Strategy = "greedy"
)

// DefaultStrategy is what production runs use; the others exist for
// comparison and for the self-test.
const DefaultStrategy = StrategyAStar

// Strategies lists every strategy, default first.
func Strategies() []Strategy {
	return []Strategy{StrategyAStar, StrategyBFS, StrategyIDDFS, StrategyGreedy}
}

// ParseStrategy validates a strategy name from a flag or config file.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAStar, StrategyBFS, StrategyIDDFS, StrategyGreedy:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown search strategy %q (valid: astar, bfs, iddfs, greedy)", s)
	}
}
