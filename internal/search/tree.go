package search

import (
	"context"
	"fmt"

	"cascade/internal/puzzle"
)

// Result is the outcome of one strategy run. Swaps is the move log of
// the returned node, which is the goal when QuotaMet and otherwise the
// highest-scoring node seen anywhere in the traversal.
type Result struct {
	Swaps    []puzzle.Swap
	Score    int
	Cost     int
	Expanded int
	QuotaMet bool
}

// Tree owns the root state and the best-effort fallback node.
type Tree struct {
	root     *Node
	maxNode  *Node
	expanded int
}

// NewTree roots the tree at state and immediately resolves any matches
// the board starts with, so the root score can already be nonzero.
func NewTree(state *puzzle.Puzzle) *Tree {
	root := NewRoot(state)
	root.State.RemoveMatches(root.State.AllMatches())
	return &Tree{root: root, maxNode: root}
}

// Run executes the given strategy to completion or ctx cancellation.
func (t *Tree) Run(ctx context.Context, strategy Strategy) (*Result, error) {
	var (
		final *Node
		err   error
	)
	switch strategy {
	case StrategyBFS:
		final, err = t.bfs(ctx)
	case StrategyIDDFS:
		final, err = t.iddfs(ctx)
	case StrategyGreedy:
		final, err = t.greedy(ctx)
	case StrategyAStar:
		final, err = t.astar(ctx)
	default:
		return nil, fmt.Errorf("unknown search strategy %q", strategy)
	}
	if err != nil {
		return nil, err
	}
	return &Result{
		Swaps:    append([]puzzle.Swap(nil), final.State.Swaps...),
		Score:    final.State.Score,
		Cost:     final.Cost,
		Expanded: t.expanded,
		QuotaMet: final.State.Score >= final.State.Quota,
	}, nil
}

// expandMove is the shared node expansion: copy the state, apply the
// swap, resolve the cascade around the swapped cells.
func expandMove(node *Node, mv puzzle.Swap) *Node {
	child := NewChild(node, mv)
	child.PerformAction()
	child.State.RemoveMatches(child.State.MatchesAround(mv.A, mv.B))
	return child
}

// bfs is breadth-first tree search, no explored set. The swap-budget
// cutoff is checked before the quota, so a node meeting quota exactly at
// the budget surfaces through the best-effort fallback rather than as a
// goal.
func (t *Tree) bfs(ctx context.Context) (*Node, error) {
	frontier := []*Node{t.root}
	var goal *Node
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := frontier[0]
		frontier = frontier[1:]
		t.expanded++
		if node.State.Score > t.maxNode.State.Score {
			t.maxNode = node
		}
		if node.Cost >= node.State.MaxSwaps {
			continue
		}
		if node.State.Score >= node.State.Quota {
			goal = node
			break
		}
		for _, mv := range node.State.ValidMoves() {
			frontier = append(frontier, expandMove(node, mv))
		}
	}
	if goal == nil {
		goal = t.maxNode
	}
	return goal, nil
}

// iddfs runs depth-limited searches at increasing limits, zero through
// the swap budget. A goal is only recognized exactly at the limit, which
// keeps the first hit minimal in swaps.
func (t *Tree) iddfs(ctx context.Context) (*Node, error) {
	for depth := 0; depth <= t.root.State.MaxSwaps; depth++ {
		node, err := t.dls(ctx, t.root, depth)
		if err != nil {
			return nil, err
		}
		if node != nil {
			return node, nil
		}
	}
	return t.maxNode, nil
}

func (t *Tree) dls(ctx context.Context, node *Node, depth int) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.expanded++
	if depth == 0 && node.State.Score >= node.State.Quota {
		return node, nil
	}
	if depth > 0 {
		if node.State.Score >= t.maxNode.State.Score {
			t.maxNode = node
		}
		for _, mv := range node.State.ValidMoves() {
			found, err := t.dls(ctx, expandMove(node, mv), depth-1)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
		}
	}
	return nil, nil
}

// greedy is greedy best-first graph search on the quota-score heuristic.
func (t *Tree) greedy(ctx context.Context) (*Node, error) {
	frontier := newPriorityQueue(func(n *Node) int {
		return n.State.Quota - n.State.Score
	}, t.root)
	explored := make(map[string]struct{})
	var goal *Node
	for frontier.len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := frontier.dequeue()
		key := node.State.Key()
		if _, seen := explored[key]; seen {
			continue
		}
		explored[key] = struct{}{}
		t.expanded++
		if node.State.Score > t.maxNode.State.Score {
			t.maxNode = node
		}
		if node.Cost >= node.State.MaxSwaps {
			continue
		}
		if node.State.Score >= node.State.Quota {
			goal = node
			break
		}
		for _, mv := range node.State.ValidMoves() {
			frontier.enqueue(expandMove(node, mv))
		}
	}
	if goal == nil {
		goal = t.maxNode
	}
	return goal, nil
}

// astar is A* graph search on |quota-score|*cost. Unlike bfs and greedy
// it checks the quota before the swap-budget cutoff, so goals sitting
// exactly at the budget are found directly.
func (t *Tree) astar(ctx context.Context) (*Node, error) {
	frontier := newPriorityQueue(func(n *Node) int {
		return abs(n.State.Quota-n.State.Score) * n.Cost
	}, t.root)
	explored := make(map[string]struct{})
	var goal *Node
	for frontier.len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := frontier.dequeue()
		key := node.State.Key()
		if _, seen := explored[key]; seen {
			continue
		}
		explored[key] = struct{}{}
		t.expanded++
		if node.State.Score > t.maxNode.State.Score {
			t.maxNode = node
		}
		if node.State.Score >= node.State.Quota {
			goal = node
			break
		}
		if node.Cost >= node.State.MaxSwaps {
			continue
		}
		for _, mv := range node.State.ValidMoves() {
			frontier.enqueue(expandMove(node, mv))
		}
	}
	if goal == nil {
		goal = t.maxNode
	}
	return goal, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
