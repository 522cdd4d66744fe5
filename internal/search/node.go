package search

import "cascade/internal/puzzle"

// Node is one vertex of the swap tree: a deep-copied puzzle state, the
// swap that produced it, and the path cost in swaps.
type Node struct {
	State  *puzzle.Puzzle
	Action puzzle.Swap
	Parent *Node
	Cost   int
}

// NewRoot wraps the starting state. The root has no action.
func NewRoot(state *puzzle.Puzzle) *Node {
	return &Node{State: state.Copy()}
}

// NewChild copies the parent's state at the parent's cost. The action is
// recorded but not applied until PerformAction.
func NewChild(parent *Node, action puzzle.Swap) *Node {
	return &Node{
		State:  parent.State.Copy(),
		Action: action,
		Parent: parent,
		Cost:   parent.Cost,
	}
}

// PerformAction applies the node's swap, logs it on the state, and pays
// one unit of path cost.
func (n *Node) PerformAction() {
	n.State.SwapCells(n.Action.A, n.Action.B)
	n.State.Swaps = append(n.State.Swaps, n.Action)
	n.Cost++
}
