// Package search grows and traverses the swap tree. Four strategies share
// one node expansion: copy the state, perform the swap, resolve the
// resulting cascade, enqueue.
//
// Implemented:
//   - Node (node.go): state copy + action + parent + path cost
//   - priorityQueue (queue.go): sorts on dequeue, not enqueue; ties pop
//     newest-first
//   - Tree (tree.go): bfs, iddfs, greedy best-first, and A* over the
//     shared expansion; every strategy falls back to the highest-scoring
//     node seen when the quota is out of reach
//
// The A* heuristic is |quota-score|*cost, greedy uses quota-score. Both
// run as graph searches with an explored set keyed on board + score.
package search
