package search

import "sort"

// priorityQueue sorts on dequeue rather than enqueue, which is cheaper
// when enqueues far outnumber dequeues. The sort is stable and
// descending and the pop takes the tail, so the minimum key wins and
// equal keys pop newest-first.
type priorityQueue struct {
	key   func(*Node) int
	items []*Node
}

func newPriorityQueue(key func(*Node) int, items ...*Node) *priorityQueue {
	return &priorityQueue{key: key, items: items}
}

func (q *priorityQueue) enqueue(n *Node) {
	q.items = append(q.items, n)
}

func (q *priorityQueue) dequeue() *Node {
	sort.SliceStable(q.items, func(i, j int) bool {
		return q.key(q.items[i]) > q.key(q.items[j])
	})
	n := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return n
}

func (q *priorityQueue) len() int {
	return len(q.items)
}
