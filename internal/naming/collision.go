package naming

import "sync"

// Tracker records which puzzle claimed each solution path. The solution
// name is a fixed contract, so colliding outputs are never renamed: the
// last write wins and the collision is reported to the caller instead.
// It is safe for sequential use within a single pipeline run. All
// methods are goroutine-safe.
type Tracker struct {
	mu     sync.Mutex
	owners map[string]string // solution path → puzzle path that claimed it
}

// NewTracker creates a ready-to-use tracker.
func NewTracker() *Tracker {
	return &Tracker{owners: make(map[string]string)}
}

// Claim registers input as the owner of output. When a different input
// already owns the path, ownership moves to input and the previous
// owner is returned with collided true.
func (t *Tracker) Claim(input, output string) (prevOwner string, collided bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	owner, exists := t.owners[output]
	if exists && owner != input {
		t.owners[output] = input
		return owner, true
	}
	t.owners[output] = input
	return "", false
}
