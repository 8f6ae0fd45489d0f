package scroll

import "sync"

// Queue is an in-memory QueueView for hosts without a pending store of
// their own: named series of resolved targets awaiting execution. The
// zero value is not usable; create one with NewQueue.
type Queue struct {
	mu      sync.Mutex
	pending map[string][]Coords
}

// NewQueue creates an empty queue store.
func NewQueue() *Queue {
	return &Queue{pending: make(map[string][]Coords)}
}

// Push appends a resolved target to the named queue.
func (q *Queue) Push(queue string, c Coords) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending[queue] = append(q.pending[queue], c)
}

// Shift removes and returns the oldest pending target, reporting
// whether one existed. Executors call this as they start each hop.
func (q *Queue) Shift(queue string) (Coords, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	entries := q.pending[queue]
	if len(entries) == 0 {
		return Coords{}, false
	}
	q.pending[queue] = entries[1:]
	return entries[0], true
}

// Clear drops every pending target in the named queue.
func (q *Queue) Clear(queue string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, queue)
}

// Len returns the number of pending targets in the named queue.
func (q *Queue) Len(queue string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending[queue])
}

// Pending returns a copy of the not-yet-executed targets, oldest first.
func (q *Queue) Pending(queue string) []Coords {
	q.mu.Lock()
	defer q.mu.Unlock()
	entries := q.pending[queue]
	out := make([]Coords, len(entries))
	copy(out, entries)
	return out
}
