package kb

import (
	"sync"
	"time"
)

// Tracker records the time of the most recent qualifying change under a
// watched tree. It is shared between the event subscriber and the debounce
// wait, so both operations are internally synchronized.
type Tracker struct {
	mu   sync.Mutex
	last time.Time
}

// RecordChange notes a qualifying change observed at now.
func (t *Tracker) RecordChange(now time.Time) {
	t.mu.Lock()
	t.last = now
	t.mu.Unlock()
}

// LastChange returns the time of the most recent recorded change, or the
// zero time if none has been recorded.
func (t *Tracker) LastChange() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// SinceLastChange returns how long the tree has been quiescent as of now.
func (t *Tracker) SinceLastChange(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return now.Sub(t.last)
}
