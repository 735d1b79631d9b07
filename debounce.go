package kb

import (
	"sync"
	"time"
)

// Debouncer delays an action until a burst of changes has settled for a full
// quiet interval. At most one wait is pending at any time: changes recorded
// while a wait is in progress only move the deadline.
//
// Instead of polling, a single resettable timer is scheduled for the moment
// the tree would become quiescent. When it fires, the elapsed quiet time is
// re-checked against the tracker; if changes slipped in during the wait the
// timer is re-armed for the remainder, otherwise the action fires once and
// the debouncer returns to idle.
type Debouncer struct {
	interval time.Duration
	fire     func()
	tracker  *Tracker

	mu      sync.Mutex
	timer   *time.Timer
	armed   bool
	stopped bool
}

// NewDebouncer returns an idle Debouncer that calls fire after changes have
// settled for interval.
func NewDebouncer(interval time.Duration, fire func()) *Debouncer {
	return &Debouncer{
		interval: interval,
		fire:     fire,
		tracker:  &Tracker{},
	}
}

// Tracker returns the quiescence tracker backing the debouncer.
func (d *Debouncer) Tracker() *Tracker {
	return d.tracker
}

// Armed reports whether a debounce wait is currently pending.
func (d *Debouncer) Armed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Record notes a qualifying change at now. If the debouncer is idle a new
// wait is started; if a wait is already pending only the last-change time
// advances.
func (d *Debouncer) Record(now time.Time) {
	d.tracker.RecordChange(now)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || d.armed {
		return
	}
	d.armed = true
	d.timer = time.AfterFunc(d.interval, d.tick)
}

// tick runs when the timer elapses. It either re-arms for the remaining
// quiet time or fires the action and disarms.
func (d *Debouncer) tick() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	quiet := d.tracker.SinceLastChange(time.Now())
	if quiet < d.interval {
		d.timer.Reset(d.interval - quiet)
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.mu.Unlock()

	d.fire()
}

// Stop cancels any pending wait. The debouncer must not be reused after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
