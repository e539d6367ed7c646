// Package dispatch provides the single-threaded cooperative event loop
// that the frameless helper schedules its deferred work on. Every
// callback runs on the goroutine that pumps the loop; there is no
// cross-goroutine handoff and therefore no locking anywhere in this
// package.
package dispatch

import (
	"time"

	"github.com/go-drift/frameless/pkg/errors"
)

// Loop is a cooperative run queue with one-shot timers. All methods
// must be called from the UI goroutine.
type Loop struct {
	clock  Clock
	queue  []func()
	timers []*Timer
}

// Main is the process-wide loop used when no explicit loop is injected.
var Main = NewLoop()

// NewLoop returns a loop driven by the system clock.
func NewLoop() *Loop {
	return NewLoopWithClock(systemClock{})
}

// NewLoopWithClock returns a loop driven by the given clock. Tests pass
// a FakeClock to make timer firing deterministic.
func NewLoopWithClock(c Clock) *Loop {
	return &Loop{clock: c}
}

// Post queues fn to run on the next ProcessEvents pass.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.queue = append(l.queue, fn)
}

// PostDelayed schedules fn to run once after d has elapsed. A
// non-positive delay behaves like Post. The returned Timer can be
// stopped before it fires; a fired or stopped timer never fires again.
func (l *Loop) PostDelayed(d time.Duration, fn func()) *Timer {
	if fn == nil {
		return &Timer{stopped: true}
	}
	t := &Timer{deadline: l.clock.Now().Add(d), fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// ProcessEvents runs all queued callbacks and all timers that are due.
// It never sleeps. Callbacks queued by other callbacks during the pass
// are run before it returns.
func (l *Loop) ProcessEvents() {
	for l.runQueued() || l.fireDue() {
	}
}

// WaitUntil pumps the loop until cond reports true, sleeping between
// timer deadlines instead of spinning. It returns false (with a logged
// notice) if the loop drains completely while cond is still false,
// since no future work could ever satisfy it.
func (l *Loop) WaitUntil(cond func() bool) bool {
	for !cond() {
		if l.runQueued() || l.fireDue() {
			continue
		}
		next, ok := l.nextDeadline()
		if !ok {
			errors.Report(errors.New("dispatch.WaitUntil", errors.KindLifecycle,
				"event loop drained with no pending work; giving up wait"))
			return false
		}
		if d := next.Sub(l.clock.Now()); d > 0 {
			l.clock.Sleep(d)
		}
	}
	return true
}

// runQueued runs every currently queued callback. Returns true if any ran.
func (l *Loop) runQueued() bool {
	if len(l.queue) == 0 {
		return false
	}
	pending := l.queue
	l.queue = nil
	for _, fn := range pending {
		fn()
	}
	return true
}

// fireDue fires every timer whose deadline has passed, in scheduling
// order. Returns true if any fired. The timer list is settled before
// any callback runs, so a callback scheduling a new timer appends to
// the surviving list instead of a slice this pass is about to discard.
func (l *Loop) fireDue() bool {
	now := l.clock.Now()
	var due []*Timer
	remaining := make([]*Timer, 0, len(l.timers))
	for _, t := range l.timers {
		if t.stopped {
			continue
		}
		if !t.deadline.After(now) {
			t.stopped = true
			due = append(due, t)
			continue
		}
		remaining = append(remaining, t)
	}
	l.timers = remaining
	for _, t := range due {
		t.fn()
	}
	return len(due) > 0
}

// nextDeadline returns the earliest pending timer deadline.
func (l *Loop) nextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, t := range l.timers {
		if t.stopped {
			continue
		}
		if !found || t.deadline.Before(next) {
			next = t.deadline
			found = true
		}
	}
	return next, found
}

// Timer is a handle to a scheduled one-shot callback.
type Timer struct {
	deadline time.Time
	fn       func()
	stopped  bool
}

// Stop cancels the timer if it has not fired yet.
func (t *Timer) Stop() {
	t.stopped = true
}
