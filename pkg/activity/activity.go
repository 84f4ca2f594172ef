// Package activity provides a process-wide busy indicator shared by every
// call site that performs foreground work: request middleware, the auth
// wrappers, and the status endpoint that drives client progress bars.
//
// The tracker is a plain two-state flag, not a reference counter: any End
// call clears the flag no matter how many Begin calls preceded it. Overlapping
// operations can therefore hide each other's in-flight indicator; callers that
// need exact nesting should hold their own tracker instance.
package activity

import "sync"

// State is the tracker's observable condition.
type State string

const (
	Idle State = "idle"
	Busy State = "busy"
)

// Tracker is a shared busy flag with idempotent transitions:
// Idle→Busy on Begin, Busy→Busy on repeated Begin, Busy→Idle on End,
// Idle→Idle on End.
type Tracker struct {
	mu   sync.Mutex
	busy bool
}

// NewTracker returns an idle tracker. Inject one instance at composition
// time; the package deliberately exposes no global.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin marks the tracker busy. Calling Begin while already busy is a no-op.
func (t *Tracker) Begin() {
	t.mu.Lock()
	t.busy = true
	t.mu.Unlock()
}

// End marks the tracker idle. A single End clears the flag regardless of how
// many Begin calls came before; calling End while idle is a no-op.
func (t *Tracker) End() {
	t.mu.Lock()
	t.busy = false
	t.mu.Unlock()
}

// IsBusy reports whether any tracked operation is in flight.
func (t *Tracker) IsBusy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// State returns the current state as a label suitable for responses and
// metrics.
func (t *Tracker) State() State {
	if t.IsBusy() {
		return Busy
	}
	return Idle
}

// Track runs fn between Begin and End, ending even when fn fails. It mirrors
// the client-side wrapper used around auth calls and navigation.
func (t *Tracker) Track(fn func() error) error {
	t.Begin()
	defer t.End()
	return fn()
}
