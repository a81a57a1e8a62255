// Package timer provides a cancellable one-shot timer and the request timeout
// wrapper built on it.
package timer

import (
	"sync"
	"time"
)

// Timer runs fn once after d unless cancelled first. Reset re-arms it, which
// makes a Timer usable as a trailing-edge debounce.
type Timer struct {
	mu      sync.Mutex
	d       time.Duration
	fn      func()
	t       *time.Timer
	gen     uint64
	pending bool
	fired   bool
}

// New returns an unarmed timer.
func New(d time.Duration, fn func()) *Timer {
	return &Timer{d: d, fn: fn}
}

// AfterFunc returns an armed timer.
func AfterFunc(d time.Duration, fn func()) *Timer {
	t := New(d, fn)
	t.Reset()
	return t
}

// Reset arms the timer for a full period, dropping any pending call.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.t != nil {
		t.t.Stop()
	}
	t.gen++
	gen := t.gen
	t.pending = true
	t.fired = false
	t.t = time.AfterFunc(t.d, func() { t.fire(gen) })
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	// a Reset or Cancel raced with the runtime timer
	if gen != t.gen || !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.fired = true
	t.mu.Unlock()

	t.fn()
}

// Cancel prevents a pending call. It reports whether one was pending.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.pending {
		return false
	}
	t.pending = false
	t.gen++
	if t.t != nil {
		t.t.Stop()
	}
	return true
}

// Fired reports whether fn has been called since the last Reset.
func (t *Timer) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}
