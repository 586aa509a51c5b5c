// Package debounce delays propagation of a rapidly changing value until it
// has been stable for a full quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes fn with the most recent scheduled value once no new
// value has arrived for the configured delay. Each Schedule call cancels
// the pending timer, so intermediate values during a typing burst are
// never propagated.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// New returns a Debouncer that calls fn after delay of quiet. fn runs on a
// timer goroutine and must be safe to call from there.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Schedule arms the timer for v, cancelling any pending value.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		superseded := gen != d.gen
		d.mu.Unlock()
		// A Stop between firing and running can slip through timer.Stop;
		// the generation check catches it.
		if superseded {
			return
		}
		d.fn(v)
	})
}

// Stop cancels the pending value, if any. The Debouncer stays usable.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
