package slots

import "time"

// Deferred runs a callback once after a delay measured in machine time.
// It is advanced by the machine tick, never by a wall clock.
type Deferred struct {
	remaining time.Duration
	fn        func()
	armed     bool
}

// Schedule arms the task, replacing any pending callback.
func (d *Deferred) Schedule(after time.Duration, fn func()) {
	d.remaining = after
	d.fn = fn
	d.armed = true
}

// Cancel drops a pending callback. It reports whether one was pending.
func (d *Deferred) Cancel() bool {
	was := d.armed
	d.armed = false
	d.fn = nil
	return was
}

// Pending reports whether a callback is waiting to run.
func (d *Deferred) Pending() bool {
	return d.armed
}

// Advance counts down by elapsed and runs the callback when due.
// It reports whether the callback ran.
func (d *Deferred) Advance(elapsed time.Duration) bool {
	if !d.armed {
		return false
	}
	d.remaining -= elapsed
	if d.remaining > 0 {
		return false
	}
	fn := d.fn
	d.armed = false
	d.fn = nil
	fn()
	return true
}
