// Package clock provides an injectable time source. The lifecycle engine
// measures undo reversibility windows against a Clock supplied by the
// composition root instead of reading the wall clock directly, which keeps
// window checks deterministic under test.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() System {
	return System{}
}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now returns the result of the wrapped function.
func (f Func) Now() time.Time {
	return f()
}
