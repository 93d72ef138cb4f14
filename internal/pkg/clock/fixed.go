package clock

import (
	"sync"
	"time"
)

// Fixed is a Clock that returns a manually controlled instant.
// It is safe for concurrent use and intended for tests that need to move
// time across undo window boundaries deterministically.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed creates a fixed clock frozen at the given instant.
func NewFixed(at time.Time) *Fixed {
	return &Fixed{now: at}
}

// Now returns the clock's current instant.
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to a specific instant.
func (c *Fixed) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}
