package clock

import (
	"sync"
	"time"
)

// Clock is sampled once per request; the sampled instant is then passed down
// explicitly so every line of a cart is priced against the same moment.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	loc *time.Location
}

func NewSystemClock() Clock {
	return &SystemClock{loc: time.UTC}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock is used by tests and previews that need a deterministic instant.
type FixedClock struct {
	mu      sync.RWMutex
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}
