package clock

import (
	"sync"
	"time"
)

// Clock is the source of "now" for growth, production and notice expiry
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() RealClock { return RealClock{} }

func (RealClock) Now() time.Time { return time.Now() }

// Func adapts an ordinary function to Clock
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// SimulatedClock only moves when told to. Safe for concurrent use, so tick
// jobs can share it with the test driving them.
type SimulatedClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{now: start}
}

func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time
func (c *SimulatedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
