package loop

import (
	"sync"
	"time"
)

// Clock supplies wall-clock readings to the scheduler.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests and headless runs.
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{currentTime: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SteppingClock advances by a fixed step on every reading after the first.
// It simulates a steady frame rate without sleeping.
type SteppingClock struct {
	next time.Time
	step time.Duration
}

// NewSteppingClock creates a clock whose first reading is start.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

// Now returns the current reading and moves the clock one step.
func (c *SteppingClock) Now() time.Time {
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}
