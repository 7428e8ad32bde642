// Package loop implements the fixed-timestep game loop: wall-clock time is
// accumulated into a lag counter and drained in whole simulation ticks, so the
// simulation rate is independent of how often frames are presented.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/autopong/internal/core"
)

// Scheduler accumulates elapsed time and runs whole ticks out of it.
// It is not safe for concurrent use; the loop that owns it serializes all
// access to the simulation.
type Scheduler struct {
	clock    Clock
	tick     time.Duration
	step     func()
	previous time.Time
	lag      time.Duration
	ticks    uint64
}

// NewScheduler creates a scheduler that calls step once per tick of wall time.
// The clock is read once here to establish the starting point.
func NewScheduler(clock Clock, tick time.Duration, step func()) *Scheduler {
	if tick <= 0 {
		panic(fmt.Sprintf("loop: tick duration must be positive, got %v", tick))
	}
	return &Scheduler{
		clock:    clock,
		tick:     tick,
		step:     step,
		previous: clock.Now(),
	}
}

// Advance reads the clock, adds the elapsed time to the lag, and runs
// simulation ticks while at least one full tick is available. The remainder
// carries over to the next call. Returns the number of ticks run.
func (s *Scheduler) Advance() int {
	current := s.clock.Now()
	s.lag += current.Sub(s.previous)
	s.previous = current

	n := 0
	for s.lag >= s.tick {
		s.step()
		s.lag -= s.tick
		n++
	}
	s.ticks += uint64(n) //#nosec G115 -- n is non-negative
	return n
}

// Resync drops any accumulated lag and restarts timing from now.
func (s *Scheduler) Resync() {
	s.previous = s.clock.Now()
	s.lag = 0
}

// Lag returns the time accumulated but not yet consumed by a tick.
func (s *Scheduler) Lag() time.Duration {
	return s.lag
}

// Ticks returns the total number of ticks run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// TickDuration returns the fixed tick length.
func (s *Scheduler) TickDuration() time.Duration {
	return s.tick
}

// Iterate runs one outer-loop iteration: poll quit, drain ticks, render once.
// It reports whether quit was requested. Platforms that own their own event
// loop call it once per frame.
func Iterate(s *Scheduler, in core.Input, render func() error) (bool, error) {
	quit := in.QuitRequested()

	s.Advance()

	if err := render(); err != nil {
		return quit, fmt.Errorf("loop: render: %w", err)
	}
	return quit, nil
}

// Run drives the outer loop until input requests quit or ctx is done.
// A quit request ends the loop after the iteration that observed it has
// rendered. Render errors stop the loop.
func Run(ctx context.Context, s *Scheduler, in core.Input, render func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := Iterate(s, in, render)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
