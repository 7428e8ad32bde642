package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autopong/internal/core"
)

const tick = 16 * time.Millisecond

var epoch = time.Unix(1_700_000_000, 0)

func newCounting(clock Clock) (*Scheduler, *int) {
	count := 0
	return NewScheduler(clock, tick, func() { count++ }), &count
}

func TestAdvanceDrainsWholeTicks(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		wantTicks int
		wantLag   time.Duration
	}{
		{"no time", 0, 0, 0},
		{"less than a tick", 15 * time.Millisecond, 0, 15 * time.Millisecond},
		{"exactly one tick", tick, 1, 0},
		{"one and a bit", 20 * time.Millisecond, 1, 4 * time.Millisecond},
		{"several", 100 * time.Millisecond, 6, 4 * time.Millisecond},
		{"long stall", time.Second, 62, 8 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock := NewManualClock(epoch)
			s, count := newCounting(clock)

			clock.Advance(tc.elapsed)
			n := s.Advance()

			assert.Equal(t, tc.wantTicks, n)
			assert.Equal(t, tc.wantTicks, *count)
			assert.Equal(t, tc.wantLag, s.Lag())
		})
	}
}

func TestAdvanceCarriesLag(t *testing.T) {
	clock := NewManualClock(epoch)
	s, count := newCounting(clock)

	// Three 10ms frames: 10 -> 0 ticks, 20 -> 1 tick (4 left), 14 -> 0 ticks.
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, s.Advance())
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, 4*time.Millisecond, s.Lag())
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, s.Advance())
	assert.Equal(t, 14*time.Millisecond, s.Lag())
	clock.Advance(2 * time.Millisecond)
	assert.Equal(t, 1, s.Advance())

	assert.Equal(t, 2, *count)
	assert.Equal(t, uint64(2), s.Ticks())
}

func TestAdvanceTickTotalMatchesElapsed(t *testing.T) {
	clock := NewSteppingClock(epoch, 7*time.Millisecond)
	s, count := newCounting(clock)

	for i := 0; i < 1000; i++ {
		s.Advance()
	}

	// 1000 frames of 7ms = 7000ms = 437 ticks of 16ms with 8ms left over.
	assert.Equal(t, 437, *count)
	assert.Equal(t, 8*time.Millisecond, s.Lag())
}

func TestResync(t *testing.T) {
	clock := NewManualClock(epoch)
	s, count := newCounting(clock)

	clock.Advance(10 * time.Millisecond)
	s.Advance()
	clock.Advance(time.Hour)
	s.Resync()

	assert.Equal(t, time.Duration(0), s.Lag())
	assert.Equal(t, 0, s.Advance())
	assert.Equal(t, 0, *count)
}

func TestNewSchedulerRejectsZeroTick(t *testing.T) {
	assert.Panics(t, func() {
		NewScheduler(SystemClock{}, 0, func() {})
	})
}

func TestSteppingClock(t *testing.T) {
	c := NewSteppingClock(epoch, time.Second)
	assert.Equal(t, epoch, c.Now())
	assert.Equal(t, epoch.Add(time.Second), c.Now())
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())
}

type scriptedInput struct {
	polls     int
	quitAfter int
}

func (s *scriptedInput) QuitRequested() bool {
	s.polls++
	return s.polls >= s.quitAfter
}

func (s *scriptedInput) KeyDown(core.Key) bool { return false }

func TestRunStopsAfterQuitIteration(t *testing.T) {
	clock := NewSteppingClock(epoch, tick)
	s, count := newCounting(clock)
	in := &scriptedInput{quitAfter: 5}
	frames := 0

	err := Run(context.Background(), s, in, func() error {
		frames++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5, in.polls)
	assert.Equal(t, 5, frames, "the quitting iteration still renders")
	assert.Equal(t, 5, *count)
}

func TestRunRenderError(t *testing.T) {
	s, _ := newCounting(NewSteppingClock(epoch, tick))
	boom := errors.New("boom")

	err := Run(context.Background(), s, &scriptedInput{quitAfter: 100}, func() error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestRunContextCancelled(t *testing.T) {
	s, count := newCounting(NewSteppingClock(epoch, tick))
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0

	err := Run(ctx, s, &scriptedInput{quitAfter: 1000}, func() error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, *count)
}

func TestIterateReportsQuitAndStillRenders(t *testing.T) {
	clock := NewManualClock(epoch)
	s, count := newCounting(clock)
	in := &scriptedInput{quitAfter: 1}
	rendered := false

	clock.Advance(3 * tick)
	quit, err := Iterate(s, in, func() error {
		rendered = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, quit)
	assert.True(t, rendered)
	assert.Equal(t, 3, *count)
}
