package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/loop"
	"github.com/vovakirdan/autopong/internal/pong"
)

// Options configures a headless run.
type Options struct {
	Frames        int           // Outer-loop iterations, including the quitting one
	FrameInterval time.Duration // Simulated wall time between iterations
	Start         time.Time
	Width         int // Size of the ASCII frame; zero disables it
	Height        int
	Palette       pong.Palette
	Input         *ScriptedInput // Nil means no keys held; Run rewinds it and sets QuitAfter
	Logger        *log.Logger
}

// Result summarizes a headless run.
type Result struct {
	Frames    int
	Tick      time.Duration
	Ticks     uint64
	Lag       time.Duration
	Snapshot  pong.Snapshot
	LastFrame []Fill
	Screen    *core.Screen // Nil when no ASCII frame was requested
}

// Run drives game through the fixed-timestep loop on simulated time.
func Run(ctx context.Context, game *pong.Game, opts Options) (Result, error) {
	if opts.Frames <= 0 {
		return Result{}, fmt.Errorf("headless: frames must be positive, got %d", opts.Frames)
	}
	if opts.FrameInterval <= 0 {
		return Result{}, errors.New("headless: frame interval must be positive")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	in := opts.Input
	if in == nil {
		in = &ScriptedInput{}
	}
	in.QuitAfter = opts.Frames
	in.polls = 0

	rec := &Recorder{}
	var screen *core.Screen
	if opts.Width > 0 && opts.Height > 0 {
		screen = core.NewScreen(opts.Width, opts.Height)
		rec.Next = core.NewScreenSurface(screen, pong.WindowWidth, pong.WindowHeight)
	}

	clock := loop.NewSteppingClock(opts.Start, opts.FrameInterval)
	sched := loop.NewScheduler(clock, pong.TickDuration, func() { game.Tick() })

	logger.Debug("headless run starting", "frames", opts.Frames, "interval", opts.FrameInterval)
	err := loop.Run(ctx, sched, in, func() error {
		return pong.Draw(rec, game.State(), opts.Palette)
	})
	if err != nil {
		return Result{}, fmt.Errorf("headless: %w", err)
	}

	res := Result{
		Frames:    rec.Frames(),
		Tick:      sched.TickDuration(),
		Ticks:     sched.Ticks(),
		Lag:       sched.Lag(),
		Snapshot:  game.Snapshot(),
		LastFrame: rec.LastFrame(),
		Screen:    screen,
	}
	logger.Debug("headless run finished", "frames", res.Frames, "ticks", res.Ticks)
	return res, nil
}
