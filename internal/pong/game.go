package pong

import (
	"io"

	"github.com/charmbracelet/log"
)

// Game runs the simulation one fixed tick at a time.
type Game struct {
	state     State
	left      Controller
	right     Controller
	logger    *log.Logger
	tickCount uint64
	resets    int
}

// Option configures a Game.
type Option func(*Game)

// WithControllers replaces the default autopilots. A nil controller keeps the default.
func WithControllers(left, right Controller) Option {
	return func(g *Game) {
		if left != nil {
			g.left = left
		}
		if right != nil {
			g.right = right
		}
	}
}

// WithLogger sets the logger used for scoring and reset events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithState starts the game from an explicit state instead of a fresh match.
func WithState(s State) Option {
	return func(g *Game) {
		g.state = s
	}
}

// New creates a game with both paddles on autopilot.
func New(opts ...Option) *Game {
	g := &Game{
		state:  NewState(),
		left:   Autopilot{},
		right:  Autopilot{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Tick advances the simulation by one fixed step:
// controllers, paddle boxes, ball, then match state.
// Returns the scoring event if the ball left the table this tick.
func (g *Game) Tick() (ScoreEvent, bool) {
	g.tickCount++
	s := &g.state

	g.left.Control(&s.Left, s.Ball)
	g.right.Control(&s.Right, s.Ball)
	s.Left.Sync()
	s.Right.Sync()

	UpdateBall(s)

	ev, scored := Evaluate(s)
	if scored {
		g.resets++
		g.logger.Info("point scored",
			"tick", g.tickCount,
			"exit", ev.Exit,
			"credited", ev.Credited,
			"left", ev.LeftScore,
			"right", ev.RightScore,
		)
		g.logger.Debug("table reset", "resets", g.resets)
	}
	return ev, scored
}

// State returns the live simulation state. Callers outside a tick must treat it as read-only.
func (g *Game) State() *State {
	return &g.state
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}
