package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/loop"
	"github.com/vovakirdan/autopong/internal/pong"
)

// Options configures a play session.
type Options struct {
	Palette       pong.Palette
	FrameInterval time.Duration // Time between loop iterations
	ShowScore     bool
	Width         int // Initial terminal size; replaced by the first WindowSizeMsg
	Height        int
	Clock         loop.Clock // Nil means the system clock
	Logger        *log.Logger
}

// DefaultOptions returns options for a 60 Hz session with the default palette.
func DefaultOptions() Options {
	return Options{
		Palette:       pong.DefaultPalette(),
		FrameInterval: time.Second / 60,
		ShowScore:     true,
		Width:         80,
		Height:        24,
	}
}

// Model is the Bubble Tea model for a play session.
// Each FrameMsg runs exactly one outer-loop iteration; the simulation itself
// advances only in whole ticks owned by the scheduler.
type Model struct {
	game     *pong.Game
	keys     *KeyState
	sched    *loop.Scheduler
	screen   *core.Screen
	surface  *core.ScreenSurface
	keymap   KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	frame    string
	frames   uint64
	quitting bool
	err      error
}

// NewModel creates a play session for game. Keys must be the same KeyState
// handed to any keyboard controllers of game.
func NewModel(game *pong.Game, keys *KeyState, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = loop.SystemClock{}
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultOptions().FrameInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Width, playfieldHeight(opts.Height))
	m := &Model{
		game:    game,
		keys:    keys,
		screen:  screen,
		surface: core.NewScreenSurface(screen, pong.WindowWidth, pong.WindowHeight),
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
	}
	m.surface.OnPresent = m.present
	m.sched = loop.NewScheduler(opts.Clock, pong.TickDuration, func() { game.Tick() })
	return m
}

// playfieldHeight leaves one row for the status line.
func playfieldHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	m.sched.Resync()
	return frameCmd(m.opts.FrameInterval)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey records presses; quit is only observed by the next iteration.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keymap.MapKey(msg)
	if quit {
		m.keys.RequestQuit()
		return m, nil
	}
	m.keys.Press(k)
	return m, nil
}

// handleFrame runs one loop iteration and schedules the next.
func (m *Model) handleFrame() (tea.Model, tea.Cmd) {
	quit, err := loop.Iterate(m.sched, m.keys, m.render)
	m.frames++
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.logger.Info("quit requested", "frames", m.frames, "ticks", m.sched.Ticks())
		m.quitting = true
		return m, tea.Quit
	}
	return m, frameCmd(m.opts.FrameInterval)
}

func (m *Model) render() error {
	return pong.Draw(m.surface, m.game.State(), m.opts.Palette)
}

func (m *Model) present(s *core.Screen) error {
	m.frame = RenderScreen(s)
	return nil
}

// View renders the last presented frame and the status line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	score := ""
	if m.opts.ShowScore {
		score = ScoreLine(m.game.State())
	}
	return m.frame + "\n" + statusLine(score, m.help.View(m.keymap))
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Frames returns the number of loop iterations run.
func (m *Model) Frames() uint64 {
	return m.frames
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game *pong.Game, keys *KeyState, opts Options) error {
	model := NewModel(game, keys, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run program: %w", err)
	}
	return model.Err()
}
