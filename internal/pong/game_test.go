package pong

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autopong/internal/core"
)

func TestGameFirstTick(t *testing.T) {
	g := New()

	ev, scored := g.Tick()

	assert.False(t, scored)
	assert.Equal(t, ScoreEvent{}, ev)
	s := g.State()
	assert.Equal(t, core.V(502, 374), s.Ball.Pos)
	assert.Equal(t, core.V(-10, -10), s.Ball.Vel)
	assert.Equal(t, uint64(1), g.Ticks())

	// Ball heads left: the left paddle chases, the right one holds.
	assert.Equal(t, core.V(20, 379), s.Left.Pos)
	assert.Equal(t, PaddleRect(s.Left.Pos), s.Left.Rect)
	assert.Equal(t, HomePosition(SideRight), s.Right.Pos)
}

func TestGameIdlePaddlesMissOnLeft(t *testing.T) {
	g := New(WithControllers(Idle{}, Idle{}))

	var (
		ev     ScoreEvent
		scored bool
	)
	for !scored && g.Ticks() < 1000 {
		ev, scored = g.Tick()
	}

	require.True(t, scored)
	// 38 ticks up to the top wall, bounce, then out past x = 0 on tick 53.
	assert.Equal(t, uint64(53), g.Ticks())
	assert.Equal(t, SideLeft, ev.Exit)
	assert.Equal(t, 1, ev.LeftScore)
	assert.Equal(t, 0, ev.RightScore)
	assert.Equal(t, NewBall(), g.State().Ball)
}

func TestGameDerivedBoxesStayInSync(t *testing.T) {
	g := New()
	for i := 0; i < 5000; i++ {
		g.Tick()
		s := g.State()
		require.Equal(t, PaddleRect(s.Left.Pos), s.Left.Rect, "tick %d", i)
		require.Equal(t, PaddleRect(s.Right.Pos), s.Right.Rect, "tick %d", i)
		require.Equal(t, BallRect(s.Ball.Pos), s.Ball.Rect, "tick %d", i)
		require.GreaterOrEqual(t, s.Left.Score, 0)
		require.GreaterOrEqual(t, s.Right.Score, 0)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		for i := 0; i < 3000; i++ {
			g.Tick()
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	assert.Equal(t, snap1, snap2)
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, uint64(3000), snap1.Tick)
}

type heldKeys map[core.Key]bool

func (h heldKeys) KeyDown(k core.Key) bool { return h[k] }

func TestGameKeyboardController(t *testing.T) {
	keys := heldKeys{core.KeyDown: true}
	g := New(WithControllers(Keyboard{Keys: keys}, nil))

	g.Tick()
	g.Tick()
	assert.Equal(t, core.V(20, 394), g.State().Left.Pos)

	keys[core.KeyDown] = false
	keys[core.KeyUp] = true
	g.Tick()
	assert.Equal(t, core.V(20, 389), g.State().Left.Pos)

	keys[core.KeyDown] = true
	g.Tick()
	assert.Equal(t, core.V(20, 389), g.State().Left.Pos, "both keys cancel out")
}

func TestControlPaddleNilKeys(t *testing.T) {
	p := NewPaddle(SideLeft, 0)
	ControlPaddle(&p, nil)
	assert.Equal(t, NewPaddle(SideLeft, 0), p)
}

func TestGameLogsScoring(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	g := New(WithControllers(Idle{}, Idle{}), WithLogger(logger))

	for i := 0; i < 53; i++ {
		g.Tick()
	}

	assert.Contains(t, buf.String(), "point scored")
	assert.Contains(t, buf.String(), "exit=left")
}

func TestGameWithState(t *testing.T) {
	s := NewState()
	s.Left.Score = 9
	g := New(WithState(s))
	assert.Equal(t, 9, g.State().Left.Score)
}

type call struct {
	op    string
	rect  core.Rect
	color core.Color
}

type recordingSurface struct {
	calls      []call
	presentErr error
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, call{op: "clear"}) }

func (r *recordingSurface) FillRect(rect core.Rect, c core.Color) {
	r.calls = append(r.calls, call{op: "fill", rect: rect, color: c})
}

func (r *recordingSurface) Present() error {
	r.calls = append(r.calls, call{op: "present"})
	return r.presentErr
}

func TestDrawOrder(t *testing.T) {
	s := NewState()
	surf := &recordingSurface{}

	require.NoError(t, Draw(surf, &s, DefaultPalette()))

	want := []call{
		{op: "clear"},
		{op: "fill", rect: s.Left.Rect, color: core.ColorWhite},
		{op: "fill", rect: s.Right.Rect, color: core.ColorWhite},
		{op: "fill", rect: s.Ball.Rect, color: core.ColorCyan},
		{op: "present"},
	}
	assert.Equal(t, want, surf.calls)
}

func TestDrawPresentError(t *testing.T) {
	s := NewState()
	boom := errors.New("boom")
	err := Draw(&recordingSurface{presentErr: boom}, &s, DefaultPalette())
	assert.ErrorIs(t, err, boom)
}
