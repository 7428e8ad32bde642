package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/autopong/internal/core"
)

func TestExitSide(t *testing.T) {
	tests := []struct {
		name     string
		ballX    int
		wantSide Side
		wantOK   bool
	}{
		{"centered", 512, 0, false},
		{"right edge touching zero", -10, 0, false},  // rect -20..0
		{"fully past left", -15, SideLeft, true},     // rect -25..-5
		{"one pixel past left", -11, SideLeft, true}, // rect -21..-1
		{"left edge on window width", 1034, 0, false},
		{"fully past right", 1035, SideRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, ok := ExitSide(ballAt(core.V(tc.ballX, 384), core.V(-10, -10)))
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantSide, side)
			}
		})
	}
}

func TestEvaluateLeftExitScoresLeftAndResets(t *testing.T) {
	s := NewState()
	s.Left.Score = 2
	s.Right.Score = 4
	s.Left.Pos = core.V(20, 100)
	s.Left.Sync()
	s.Ball = ballAt(core.V(-15, 50), core.V(-10, 10))
	require.Equal(t, -25, s.Ball.Rect.X)

	ev, scored := Evaluate(&s)

	require.True(t, scored)
	assert.Equal(t, SideLeft, ev.Exit)
	assert.Equal(t, 1, ev.Credited)
	assert.Equal(t, 3, ev.LeftScore)
	assert.Equal(t, 4, ev.RightScore)

	assert.Equal(t, NewBall(), s.Ball)
	assert.Equal(t, NewPaddle(SideLeft, 3), s.Left)
	assert.Equal(t, NewPaddle(SideRight, 4), s.Right)
}

func TestEvaluateRightExitScoresRight(t *testing.T) {
	s := NewState()
	s.Ball = ballAt(core.V(1040, 384), core.V(10, 10))

	ev, scored := Evaluate(&s)

	require.True(t, scored)
	assert.Equal(t, SideRight, ev.Exit)
	assert.Equal(t, 0, s.Left.Score)
	assert.Equal(t, 1, s.Right.Score)
}

func TestEvaluateInPlayIsNoop(t *testing.T) {
	s := NewState()
	s.Ball = ballAt(core.V(3, 700), core.V(-10, 10))
	before := s

	_, scored := Evaluate(&s)

	assert.False(t, scored)
	assert.Equal(t, before, s)
}

// Scoring is decided per paddle by Side, so two paddles on the same side both score.
func TestEvaluateDuplicateSideScoresTwice(t *testing.T) {
	s := State{
		Left:  NewPaddle(SideLeft, 0),
		Right: NewPaddle(SideLeft, 5),
		Ball:  ballAt(core.V(-100, 384), core.V(-10, 0)),
	}

	ev, scored := Evaluate(&s)

	require.True(t, scored)
	assert.Equal(t, 2, ev.Credited)
	assert.Equal(t, 1, s.Left.Score)
	assert.Equal(t, 6, s.Right.Score)
	assert.Equal(t, SideLeft, s.Right.Side, "reset keeps each paddle's side")
	assert.Equal(t, HomePosition(SideLeft), s.Right.Pos)
}

func TestEvaluateExitWithoutMatchingSideStillResets(t *testing.T) {
	s := State{
		Left:  NewPaddle(SideRight, 1),
		Right: NewPaddle(SideRight, 1),
		Ball:  ballAt(core.V(-100, 384), core.V(-10, 0)),
	}

	ev, scored := Evaluate(&s)

	require.True(t, scored)
	assert.Equal(t, 0, ev.Credited)
	assert.Equal(t, 1, s.Left.Score)
	assert.Equal(t, 1, s.Right.Score)
	assert.Equal(t, NewBall(), s.Ball)
}
