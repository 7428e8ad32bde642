package pong

import (
	"github.com/vovakirdan/autopong/internal/core"
)

// Controller decides a paddle's movement for one tick.
// It may only change the paddle's Pos; the tick re-derives Rect afterwards.
type Controller interface {
	Control(p *Paddle, b Ball)
}

// Autopilot tracks the predicted bounce point. It is the default for both sides.
type Autopilot struct{}

// Control implements Controller.
func (Autopilot) Control(p *Paddle, b Ball) {
	Automate(p, b)
}

// Keyboard moves the paddle with the up/down keys of a KeyReader.
type Keyboard struct {
	Keys core.KeyReader
}

// Control implements Controller.
func (k Keyboard) Control(p *Paddle, _ Ball) {
	ControlPaddle(p, k.Keys)
}

// Idle never moves the paddle.
type Idle struct{}

// Control implements Controller.
func (Idle) Control(*Paddle, Ball) {}

// ControlPaddle applies held arrow keys to the paddle. Both keys held cancel
// out. A nil reader behaves as core.NoKeys.
func ControlPaddle(p *Paddle, keys core.KeyReader) {
	if keys == nil {
		keys = core.NoKeys{}
	}
	if keys.KeyDown(core.KeyUp) {
		p.Pos.Y -= PaddleSpeed
	}
	if keys.KeyDown(core.KeyDown) {
		p.Pos.Y += PaddleSpeed
	}
}
