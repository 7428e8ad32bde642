package pong

import (
	"github.com/vovakirdan/autopong/internal/core"
)

// Side is the screen edge a paddle defends. It also decides which exit scores for it.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a solid rectangle moved by a Controller.
// Rect is always PaddleRect(Pos); call Sync after changing Pos.
type Paddle struct {
	Rect  core.Rect
	Pos   core.Vec2i // Center point
	Side  Side
	Score int
}

// Ball is the single moving body.
// Rect is always BallRect(Pos); call Sync after changing Pos.
type Ball struct {
	Rect core.Rect
	Pos  core.Vec2i // Center point
	Vel  core.Vec2i // Pixels per tick
}

// PaddleRect derives a paddle bounding box from its center.
func PaddleRect(center core.Vec2i) core.Rect {
	return core.CenteredRect(center, PaddleWidth, PaddleHeight)
}

// BallRect derives a ball bounding box from its center.
func BallRect(center core.Vec2i) core.Rect {
	return core.CenteredRect(center, BallSize, BallSize)
}

// HomePosition is where a paddle on the given side spawns.
func HomePosition(side Side) core.Vec2i {
	x := PaddleOffset
	if side == SideRight {
		x = WindowWidth - PaddleOffset
	}
	return core.V(x, WindowHeight/2)
}

// NewPaddle creates a paddle at its home position carrying the given score.
func NewPaddle(side Side, score int) Paddle {
	p := Paddle{
		Pos:   HomePosition(side),
		Side:  side,
		Score: score,
	}
	p.Sync()
	return p
}

// NewBall creates a ball at the center of the table moving up and to the left.
func NewBall() Ball {
	b := Ball{
		Pos: core.V(WindowWidth/2, WindowHeight/2),
		Vel: core.V(BallSpeedX, BallSpeedY),
	}
	b.Sync()
	return b
}

// Sync recomputes the bounding box from the center point.
func (p *Paddle) Sync() {
	p.Rect = PaddleRect(p.Pos)
}

// Sync recomputes the bounding box from the center point.
func (b *Ball) Sync() {
	b.Rect = BallRect(b.Pos)
}
