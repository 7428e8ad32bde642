package pong

import (
	"github.com/vovakirdan/autopong/internal/core"
)

// Integrate advances the ball by one tick of velocity.
func Integrate(b *Ball) {
	b.Pos = b.Pos.Add(b.Vel)
	b.Sync()
}

// KeepInBounds clamps the ball center to the table's vertical extent and
// reflects its vertical velocity when it was outside. Horizontal exits are
// left alone: they are scoring events, handled by Evaluate.
func KeepInBounds(b *Ball) {
	if b.Pos.Y < 0 || b.Pos.Y > WindowHeight {
		b.Pos.Y = core.Clamp(b.Pos.Y, 0, WindowHeight)
		b.Vel.Y = -b.Vel.Y
	}
	b.Sync()
}

// Penetration returns the signed offsets that would separate the ball from the
// paddle along each axis, picking the smaller-magnitude direction per axis.
// Ties pick the right/bottom offsets.
func Penetration(ball, paddle core.Rect) (xOffset, yOffset int) {
	left := paddle.Right() - ball.X
	right := paddle.X - ball.Right()
	top := paddle.Bottom() - ball.Y
	bottom := paddle.Y - ball.Bottom()

	xOffset = right
	if core.Abs(left) < core.Abs(right) {
		xOffset = left
	}
	yOffset = bottom
	if core.Abs(top) < core.Abs(bottom) {
		yOffset = top
	}
	return xOffset, yOffset
}

// Collide pushes the ball out of the paddle along the axis of least
// penetration and reflects the matching velocity component. Boxes that merely
// touch count as colliding. The paddle is never moved.
// Returns false, leaving the ball untouched, when the boxes are apart.
func Collide(b *Ball, p *Paddle) bool {
	if !b.Rect.Touches(p.Rect) {
		return false
	}

	xOffset, yOffset := Penetration(b.Rect, p.Rect)
	if core.Abs(xOffset) < core.Abs(yOffset) {
		b.Pos.X += xOffset
		b.Vel.X = -b.Vel.X
	} else {
		// The extra unit keeps the ball from re-entering the paddle next tick.
		b.Pos.Y += yOffset + core.Sign(yOffset)
		b.Vel.Y = -b.Vel.Y
	}
	b.Sync()
	return true
}

// UpdateBall runs the ball part of a tick: integration, vertical bounds and
// collision against both paddles, in that order.
func UpdateBall(s *State) {
	Integrate(&s.Ball)
	KeepInBounds(&s.Ball)
	Collide(&s.Ball, &s.Left)
	Collide(&s.Ball, &s.Right)
}
