package pong

import (
	"math"

	"github.com/vovakirdan/autopong/internal/core"
)

// slopeEpsilon stands in for a zero horizontal velocity when computing the
// trajectory slope. The result keeps the sign of vy with a huge magnitude.
const slopeEpsilon = 1e-8

// PredictBounce extrapolates the ball's straight-line path to the wall it is
// heading for (x = WindowWidth when moving right, x = 0 otherwise) and returns
// where it arrives. The rise is exact integer arithmetic truncated toward
// zero; only a zero vx goes through the epsilon slope. A y outside the table
// is folded once across the violated boundary to approximate wall bounces.
// Paddles on the way are not considered.
func PredictBounce(pos, vel core.Vec2i) core.Vec2i {
	var target core.Vec2i
	if vel.X > 0 {
		target.X = WindowWidth
	}

	if vel.X != 0 {
		target.Y = pos.Y + vel.Y*(target.X-pos.X)/vel.X
	} else {
		slope := float64(vel.Y) / slopeEpsilon
		target.Y = pos.Y + truncate(slope*float64(target.X-pos.X))
	}

	switch {
	case target.Y > WindowHeight:
		target.Y = WindowHeight - (target.Y - WindowHeight)
	case target.Y < 0:
		target.Y = -target.Y
	}
	return target
}

// truncate converts toward zero, saturating at the int32 range so the
// epsilon slope cannot overflow the conversion.
func truncate(f float64) int {
	f = math.Max(math.MinInt32, math.Min(math.MaxInt32, f))
	return int(f)
}

// TrackTarget picks where a paddle should head: the predicted bounce height
// when the ball travels toward the paddle's side, otherwise its own position.
func TrackTarget(p Paddle, b Ball) core.Vec2i {
	approaching := (b.Vel.X > 0 && p.Side == SideRight) ||
		(b.Vel.X < 0 && p.Side == SideLeft)
	if !approaching {
		return p.Pos
	}
	return core.V(p.Pos.X, PredictBounce(b.Pos, b.Vel).Y)
}

// MoveToward steps pos toward target by speed along one axis at a time.
// X is corrected first while it is more than speed away, then Y. Positions
// within speed of the target on both axes do not move.
func MoveToward(pos, target core.Vec2i, speed int) core.Vec2i {
	dirX, dirY := -1, -1
	if pos.X < target.X {
		dirX = 1
	}
	if pos.Y < target.Y {
		dirY = 1
	}

	farX := pos.X-speed > target.X || pos.X+speed < target.X
	farY := pos.Y-speed > target.Y || pos.Y+speed < target.Y

	switch {
	case farX:
		pos.X += speed * dirX
	case farY:
		pos.Y += speed * dirY
	case farX || farY:
		// Diagonal step; the two cases above already cover each axis.
		pos.X += speed * dirX
		pos.Y += speed * dirY
	}
	return pos
}

// Automate moves the paddle one step toward its tracking target.
func Automate(p *Paddle, b Ball) {
	p.Pos = MoveToward(p.Pos, TrackTarget(*p, b), PaddleSpeed)
}
