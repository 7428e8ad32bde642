// Package pong implements a two-paddle ball-bounce simulation driven by an
// autopilot on both sides. All distances are pixels and all velocities are
// pixels per tick; the simulation is integer-only apart from bounce prediction.
package pong

import "time"

// Table geometry and rules. These are fixed; there is no runtime rule surface.
const (
	WindowWidth  = 1024
	WindowHeight = 768

	PaddleWidth  = 20
	PaddleHeight = 200
	PaddleSpeed  = 5  // Max paddle travel per tick
	PaddleOffset = 20 // Paddle center distance from its screen edge

	BallRadius = 10
	BallSize   = BallRadius * 2

	BallSpeedX = -10
	BallSpeedY = -10
)

// TickDuration is one simulation step. 1000/60 is integer division, so a tick is 16ms.
const TickDuration = 1000 / 60 * time.Millisecond
