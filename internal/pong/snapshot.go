package pong

// Snapshot is a flat copy of the game for summaries and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Resets     int
	LeftX      int
	LeftY      int
	RightX     int
	RightY     int
	LeftScore  int
	RightScore int
	BallX      int
	BallY      int
	BallVX     int
	BallVY     int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:       g.tickCount,
		Resets:     g.resets,
		LeftX:      s.Left.Pos.X,
		LeftY:      s.Left.Pos.Y,
		RightX:     s.Right.Pos.X,
		RightY:     s.Right.Pos.Y,
		LeftScore:  s.Left.Score,
		RightScore: s.Right.Score,
		BallX:      s.Ball.Pos.X,
		BallY:      s.Ball.Pos.Y,
		BallVX:     s.Ball.Vel.X,
		BallVY:     s.Ball.Vel.Y,
	}
}

// Hash folds the snapshot into a single value for quick comparison.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Resets,
		snap.LeftX, snap.LeftY, snap.RightX, snap.RightY,
		snap.LeftScore, snap.RightScore,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
