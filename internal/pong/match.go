package pong

// State is the whole simulation: exactly one paddle per side slot and one ball.
// The scheduler's Game owns it; tick functions mutate it through a pointer.
type State struct {
	Left  Paddle
	Right Paddle
	Ball  Ball
}

// NewState creates a fresh match with both scores at zero.
func NewState() State {
	return State{
		Left:  NewPaddle(SideLeft, 0),
		Right: NewPaddle(SideRight, 0),
		Ball:  NewBall(),
	}
}

// ScoreEvent describes a ball leaving the table.
type ScoreEvent struct {
	Exit       Side // Edge the ball crossed
	LeftScore  int  // Left slot score after crediting
	RightScore int  // Right slot score after crediting
	Credited   int  // Number of paddles that scored
}

// ExitSide reports whether the ball box has fully left the table and through
// which edge.
func ExitSide(b Ball) (Side, bool) {
	switch {
	case b.Rect.Right() < 0:
		return SideLeft, true
	case b.Rect.X > WindowWidth:
		return SideRight, true
	}
	return 0, false
}

// Evaluate checks for a scoring exit. On exit it credits every paddle whose
// Side matches the exit edge, then resets the table. Sides are checked per
// paddle, so two paddles sharing a side both score.
func Evaluate(s *State) (ScoreEvent, bool) {
	exit, ok := ExitSide(s.Ball)
	if !ok {
		return ScoreEvent{}, false
	}

	ev := ScoreEvent{Exit: exit}
	for _, p := range []*Paddle{&s.Left, &s.Right} {
		if p.Side == exit {
			p.Score++
			ev.Credited++
		}
	}

	Reset(s)
	ev.LeftScore = s.Left.Score
	ev.RightScore = s.Right.Score
	return ev, true
}

// Reset puts both paddles back home, keeping their side and score, and serves
// a fresh ball.
func Reset(s *State) {
	s.Left = NewPaddle(s.Left.Side, s.Left.Score)
	s.Right = NewPaddle(s.Right.Side, s.Right.Score)
	s.Ball = NewBall()
}
