package core

// ScreenSurface adapts a Screen to the Surface contract, scaling world
// coordinates (pixels) down to cells. Rectangles always cover at least one cell
// when any part of them is on screen.
type ScreenSurface struct {
	Screen *Screen
	WorldW int
	WorldH int
	Fill   rune

	// OnPresent receives the finished frame. Nil means Present does nothing.
	OnPresent func(*Screen) error
}

// NewScreenSurface creates a surface mapping a worldW x worldH space onto dst.
func NewScreenSurface(dst *Screen, worldW, worldH int) *ScreenSurface {
	return &ScreenSurface{
		Screen: dst,
		WorldW: worldW,
		WorldH: worldH,
		Fill:   '█',
	}
}

// Clear implements Surface.
func (s *ScreenSurface) Clear() {
	s.Screen.Clear()
}

// FillRect implements Surface.
func (s *ScreenSurface) FillRect(r Rect, c Color) {
	s.Screen.DrawRect(s.ToCells(r), s.Fill, c)
}

// Present implements Surface.
func (s *ScreenSurface) Present() error {
	if s.OnPresent == nil {
		return nil
	}
	return s.OnPresent(s.Screen)
}

// ToCells maps a world rectangle to the cells it covers.
func (s *ScreenSurface) ToCells(r Rect) Rect {
	x0 := floorDiv(r.X*s.Screen.Width(), s.WorldW)
	y0 := floorDiv(r.Y*s.Screen.Height(), s.WorldH)
	x1 := ceilDiv(r.Right()*s.Screen.Width(), s.WorldW)
	y1 := ceilDiv(r.Bottom()*s.Screen.Height(), s.WorldH)
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity. b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
