package pong

import (
	"fmt"

	"github.com/vovakirdan/autopong/internal/core"
)

// Palette holds the fill colors of a render pass.
type Palette struct {
	Paddle core.Color
	Ball   core.Color
}

// DefaultPalette draws white paddles and a cyan ball.
func DefaultPalette() Palette {
	return Palette{
		Paddle: core.ColorWhite,
		Ball:   core.ColorCyan,
	}
}

// Draw runs one render pass: clear, left paddle, right paddle, ball, present.
func Draw(dst core.Surface, s *State, pal Palette) error {
	dst.Clear()
	dst.FillRect(s.Left.Rect, pal.Paddle)
	dst.FillRect(s.Right.Rect, pal.Paddle)
	dst.FillRect(s.Ball.Rect, pal.Ball)
	if err := dst.Present(); err != nil {
		return fmt.Errorf("pong: present frame: %w", err)
	}
	return nil
}
