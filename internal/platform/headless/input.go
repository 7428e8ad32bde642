// Package headless runs the simulation without a terminal: a stepping clock
// stands in for wall time, scripted input decides when to stop and which keys
// are held, and a recorder captures what each render pass drew.
package headless

import (
	"slices"

	"github.com/vovakirdan/autopong/internal/core"
)

// ScriptedInput implements core.Input from a fixed script.
// Frames are counted by QuitRequested polls, starting at 1.
type ScriptedInput struct {
	// QuitAfter makes the given poll request quit. Zero or less never quits.
	QuitAfter int
	// Held lists the keys held during each frame.
	Held map[int][]core.Key

	polls int
}

// QuitRequested implements core.Input and advances the script by one frame.
func (s *ScriptedInput) QuitRequested() bool {
	s.polls++
	return s.QuitAfter > 0 && s.polls >= s.QuitAfter
}

// KeyDown implements core.KeyReader for the current frame.
func (s *ScriptedInput) KeyDown(k core.Key) bool {
	return slices.Contains(s.Held[s.polls], k)
}

// Frame returns the current frame number.
func (s *ScriptedInput) Frame() int {
	return s.polls
}
