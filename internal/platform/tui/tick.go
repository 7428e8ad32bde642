// Package tui provides the Bubble Tea integration for autopong.
// It owns the terminal: key events feed a KeyState, frame messages drive one
// loop iteration each, and the cell buffer is styled with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one outer-loop iteration.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
