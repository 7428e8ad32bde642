package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/loop"
)

// KeyState implements core.Input on top of terminal key events.
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held for a short window after its last press.
type KeyState struct {
	mu    sync.Mutex
	clock loop.Clock
	hold  time.Duration
	last  map[core.Key]time.Time
	quit  bool
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(clock loop.Clock, hold time.Duration) *KeyState {
	return &KeyState{
		clock: clock,
		hold:  hold,
		last:  make(map[core.Key]time.Time),
	}
}

// Press records a key press. Pressing a direction releases the opposite one.
func (k *KeyState) Press(key core.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch key {
	case core.KeyUp:
		delete(k.last, core.KeyDown)
	case core.KeyDown:
		delete(k.last, core.KeyUp)
	case core.KeyNone:
		return
	}
	k.last[key] = k.clock.Now()
}

// RequestQuit makes the next QuitRequested poll return true.
func (k *KeyState) RequestQuit() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.quit = true
}

// KeyDown implements core.KeyReader.
func (k *KeyState) KeyDown(key core.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	at, ok := k.last[key]
	if !ok {
		return false
	}
	return k.clock.Now().Sub(at) < k.hold
}

// QuitRequested implements core.Input.
func (k *KeyState) QuitRequested() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}
