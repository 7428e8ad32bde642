package core

// Key identifies a physical key the simulation may query.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow
	KeyDown     // Down arrow
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "None"
	}
}

// KeyReader reports whether a key is currently held.
type KeyReader interface {
	KeyDown(k Key) bool
}

// Input is the input half of the platform collaborator.
// QuitRequested is polled once per outer loop iteration.
type Input interface {
	KeyReader
	QuitRequested() bool
}

// NoKeys is a KeyReader with nothing held.
type NoKeys struct{}

// KeyDown always reports false.
func (NoKeys) KeyDown(Key) bool { return false }
