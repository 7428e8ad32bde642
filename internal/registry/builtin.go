package registry

import (
	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/pong"
)

func init() {
	Register("autopilot", "tracks the predicted bounce point of the ball", func(core.KeyReader) pong.Controller {
		return pong.Autopilot{}
	})
	Register("keyboard", "moves with the up and down keys", func(keys core.KeyReader) pong.Controller {
		return pong.Keyboard{Keys: keys}
	})
	Register("idle", "never moves", func(core.KeyReader) pong.Controller {
		return pong.Idle{}
	})
}
