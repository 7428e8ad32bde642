// Package config provides YAML-based configuration loading for the
// presentation layer: controllers, display and logging. Table rules are
// compile-time constants in package pong and are not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/pong"
)

// Config is the root configuration document.
type Config struct {
	Controllers ControllersConfig `yaml:"controllers"`
	Display     DisplayConfig     `yaml:"display"`
	Log         LogConfig         `yaml:"log"`
}

// ControllersConfig names the controller driving each paddle.
type ControllersConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// DisplayConfig controls the terminal shim.
type DisplayConfig struct {
	FrameRate int          `yaml:"frame_rate"`  // Render passes per second
	KeyHoldMS int          `yaml:"key_hold_ms"` // Key press counts as held for this long
	ShowScore bool         `yaml:"show_score"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds color names as accepted by core.ParseColor.
type ColorsConfig struct {
	Paddle string `yaml:"paddle"`
	Ball   string `yaml:"ball"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means the command's default sink
}

// FrameInterval returns the time between render passes.
func (d DisplayConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.FrameRate)
}

// KeyHold returns how long a key press counts as held.
func (d DisplayConfig) KeyHold() time.Duration {
	return time.Duration(d.KeyHoldMS) * time.Millisecond
}

// Palette resolves the configured colors.
func (c Config) Palette() (pong.Palette, error) {
	paddle, err := core.ParseColor(c.Display.Colors.Paddle)
	if err != nil {
		return pong.Palette{}, fmt.Errorf("config: display.colors.paddle: %w", err)
	}
	ball, err := core.ParseColor(c.Display.Colors.Ball)
	if err != nil {
		return pong.Palette{}, fmt.Errorf("config: display.colors.ball: %w", err)
	}
	return pong.Palette{Paddle: paddle, Ball: ball}, nil
}

// Validate checks value ranges. Controller names are checked against the
// registry by the caller.
func (c Config) Validate() error {
	var errs []error
	if c.Controllers.Left == "" {
		errs = append(errs, errors.New("controllers.left is empty"))
	}
	if c.Controllers.Right == "" {
		errs = append(errs, errors.New("controllers.right is empty"))
	}
	if c.Display.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("display.frame_rate must be positive, got %d", c.Display.FrameRate))
	}
	if c.Display.KeyHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("display.key_hold_ms must be positive, got %d", c.Display.KeyHoldMS))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
