package config

import (
	_ "embed"
)

//go:embed defaults/autopong.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/autopong.yaml.
func Default() Config {
	return Config{
		Controllers: ControllersConfig{
			Left:  "autopilot",
			Right: "autopilot",
		},
		Display: DisplayConfig{
			FrameRate: 60,
			KeyHoldMS: 120,
			ShowScore: true,
			Colors: ColorsConfig{
				Paddle: "white",
				Ball:   "cyan",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
