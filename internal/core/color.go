package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Platforms map it to whatever their renderer understands.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorCyan
	ColorGreen
	ColorYellow
	ColorRed
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorWhite:   "white",
	ColorCyan:    "cyan",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorRed:     "red",
	ColorGray:    "gray",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a color by name, case-insensitively.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
