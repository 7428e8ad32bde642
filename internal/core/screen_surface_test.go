package core

import (
	"errors"
	"testing"
)

func TestScreenSurfaceToCells(t *testing.T) {
	s := NewScreenSurface(NewScreen(128, 48), 1024, 768) // 8px x 16px per cell

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"aligned", NewRect(0, 0, 16, 32), NewRect(0, 0, 2, 2)},
		{"left paddle", NewRect(10, 284, 20, 200), NewRect(1, 17, 3, 14)},
		{"ball", NewRect(502, 374, 20, 20), NewRect(62, 23, 4, 2)},
		{"tiny rect keeps one cell", NewRect(9, 17, 1, 1), NewRect(1, 1, 1, 1)},
		{"negative origin rounds down", NewRect(-25, -5, 20, 20), NewRect(-4, -1, 4, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ToCells(tc.in); got != tc.expected {
				t.Errorf("ToCells(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestScreenSurfaceFillAndPresent(t *testing.T) {
	scr := NewScreen(8, 6)
	s := NewScreenSurface(scr, 80, 60)

	var presented string
	s.OnPresent = func(dst *Screen) error {
		presented = dst.String()
		return nil
	}

	s.Clear()
	s.FillRect(NewRect(0, 0, 20, 10), ColorWhite)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}

	expected := "██      \n" +
		"        \n" +
		"        \n" +
		"        \n" +
		"        \n" +
		"        "
	if presented != expected {
		t.Errorf("presented frame = %q, expected %q", presented, expected)
	}
	if scr.GetCell(1, 0).Color != ColorWhite {
		t.Errorf("filled cell color = %v, expected white", scr.GetCell(1, 0).Color)
	}
}

func TestScreenSurfacePresentError(t *testing.T) {
	s := NewScreenSurface(NewScreen(2, 2), 2, 2)
	if err := s.Present(); err != nil {
		t.Errorf("Present() without hook = %v, expected nil", err)
	}

	boom := errors.New("boom")
	s.OnPresent = func(*Screen) error { return boom }
	if err := s.Present(); !errors.Is(err, boom) {
		t.Errorf("Present() = %v, expected %v", err, boom)
	}
}
