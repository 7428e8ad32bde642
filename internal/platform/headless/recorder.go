package headless

import "github.com/vovakirdan/autopong/internal/core"

// Fill is one FillRect call.
type Fill struct {
	Rect  core.Rect
	Color core.Color
}

// Recorder implements core.Surface by recording fills per frame.
// Calls are forwarded to Next when it is set.
type Recorder struct {
	Next core.Surface

	frames  int
	current []Fill
	last    []Fill
}

// Clear implements core.Surface.
func (r *Recorder) Clear() {
	r.current = r.current[:0]
	if r.Next != nil {
		r.Next.Clear()
	}
}

// FillRect implements core.Surface.
func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.current = append(r.current, Fill{Rect: rect, Color: c})
	if r.Next != nil {
		r.Next.FillRect(rect, c)
	}
}

// Present implements core.Surface.
func (r *Recorder) Present() error {
	r.frames++
	r.last = append(r.last[:0], r.current...)
	if r.Next != nil {
		return r.Next.Present()
	}
	return nil
}

// Frames returns the number of presented frames.
func (r *Recorder) Frames() int {
	return r.frames
}

// LastFrame returns the fills of the most recently presented frame.
func (r *Recorder) LastFrame() []Fill {
	return append([]Fill(nil), r.last...)
}
