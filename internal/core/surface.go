package core

// Surface is the drawing half of the platform collaborator.
// One render pass is Clear, any number of FillRect calls, then Present.
type Surface interface {
	Clear()
	FillRect(r Rect, c Color)
	Present() error
}
