package core

// Frame is the per-tick context handed to the game by the frame driver.
// It carries the elapsed time, the key held for this frame (at most one),
// the draw surface, and a flag the game sets to ask the driver to exit.
type Frame struct {
	ElapsedMS float64 // Milliseconds since the previous frame
	Key       Key     // Current key, KeyNone if nothing was pressed
	Screen    *Screen // Draw surface for this frame
	Quitting  bool    // Set by the game to request termination
}

// NewFrame creates a frame context over the given screen.
func NewFrame(screen *Screen, elapsedMS float64, key Key) *Frame {
	return &Frame{
		ElapsedMS: elapsedMS,
		Key:       key,
		Screen:    screen,
	}
}

// HasKey reports whether the given key is held this frame.
func (f *Frame) HasKey(k Key) bool {
	return k != KeyNone && f.Key == k
}
