package core

import "time"

// RuntimeConfig is what the frame driver needs to run one game session.
type RuntimeConfig struct {
	ScreenW  int   // Console width in characters
	ScreenH  int   // Console height in characters
	TickRate int   // Frames per second; non-positive means DefaultTickRate
	Seed     int64 // Seed of the session's obstacle RNG
}

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// DefaultConfig returns the 80x50 console at the default frame rate.
// A zero Seed asks the platform to seed from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: DefaultTickRate,
	}
}

// FrameInterval returns the wall-clock time between two frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}
