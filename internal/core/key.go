package core

// Key is the small enumerated key set the game understands.
// The platform maps physical key presses to these values.
type Key int

const (
	KeyNone Key = iota
	KeyPlay     // P - start or restart a run
	KeyQuit     // Q - leave the game from a menu screen
	KeyFlap     // Space - flap while playing
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyPlay:
		return "Play"
	case KeyQuit:
		return "Quit"
	case KeyFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}
