package core

// Color is a cell color. The platform maps each value to a terminal color;
// ColorDefault leaves the terminal's own color in place.
type Color uint8

// The palette of the game: menus print white on the default background,
// the playfield is navy, the dragon yellow on black and walls red on black.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorWhite
	ColorNavy
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorNavy:
		return "navy"
	default:
		return "unknown"
	}
}
