package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorGreen
	ColorRed
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}
