package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette available to the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Dim returns the darker variant of c, used for fading entities.
// Colors without a darker variant fade to gray.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	case ColorDefault:
		return ColorDefault
	default:
		return ColorGray
	}
}

// Fade picks a color for an entity at the given opacity: full color
// above 0.66, dimmed above 0.33, gray below.
func (c Color) Fade(alpha float64) Color {
	switch {
	case alpha > 0.66:
		return c
	case alpha > 0.33:
		return c.Dim()
	default:
		return ColorGray
	}
}
