package core

// Color is a palette slot for a screen cell. The renderer maps each slot
// to a terminal color through the active theme.
type Color uint8

// Palette slots.
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
	ColorDarkGray

	colorCount
)

// Maze element colors.
const (
	ColorWall   = ColorGray
	ColorFloor  = ColorDarkGray
	ColorPlayer = ColorBrightYellow
	ColorPickup = ColorBrightMagenta
	ColorHazard = ColorBrightRed
	ColorFaded  = ColorDarkGray
	ColorGoal   = ColorBrightGreen
	ColorGate   = ColorCyan
)

// 256-color codes per slot; the default slot has none.
var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorDarkGray:      "238",
}

// Colors returns every palette slot in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the 256-color code of c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Gray maps c onto the grayscale slots, keeping bright colors bright.
func (c Color) Gray() Color {
	switch c {
	case ColorDefault, ColorGray, ColorDarkGray:
		return c
	case ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
		ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite, ColorOrange:
		return ColorBrightWhite
	default:
		return ColorWhite
	}
}
