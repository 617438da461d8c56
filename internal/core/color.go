package core

// Color is a terminal palette entry for a cell's foreground or background.
// ColorDefault leaves the terminal's own color untouched.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
)

// Palette lists every non-default color, in declaration order.
func Palette() []Color {
	out := make([]Color, 0, int(ColorOrange))
	for c := ColorBlack; c <= ColorOrange; c++ {
		out = append(out, c)
	}
	return out
}
