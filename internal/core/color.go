package core

// Color is the foreground color of a screen cell. Front ends map it to
// whatever their output supports (ANSI codes in the terminal).
type Color uint8

// Colors used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
