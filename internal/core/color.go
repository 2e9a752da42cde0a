package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
)
