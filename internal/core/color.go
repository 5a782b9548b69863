package core

// Color is a foreground color for a screen cell, chosen from the 16 ANSI
// colors plus a few 256-color extras. The platform maps it to terminal codes.
type Color uint8

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
	colorCount
)

// Role colors shared by the simulation and the renderer.
const (
	ColorActor      = ColorBlue
	ColorAdversary  = ColorBrightBlue
	ColorProjectile = ColorRed
	ColorWall       = ColorGray
)

var colorNames = [colorCount]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

// String returns the color's lowercase name.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}
