package common

// ANSI color codes used by the terminal renderers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// TeamColors defines the color scheme for each team
var TeamColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

// NeutralColor is used for sea and unclaimed land
const NeutralColor = ColorGray

// TeamColor returns the color of team. Teams beyond the palette are white.
func TeamColor(team int) string {
	if team < 0 || team >= len(TeamColors) {
		return ColorWhite
	}
	return TeamColors[team]
}

// Colorize wraps s in color and a trailing reset
func Colorize(color, s string) string {
	return color + s + ColorReset
}
