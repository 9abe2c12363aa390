package core

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes ("1".."255") or hex strings ("#4a90e2"),
// so the platform can hand them to the terminal renderer unchanged.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault       Color = ""
	ColorRed           Color = "1"
	ColorGreen         Color = "2"
	ColorYellow        Color = "3"
	ColorBlue          Color = "4"
	ColorMagenta       Color = "5"
	ColorCyan          Color = "6"
	ColorWhite         Color = "7"
	ColorBrightRed     Color = "9"
	ColorBrightYellow  Color = "11"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
	ColorOrange        Color = "208"
	ColorGray          Color = "245"
)
