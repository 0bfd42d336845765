package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes through ANSI.
type Color uint8

// Predefined colors for board elements.
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

// ansiCodes is indexed by Color; ColorDefault has no code.
var ansiCodes = [...]string{
	ColorDefault:       "",
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
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
