package core

import "strconv"

// Color is the foreground color of a screen cell.
// The zero value leaves the terminal's default color in place.
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
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// ansiCodes holds the 256-color palette index for each Color.
var ansiCodes = [...]int{
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorBlue:         4,
	ColorMagenta:      5,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightRed:    9,
	ColorBrightYellow: 11,
	ColorBrightCyan:   14,
	ColorBrightWhite:  15,
	ColorGray:         245,
}

// ANSI returns the 256-color palette index as a string, or "" for the
// default color and unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
