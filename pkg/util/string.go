package util

import (
	"regexp"
)

var colorMarker = regexp.MustCompile("\x1b\\[([0-9;]*[A-Za-z])")

// RemoveColors strips CSI sequences (colors and cursor movement) from input.
func RemoveColors(input string) string {
	return colorMarker.ReplaceAllString(input, "")
}
