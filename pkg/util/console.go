package util

import (
	"os"

	"golang.org/x/term"
)

func IntMin(a, b int) int {
	if a > b {
		return b
	}
	return a
}

// GetConsoleWidth reports the width of the terminal attached to stdout, or 80.
func GetConsoleWidth() int {
	width := TerminalWidth(os.Stdout.Fd())
	if width <= 0 {
		width = 80
	}

	return width
}

// TerminalWidth returns the column count of fd, or 0 if fd isn't a terminal.
func TerminalWidth(fd uintptr) int {
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0
	}

	return width
}
