// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// FitWindow returns how many rows and columns of content fit in a terminal
// of the given size once reserved lines and columns are taken away, never
// exceeding the content size and never below 1.
func FitWindow(termWidth, termHeight, reservedRows, reservedCols, contentRows, contentCols int) (rows, cols int) {
	rows = min(termHeight-reservedRows, contentRows)
	cols = min(termWidth-reservedCols, contentCols)
	return max(rows, 1), max(cols, 1)
}
