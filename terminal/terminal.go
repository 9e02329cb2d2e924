// Package terminal answers the two questions the line editor asks of
// its console: is a person typing, and how wide is the screen.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f.
func Width(f *os.File) (int, error) {
	return windowWidth(f)
}
