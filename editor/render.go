package editor

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

const minGutterWidth = 4

// printAllLines lists the buffer with right-aligned 1-based numbers.
// With a positive ListWidth, lines are cut to fit the display.
func (e *Editor) printAllLines() {
	n := e.buffer.Len()
	gutter := max(minGutterWidth, len(strconv.Itoa(n)))
	textWidth := 0
	if e.config.ListWidth > 0 {
		textWidth = max(e.config.ListWidth-gutter-2, 1)
	}

	e.printf("---- Buffer: %d line(s) ----\n", n)
	for i, line := range e.buffer.All() {
		if textWidth > 0 && runewidth.StringWidth(line) > textWidth {
			line = runewidth.Truncate(line, textWidth, "…")
		}
		e.printf("%*d: %s\n", gutter, i+1, line)
	}
	e.printf("---- end ----\n")
}
