package buffer

import (
	"io"
	"iter"
)

// Buffer is the read side of a line container, as consumed by
// serializers and listings.
type Buffer interface {
	// Len returns the number of live lines.
	Len() int

	// Get returns the line at index, 0-based.
	// Returns an error wrapping ErrOutOfRange outside [0, Len()).
	Get(index int) (string, error)

	// All enumerates the lines in document order without copying them.
	All() iter.Seq2[int, string]

	// WriteTo writes every line followed by a newline to w.
	// Returns the number of bytes written and any error encountered.
	WriteTo(w io.Writer) (int64, error)
}
