package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bulga138/lined/buffer"
)

// scratchBase is the initial size of the per-line scratch buffer.
const scratchBase = 128

// Reader produces one line at a time from a byte stream.
type Reader struct {
	rd      io.ByteReader
	scratch []byte
}

// NewReader returns a Reader over r. If r already implements
// io.ByteReader it is used directly, otherwise it is buffered.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{rd: br}
}

// ReadLine returns the next line without its '\n'.
//
// A final run of bytes with no newline is still returned as a line; the
// call after it reports io.EOF. io.EOF with an empty string means no
// byte was read at all, which is distinct from ("", nil), an empty line.
// Other read errors are wrapped in ErrIO and discard the partial line.
func (r *Reader) ReadLine() (string, error) {
	n := 0
	for {
		c, err := r.rd.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return "", io.EOF
				}
				return string(r.scratch[:n]), nil
			}
			return "", fmt.Errorf("%w: read: %w", ErrIO, err)
		}
		if c == '\n' {
			return string(r.scratch[:n]), nil
		}
		if n+1 > len(r.scratch) {
			r.grow(n + 1)
		}
		r.scratch[n] = c
		n++
	}
}

// grow doubles the scratch buffer until it holds need bytes.
func (r *Reader) grow(need int) {
	next := buffer.MakeBytes(buffer.GrowCap(len(r.scratch), need, scratchBase))
	copy(next, r.scratch)
	r.scratch = next
}
