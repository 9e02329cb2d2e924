package lineio

import (
	"errors"
	"io"
)

// ErrIO classifies failures to open, read, write or close the
// underlying storage. The underlying error stays reachable through
// errors.Is and errors.As.
var ErrIO = errors.New("i/o failure")

// ErrEndOfInput is returned by Reader.ReadLine when no further line is
// available. It is io.EOF, so either name can be compared against.
var ErrEndOfInput = io.EOF
