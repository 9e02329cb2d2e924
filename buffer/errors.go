package buffer

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (or reported) by buffer operations.
var (
	// ErrOutOfRange is returned when an index falls outside the range
	// accepted by the requested operation. The buffer is left unchanged.
	ErrOutOfRange = errors.New("index out of range")

	// ErrAllocation is reported to Fatal when the slot array cannot grow.
	ErrAllocation = errors.New("allocation failure")
)

// RangeError describes a rejected index.
type RangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds (size %d)", e.Op, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, index, size int) error {
	return &RangeError{Op: op, Index: index, Size: size}
}
