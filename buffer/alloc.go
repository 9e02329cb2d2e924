package buffer

import (
	"fmt"
	"log"
	"os"
)

// Fatal is the single exit path for allocation failures. The default
// logs the diagnostic and terminates the process.
var Fatal = func(err error) {
	log.Printf("fatal: %v", err)
	fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
	os.Exit(1)
}

// makeSlots allocates a slot array of length n. Every slot array the
// package creates goes through here.
func makeSlots(n int) (s []string) {
	if n < 0 {
		Fatal(fmt.Errorf("%w: cannot reserve %d slots", ErrAllocation, n))
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			Fatal(fmt.Errorf("%w: reserving %d slots: %v", ErrAllocation, n, r))
		}
	}()
	return make([]string, n)
}

// MakeBytes is makeSlots for byte scratch space, used by line readers
// that share the buffer's growth policy.
func MakeBytes(n int) (b []byte) {
	if n < 0 {
		Fatal(fmt.Errorf("%w: cannot reserve %d bytes", ErrAllocation, n))
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			b = nil
			Fatal(fmt.Errorf("%w: reserving %d bytes: %v", ErrAllocation, n, r))
		}
	}()
	return make([]byte, n)
}
