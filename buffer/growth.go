package buffer

import "math"

// MinCapacity is the slot count used for an empty buffer and for
// hints that are not positive.
const MinCapacity = 4

// GrowCap returns the capacity that holds need elements, doubling from
// current (or from base when current is zero). If current already
// suffices it is returned unchanged. The result is -1 when doubling
// would overflow an int.
func GrowCap(current, need, base int) int {
	if need <= current {
		return current
	}
	if base <= 0 {
		base = MinCapacity
	}
	c := current
	if c <= 0 {
		c = base
	}
	for c < need {
		if c > math.MaxInt/2 {
			return -1
		}
		c *= 2
	}
	return c
}
