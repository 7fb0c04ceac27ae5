package kit

import (
	"math/rand/v2"
)

// RandomInt returns a uniformly distributed integer in [start, end]. The
// bounds are swapped if end < start. The range may span the whole int domain.
func RandomInt(start, end int) int {
	if end < start {
		start, end = end, start
	}
	// Unsigned arithmetic wraps, so the span is exact even when end-start
	// overflows int.
	span := uint64(end) - uint64(start)
	if span == ^uint64(0) {
		return int(rand.Uint64())
	}
	return int(uint64(start) + rand.Uint64N(span+1))
}
