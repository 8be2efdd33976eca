package adt

import "math/rand/v2"

// Range returns a pseudo-random float64 in [lo, hi).
func Range(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// RangeInt returns a pseudo-random int in [lo, hi]. It panics if hi < lo.
func RangeInt(lo, hi int) int {
	if hi < lo {
		panic("adt: RangeInt called with hi < lo")
	}

	span := uint64(uint(hi-lo)) + 1
	if span == 0 {
		// [lo, hi] covers every int64
		return lo + int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span))
}
