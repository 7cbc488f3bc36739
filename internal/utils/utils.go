package utils

import "math/bits"

// RoundUp2 - Returns the smallest power of 2 that is equal to or larger than a, a below 1 gives 1
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	return 1 << bits.Len64(uint64(a-1))
}
