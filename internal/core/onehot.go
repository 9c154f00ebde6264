package core

import (
	"fmt"
	"math/bits"
)

// IsOneHot reports whether sel has exactly one bit set.
func IsOneHot(sel uint64) bool {
	return bits.OnesCount64(sel) == 1
}

// SelectOneHot returns the candidate picked by a one-hot selector. Bit i of
// sel selects candidates[i]. An all-zero selector is defined to select the
// zero value of T (the Booth ZERO digit relies on this). A selector with more
// than one bit set, or with a bit beyond the candidate list, is rejected.
func SelectOneHot[T any](sel uint64, candidates []T) (T, error) {
	var zero T
	if sel == 0 {
		return zero, nil
	}
	if !IsOneHot(sel) {
		return zero, fmt.Errorf("selector %#x is not one-hot", sel)
	}
	idx := bits.TrailingZeros64(sel)
	if idx >= len(candidates) {
		return zero, fmt.Errorf("selector bit %d beyond %d candidates", idx, len(candidates))
	}
	return candidates[idx], nil
}
