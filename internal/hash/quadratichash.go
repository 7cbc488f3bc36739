package hash

import (
	"github.com/wadetb/hashtable/hashfunc"
	"github.com/wadetb/hashtable/internal/utils"
)

// QuadraticProbingHashAlgorithm - Slot selection using start = sum32(key) & (tableSize - 1) and then stepping by the
// triangular numbers 0, 1, 3, 6, 10... from the start slot. The table size is rounded up to the nearest power of 2,
// which makes the triangular steps visit every slot exactly once.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
	sum32     hashfunc.Sum32
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
// If sum32 is nil the FNV-1 (zero seed) hash function is used.
func NewQuadraticProbingHashAlgorithm(tableSize int64, sum32 hashfunc.Sum32) *QuadraticProbingHashAlgorithm {
	if sum32 == nil {
		sum32 = hashfunc.FNV1
	}

	ha := &QuadraticProbingHashAlgorithm{sum32: sum32}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates the start slot between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(uint64(Q.sum32(key)) & uint64(Q.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	// Only the low bits of iteration * (iteration + 1) / 2 matter, so wrapping multiplication is fine
	i := uint64(iteration)
	var step uint64
	if i%2 == 0 {
		step = (i / 2) * (i + 1)
	} else {
		step = i * ((i + 1) / 2)
	}

	return int64((uint64(hf1Value) + step) & uint64(Q.tableSize-1))
}
