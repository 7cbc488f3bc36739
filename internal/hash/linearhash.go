package hash

import (
	"github.com/wadetb/hashtable/hashfunc"
)

// LinearProbingHashAlgorithm - Slot selection using start = sum32(key) mod tableSize and then stepping one slot
// at a time, wrapping at the end of the table. The table size is used as is, it is not rounded to a power of 2.
type LinearProbingHashAlgorithm struct {
	tableSize int64
	sum32     hashfunc.Sum32
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
// If sum32 is nil the FNV-1 (zero seed) hash function is used.
func NewLinearProbingHashAlgorithm(tableSize int64, sum32 hashfunc.Sum32) *LinearProbingHashAlgorithm {
	if sum32 == nil {
		sum32 = hashfunc.FNV1
	}

	ha := &LinearProbingHashAlgorithm{sum32: sum32}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates the start slot between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(uint64(L.sum32(key)) % uint64(L.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration%L.tableSize
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
