//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"github.com/wadetb/hashtable/hashfunc"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size unrounded", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10, nil)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a start slot from FNV-1 by default", func(t *testing.T) {
		// Prepare
		a := []byte("ab")

		h := NewLinearProbingHashAlgorithm(1000, nil)

		// Execute
		slot := h.HashFunc1(a)

		// Check
		assert.Equal(t, int64(hashfunc.FNV1(a)%1000), slot, "start slot is hash mod table size")
	})

	t.Run("uses the supplied hash function", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(16, func(key []byte) uint32 { return 0xffffffff })

		// Execute
		slot := h.HashFunc1([]byte("anything"))

		// Check
		assert.Equal(t, int64(0xffffffff%16), slot, "no sign issues on large hashes")
	})
}

func TestLinearProbingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10, nil)

		// Execute
		h.SetTableSize(10 + 7)

		// Check
		assert.Equal(t, int64(17), h.GetTableSize(), "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(13, nil)
		tableSize := h.GetTableSize()

		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		start := h.HashFunc1(a)

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(start, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		assert.Equal(t, start, h.ProbeIteration(start, 0), "iteration 0 is the start slot")
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("wraps at the table end", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(8, nil)

		// Execute
		probe := h.ProbeIteration(6, 3)

		// Check
		assert.Equal(t, int64(1), probe, "wrapped to slot 1")
	})
}
