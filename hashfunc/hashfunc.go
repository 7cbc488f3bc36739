package hashfunc

// Sum32 - Maps an arbitrary byte string to a 32-bit hash value. Implementations must be deterministic and pure.
type Sum32 func(key []byte) uint32

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash table, so if a custom hash algorithm is supplied that already has a
	// table size it will be overwritten by the number of slots computed from the record store capacity.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates the start slot between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in a panic down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given in
	// a call to SetTableSize, should the implementation round it in any way.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to inspect in the given iteration of a probe sequence starting at hf1Value.
	// Iteration 0 must return hf1Value itself, and iterations 0 -> table size - 1 must visit every slot exactly once,
	// since an empty slot is the only thing that terminates a lookup for an absent key.
	ProbeIteration(hf1Value, iteration int64) int64
}
