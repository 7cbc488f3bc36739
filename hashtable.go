package hashtable

import (
	"fmt"
	"github.com/wadetb/hashtable/hashfunc"
	"github.com/wadetb/hashtable/internal/hash"
	"github.com/wadetb/hashtable/internal/model"
	"github.com/wadetb/hashtable/internal/storage/openaddressing"
	"math"
)

// MinSlotFactor - The smallest accepted ratio between number of slots and record store capacity.
// At 2 the load factor of a full record store stays at or below 0.5.
const MinSlotFactor int64 = 2

// MaxNumberOfSlots - The largest slot array a hash table allocates
const MaxNumberOfSlots int64 = math.MaxInt32

// HashTableInfo - Information structure containing some information about the hash table created
//   - Capacity is the maximum number of records, taken from the record store
//   - NumberOfSlots is the total number of slots in the table
//   - MaxLoadFactor is the load factor reached when the record store is full
type HashTableInfo struct {
	Capacity      int
	NumberOfSlots int64
	MaxLoadFactor float64
}

// HashTableStat - Statistics on the current slot usage
//   - Records is the number of records in the record store
//   - Occupied is the number of non-empty slots
//   - NumberOfSlots is the total number of slots
//   - LoadFactor is Occupied / NumberOfSlots
//   - MaxProbeLength is the longest probe sequence needed to reach any stored record
//   - MeanProbeLength is the average probe sequence length over stored records
type HashTableStat struct {
	Records         int
	Occupied        int64
	NumberOfSlots   int64
	LoadFactor      float64
	MaxProbeLength  int64
	MeanProbeLength float64
}

// HashTable - A fixed size open addressing hash table mapping keys to record indices of a RecordStore.
// It never grows and has no deletion. It is not safe for concurrent use, and it must not outlive its RecordStore.
type HashTable struct {
	slots   *openaddressing.OASlots
	records *RecordStore
}

// NewHashTable - Returns a new hash table with all slots empty, sized for the capacity of the record store.
//   - records is the record store whose records will be inserted and whose keys are compared on lookup
//   - slotFactor is the number of slots per record of capacity, it must be at least MinSlotFactor
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives FNV-1 linear probing.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(records *RecordStore, slotFactor int64, hashAlgorithm hashfunc.HashAlgorithm) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	if records == nil {
		err = fmt.Errorf("a record store is required")
		return
	}

	// Slots store record index + 1 in 32 bits
	if int64(records.Cap()) >= math.MaxUint32 {
		err = fmt.Errorf("record store capacity %d is too large, must be below %d", records.Cap(), uint32(math.MaxUint32))
		return
	}

	if slotFactor < MinSlotFactor {
		err = fmt.Errorf("slot factor must be at least %d", MinSlotFactor)
		return
	}

	if slotFactor > MaxNumberOfSlots/int64(records.Cap()) {
		err = fmt.Errorf("slot factor %d gives more than %d slots for capacity %d", slotFactor, MaxNumberOfSlots, records.Cap())
		return
	}

	slotConf := model.SlotConf{
		NumberOfSlotsNeeded: int64(records.Cap()) * slotFactor,
		Keys:                records,
		HashAlgorithm:       hashAlgorithm,
	}

	var oaSlots *openaddressing.OASlots
	oaSlots, err = openaddressing.NewOASlots(slotConf)
	if err != nil {
		err = fmt.Errorf("error while creating slots: %s", err)
		return
	}

	hashTable = &HashTable{
		slots:   oaSlots,
		records: records,
	}

	sp := oaSlots.GetStorageParameters()

	hashTableInfo = HashTableInfo{
		Capacity:      records.Cap(),
		NumberOfSlots: sp.NumberOfSlotsAvailable,
		MaxLoadFactor: float64(records.Cap()) / float64(sp.NumberOfSlotsAvailable),
	}

	return
}

// Probing strategies accepted by NewProbing
const (
	LinearProbing    = "linear"
	QuadraticProbing = "quadratic"
)

// NewLinearProbing - Returns the linear probing hash algorithm using sum as hash function, for use with NewHashTable.
func NewLinearProbing(sum hashfunc.Sum32) hashfunc.HashAlgorithm {
	return hash.NewLinearProbingHashAlgorithm(0, sum)
}

// NewQuadraticProbing - Returns the quadratic probing hash algorithm using sum as hash function, for use with
// NewHashTable. The number of slots is rounded up to a power of 2.
func NewQuadraticProbing(sum hashfunc.Sum32) hashfunc.HashAlgorithm {
	return hash.NewQuadraticProbingHashAlgorithm(1, sum)
}

// NewProbing - Returns the hash algorithm for the named probing strategy using sum as hash function
func NewProbing(probing string, sum hashfunc.Sum32) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch probing {
	case LinearProbing:
		hashAlgorithm = NewLinearProbing(sum)
	case QuadraticProbing:
		hashAlgorithm = NewQuadraticProbing(sum)
	default:
		err = fmt.Errorf("unknown probing %q, should be one of %s, %s", probing, LinearProbing, QuadraticProbing)
	}

	return
}
