package model

import "github.com/wadetb/hashtable/hashfunc"

// SlotEmpty - Value of a slot that holds no record. Occupied slots hold record index + 1.
const SlotEmpty uint32 = 0

// KeySource - Gives the slot storage read access to keys by record index, the slot array itself only holds indices
type KeySource interface {
	Len() int
	Key(index int) []byte
}

// StorageParameters - Represents parameters of a slot storage
type StorageParameters struct {
	NumberOfSlotsNeeded    int64
	NumberOfSlotsAvailable int64
	InternalAlgorithm      bool
}

// SlotConf - Is a struct to be passed in the call to NewOASlots and contains configuration that affects
// slot processing.
//   - NumberOfSlotsNeeded is the number of slots to allocate
//   - Keys is where stored record indices are resolved to keys
//   - HashAlgorithm is the hash function(s) to use, nil selects FNV-1 linear probing
type SlotConf struct {
	NumberOfSlotsNeeded int64
	Keys                KeySource
	HashAlgorithm       hashfunc.HashAlgorithm
}
