package openaddressing

import (
	"fmt"
	"github.com/wadetb/hashtable/crt"
	"github.com/wadetb/hashtable/hashfunc"
	"github.com/wadetb/hashtable/internal/hash"
	"github.com/wadetb/hashtable/internal/model"
)

// OASlots - Represents an in-memory slot array for the Open Addressing Collision Resolution Technique.
// Each slot is either empty or refers to a record index in a model.KeySource, keys are never copied into the slots.
// In case of a collision, it probes through the slot array using the hash algorithm's probe iteration, looking for
// an empty slot. There is no deletion so an empty slot always terminates a probe sequence.
type OASlots struct {
	slots                  []uint32
	keys                   model.KeySource
	numberOfSlotsNeeded    int64
	numberOfSlotsAvailable int64
	hashAlgorithm          hashfunc.HashAlgorithm
	internalAlgorithm      bool
}

// NewOASlots - Returns a pointer to a new instance of the Open Addressing slot implementation with all slots empty.
//   - slotConf is a model.SlotConf struct providing configuration parameters
//
// It returns:
//   - oaSlots which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOASlots(slotConf model.SlotConf) (oaSlots *OASlots, err error) {
	if slotConf.NumberOfSlotsNeeded <= 0 {
		err = fmt.Errorf("number of slots needed must be a positive value higher than 0 (zero)")
		return
	}
	if slotConf.Keys == nil {
		err = fmt.Errorf("a key source is required to resolve record indices")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if slotConf.HashAlgorithm == nil {
		slotConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(slotConf.NumberOfSlotsNeeded, nil)
		internalAlg = true
	} else {
		slotConf.HashAlgorithm.SetTableSize(slotConf.NumberOfSlotsNeeded)
	}

	numberOfSlots := slotConf.HashAlgorithm.GetTableSize()
	if numberOfSlots < slotConf.NumberOfSlotsNeeded {
		err = fmt.Errorf("hash algorithm supports %d slots but %d are needed", numberOfSlots, slotConf.NumberOfSlotsNeeded)
		return
	}

	oaSlots = &OASlots{
		slots:                  make([]uint32, numberOfSlots),
		keys:                   slotConf.Keys,
		numberOfSlotsNeeded:    slotConf.NumberOfSlotsNeeded,
		numberOfSlotsAvailable: numberOfSlots,
		hashAlgorithm:          slotConf.HashAlgorithm,
		internalAlgorithm:      internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OASlots
func (O *OASlots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfSlotsNeeded:    O.numberOfSlotsNeeded,
		NumberOfSlotsAvailable: O.numberOfSlotsAvailable,
		InternalAlgorithm:      O.internalAlgorithm,
	}

	return
}

// Reset - Marks every slot as empty
func (O *OASlots) Reset() {
	clear(O.slots)
}

// Set - Places recordIndex in the first empty slot along the probe sequence of key.
// It never checks for an existing equal key, duplicates simply take the next empty slot.
// Running out of slots breaks the sizing precondition of the table and panics with crt.TableFull, a record index
// outside the key source panics with crt.RecordIndexOutOfRange before any slot is touched.
//   - key is the key of the record, it must equal the key that recordIndex resolves to
//   - recordIndex is the index of the record in the key source
//
// It returns:
//   - slot is the slot the record was placed in
func (O *OASlots) Set(key []byte, recordIndex int) (slot int64) {
	if recordIndex < 0 || recordIndex >= O.keys.Len() {
		panic(crt.RecordIndexOutOfRange{})
	}

	slot, err := O.probingForSet(key)
	if err != nil {
		panic(err)
	}

	O.slots[slot] = uint32(recordIndex) + 1

	return
}

// Get - Returns the record index of the first slot along the probe sequence of key holding an equal key.
//   - key is the key to look for, compared byte by byte
//
// It returns:
//   - recordIndex is the index of the matching record, only valid if ok is true
//   - ok is false if an empty slot was reached (or the whole table probed) before a match
func (O *OASlots) Get(key []byte) (recordIndex int, ok bool) {
	_, recordIndex, ok = O.probingForGet(key)

	return
}

// GetSlot - Returns the record index held by a slot
//   - slot is a slot number between 0 and number of slots - 1
//
// It returns:
//   - recordIndex is the record index in the slot, only valid if ok is true
//   - ok is false if the slot is empty
func (O *OASlots) GetSlot(slot int64) (recordIndex int, ok bool) {
	v := O.slots[slot]
	if v == model.SlotEmpty {
		return
	}

	return int(v - 1), true
}

// GetStartSlot - Returns the slot where the probe sequence for key begins
func (O *OASlots) GetStartSlot(key []byte) int64 {
	return O.hashAlgorithm.HashFunc1(key)
}

// GetProbeLength - Returns the number of probes needed to reach slot from the start slot of key, a record sitting
// in its start slot has probe length 1. It returns 0 if slot is not on the probe sequence of key.
func (O *OASlots) GetProbeLength(key []byte, slot int64) int64 {
	start := O.GetStartSlot(key)
	for i := int64(0); i < O.numberOfSlotsAvailable; i++ {
		if O.hashAlgorithm.ProbeIteration(start, i) == slot {
			return i + 1
		}
	}

	return 0
}

// Digest - Returns a SHA-256 digest over the slot contents, equal digests mean identical placement
func (O *OASlots) Digest() [32]byte {
	return digestSlots(O.slots)
}
