package hashtable

// Insert - Places recordIndex in the first empty slot along the probe sequence of key.
// The caller guarantees that key is the key of record recordIndex. Insert never fails on a table sized for its record
// store, inserting more records than the table has slots breaks that guarantee and panics. A recordIndex outside the
// record store panics with crt.RecordIndexOutOfRange.
//   - key is the key of the record
//   - recordIndex is the index of the record in the record store
func (H *HashTable) Insert(key []byte, recordIndex int) {
	H.slots.Set(key, recordIndex)
}

// Lookup - Returns the index of a record with a key equal to key.
// With duplicate keys the earliest inserted of them is returned, since it sits first along the shared probe sequence.
//   - key is the key to look for
//
// It returns:
//   - recordIndex is the index of the matching record, only valid if ok is true
//   - ok is false if no record with key is in the table
func (H *HashTable) Lookup(key []byte) (recordIndex int, ok bool) {
	return H.slots.Get(key)
}

// Build - Empties every slot and then inserts all records of the record store in index order.
// Building twice from the same record store always gives the same slot placement.
func (H *HashTable) Build() {
	H.slots.Reset()

	n := H.records.Len()
	for i := 0; i < n; i++ {
		H.slots.Set(H.records.Key(i), i)
	}
}

// SlotRecord - Returns the record index held by a slot
//   - slot is a slot number between 0 and number of slots - 1
//
// It returns:
//   - recordIndex is the record index in the slot, only valid if ok is true
//   - ok is false if the slot is empty
func (H *HashTable) SlotRecord(slot int64) (recordIndex int, ok bool) {
	return H.slots.GetSlot(slot)
}

// Digest - Returns a SHA-256 digest of the slot placement
func (H *HashTable) Digest() [32]byte {
	return H.slots.Digest()
}

// Stat - Returns statistics on slot usage and probe lengths, it scans the whole table.
func (H *HashTable) Stat() (hashTableStat HashTableStat) {
	var totalProbes int64

	nSlots := H.slots.GetStorageParameters().NumberOfSlotsAvailable

	hashTableStat.Records = H.records.Len()
	hashTableStat.NumberOfSlots = nSlots

	for slot := int64(0); slot < nSlots; slot++ {
		recordIndex, ok := H.slots.GetSlot(slot)
		if !ok {
			continue
		}

		hashTableStat.Occupied++

		probes := H.slots.GetProbeLength(H.records.Key(recordIndex), slot)
		totalProbes += probes
		if probes > hashTableStat.MaxProbeLength {
			hashTableStat.MaxProbeLength = probes
		}
	}

	hashTableStat.LoadFactor = float64(hashTableStat.Occupied) / float64(nSlots)
	if hashTableStat.Occupied > 0 {
		hashTableStat.MeanProbeLength = float64(totalProbes) / float64(hashTableStat.Occupied)
	}

	return
}
