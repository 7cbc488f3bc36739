package hashtable

import (
	"bytes"
	"fmt"
)

// recordSpan - Offsets of one record in the record store buffer, the value starts where the key ends
type recordSpan struct {
	keyStart int
	keyEnd   int
	valueEnd int
}

// Record - One key/value pair and its index in the record store
type Record struct {
	Index int
	Key   []byte
	Value []byte
}

// RecordStore - An append-only, insertion-ordered sequence of records with a fixed maximum number of records.
// All key and value bytes are copied into one buffer owned by the store, records are spans into that buffer.
// Indices are dense, zero based and never change once assigned.
type RecordStore struct {
	capacity int
	buf      []byte
	spans    []recordSpan
}

// NewRecordStore - Returns a pointer to a new empty RecordStore
//   - capacity is the maximum number of records the store will accept
func NewRecordStore(capacity int) (recordStore *RecordStore, err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	recordStore = &RecordStore{capacity: capacity}

	return
}

// Append - Copies key and value into the store as a new record.
//   - key must not contain a 0x00 byte
//
// It returns:
//   - index is the index of the new record
//   - err is of type CapacityExceeded if the store is full, or InvalidKey if the key contains a 0x00 byte
func (R *RecordStore) Append(key, value []byte) (index int, err error) {
	if len(R.spans) >= R.capacity {
		err = CapacityExceeded{Capacity: R.capacity}
		return
	}
	if bytes.IndexByte(key, 0) >= 0 {
		err = InvalidKey{Key: bytes.Clone(key)}
		return
	}

	span := recordSpan{keyStart: len(R.buf)}
	R.buf = append(R.buf, key...)
	span.keyEnd = len(R.buf)
	R.buf = append(R.buf, value...)
	span.valueEnd = len(R.buf)

	index = len(R.spans)
	R.spans = append(R.spans, span)

	return
}

// Len - Returns the number of records
func (R *RecordStore) Len() int {
	return len(R.spans)
}

// Cap - Returns the maximum number of records
func (R *RecordStore) Cap() int {
	return R.capacity
}

// Key - Returns the key of record index. The returned slice must not be modified.
func (R *RecordStore) Key(index int) []byte {
	s := R.spans[index]
	return R.buf[s.keyStart:s.keyEnd:s.keyEnd]
}

// Value - Returns the value of record index. The returned slice must not be modified.
func (R *RecordStore) Value(index int) []byte {
	s := R.spans[index]
	return R.buf[s.keyEnd:s.valueEnd:s.valueEnd]
}

// Record - Returns record index
func (R *RecordStore) Record(index int) Record {
	return Record{Index: index, Key: R.Key(index), Value: R.Value(index)}
}
