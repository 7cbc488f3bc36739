package bench

import (
	"bytes"
	"github.com/wadetb/hashtable"
)

// Target - A key/value container under benchmark, built from and checked against a record store
type Target interface {
	// Name - Returns the name used on progress lines and in reports
	Name() string
	// Build - Discards all contents and inserts every record of the record store
	Build()
	// Check - Looks up the key of record searchIndex and returns an IntegrityViolation if the result does not match
	Check(searchIndex int) error
}

// Digester - Implemented by targets whose build result can be compared between builds
type Digester interface {
	Digest() [32]byte
}

// TableTarget - Benchmarks the open addressing hashtable.HashTable
type TableTarget struct {
	table   *hashtable.HashTable
	records *hashtable.RecordStore
}

// NewTableTarget - Returns a target for table, records must be the record store the table was created with
func NewTableTarget(table *hashtable.HashTable, records *hashtable.RecordStore) *TableTarget {
	return &TableTarget{table: table, records: records}
}

// Name - Returns the name of the target
func (T *TableTarget) Name() string {
	return "table"
}

// Build - Rebuilds the hash table
func (T *TableTarget) Build() {
	T.table.Build()
}

// Digest - Returns the slot placement digest of the hash table
func (T *TableTarget) Digest() [32]byte {
	return T.table.Digest()
}

// Check - The lookup must return searchIndex itself. Another index is only accepted for a duplicate record, one with
// the same key and the same value, since the table returns the earliest inserted duplicate.
func (T *TableTarget) Check(searchIndex int) error {
	key := T.records.Key(searchIndex)

	recordIndex, ok := T.table.Lookup(key)
	if ok && recordIndex == searchIndex {
		return nil
	}

	violation := IntegrityViolation{
		Target:    T.Name(),
		SearchKey: key,
		Expected:  T.records.Value(searchIndex),
		Index:     -1,
		Found:     ok,
	}
	if !ok {
		return violation
	}

	violation.Actual = T.records.Value(recordIndex)
	violation.Index = recordIndex
	if bytes.Equal(T.records.Key(recordIndex), key) && bytes.Equal(violation.Actual, violation.Expected) {
		return nil
	}

	return violation
}

// MapTarget - Benchmarks the built-in map as baseline
type MapTarget struct {
	m       map[string]string
	records *hashtable.RecordStore
}

// NewMapTarget - Returns a baseline target for records
func NewMapTarget(records *hashtable.RecordStore) *MapTarget {
	return &MapTarget{
		m:       make(map[string]string, records.Len()),
		records: records,
	}
}

// Name - Returns the name of the target
func (M *MapTarget) Name() string {
	return "map"
}

// Build - Clears the map and inserts every record, the first record with a given key is kept
func (M *MapTarget) Build() {
	clear(M.m)

	n := M.records.Len()
	for i := 0; i < n; i++ {
		key := string(M.records.Key(i))
		if _, ok := M.m[key]; ok {
			continue
		}
		M.m[key] = string(M.records.Value(i))
	}
}

// Check - The value found must equal the value of record searchIndex
func (M *MapTarget) Check(searchIndex int) error {
	key := M.records.Key(searchIndex)
	expected := M.records.Value(searchIndex)

	value, ok := M.m[string(key)]
	if ok && value == string(expected) {
		return nil
	}

	return IntegrityViolation{
		Target:    M.Name(),
		SearchKey: key,
		Expected:  expected,
		Actual:    []byte(value),
		Index:     -1,
		Found:     ok,
	}
}
