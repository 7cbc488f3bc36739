package hashtable

import "fmt"

// CapacityExceeded - Custom error to inform that a record store already holds its maximum number of records
type CapacityExceeded struct {
	Capacity int
}

// Error - Used to notify that the record store is full
func (C CapacityExceeded) Error() string {
	return fmt.Sprintf("exceeded maximum of %d data records", C.Capacity)
}

// InvalidKey - Custom error to inform that a key contains the terminator byte (0x00)
type InvalidKey struct {
	Key []byte
}

// Error - Used to notify that the key can not be stored
func (I InvalidKey) Error() string {
	return fmt.Sprintf("key %q contains a terminator byte", I.Key)
}
